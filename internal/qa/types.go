package qa

import "context"

// SentinelNoQuery is the reserved reply the generator uses when no Cypher
// query can answer the question. Compared case-insensitively.
const SentinelNoQuery = "NO_QUERY"

// LanguageModel is the narrow slice of the OpenAI client the pipeline needs.
type LanguageModel interface {
	GenerateText(ctx context.Context, system string, user string) (string, error)
}

// GraphStore executes a Cypher statement and returns one map per record.
type GraphStore interface {
	Query(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
}

// SchemaProvider describes the graph's node/relationship types as text.
type SchemaProvider interface {
	Schema(ctx context.Context) (string, error)
}

// Gate decides whether a question needs graph retrieval before answering.
// Kept as an interface so the keyword heuristic can be swapped for a
// classifier without touching the orchestrator.
type Gate interface {
	RequiresRetrieval(text string) bool
}

// ResultKind distinguishes the ways an execution can end up without rows.
// Callers that only care about presence use Result.Present; logs and tests
// branch on the kind.
type ResultKind int

const (
	NoQueryApplicable ResultKind = iota
	EmptyAfterCleaning
	RejectedMutating
	ExecutionFailed
	NoRowsReturned
	RowsReturned
)

func (k ResultKind) String() string {
	switch k {
	case NoQueryApplicable:
		return "no_query_applicable"
	case EmptyAfterCleaning:
		return "empty_after_cleaning"
	case RejectedMutating:
		return "rejected_mutating"
	case ExecutionFailed:
		return "execution_failed"
	case NoRowsReturned:
		return "no_rows_returned"
	case RowsReturned:
		return "rows_returned"
	default:
		return "unknown"
	}
}

// Result is the normalized outcome of sanitizing and executing one generated
// query. Rows is populated only for RowsReturned; Err only for
// ExecutionFailed and RejectedMutating.
type Result struct {
	Kind ResultKind
	Rows []map[string]any
	Err  error
}

func (r Result) Present() bool {
	return r.Kind == RowsReturned && len(r.Rows) > 0
}
