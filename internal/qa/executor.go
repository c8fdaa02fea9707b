package qa

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

var (
	fenceRe    = regexp.MustCompile("(?i)```(?:cypher)?")
	mutatingRe = regexp.MustCompile(`(?i)\b(CREATE|MERGE|DELETE|DETACH|SET|REMOVE|DROP|FOREACH)\b`)
)

// Executor sanitizes a generated query and runs it against the graph store.
// Every failure mode degrades to an absent result; nothing propagates as an
// error. The policy is retrieval failure degrades to no-context, never to a
// crashed request.
type Executor struct {
	store       GraphStore
	log         *logger.Logger
	allowWrites bool
}

func NewExecutor(store GraphStore, log *logger.Logger, allowWrites bool) *Executor {
	return &Executor{store: store, log: log.With("component", "QueryExecutor"), allowWrites: allowWrites}
}

func (e *Executor) Execute(ctx context.Context, rawQuery string) Result {
	trimmed := strings.TrimSpace(rawQuery)
	if strings.EqualFold(trimmed, SentinelNoQuery) {
		e.log.Debug("query execution skipped", "kind", NoQueryApplicable.String())
		return Result{Kind: NoQueryApplicable}
	}

	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(trimmed, ""))
	if cleaned == "" {
		e.log.Debug("query empty after cleaning", "kind", EmptyAfterCleaning.String())
		return Result{Kind: EmptyAfterCleaning}
	}

	if !e.allowWrites {
		if clause := mutatingRe.FindString(cleaned); clause != "" {
			err := fmt.Errorf("generated query contains mutating clause %q", strings.ToUpper(clause))
			e.log.Warn("query rejected", "kind", RejectedMutating.String(), "clause", strings.ToUpper(clause))
			return Result{Kind: RejectedMutating, Err: err}
		}
	}

	rows, err := e.store.Query(ctx, cleaned, nil)
	if err != nil {
		e.log.Warn("query execution failed", "kind", ExecutionFailed.String(), "error", err)
		return Result{Kind: ExecutionFailed, Err: err}
	}
	if len(rows) == 0 {
		e.log.Debug("query returned no rows", "kind", NoRowsReturned.String())
		return Result{Kind: NoRowsReturned}
	}

	e.log.Debug("query executed", "kind", RowsReturned.String(), "rows", len(rows))
	return Result{Kind: RowsReturned, Rows: rows}
}
