package qa

import (
	"context"
	"strings"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

// CypherGenerator turns a question into a single Cypher statement grounded on
// the current graph schema, or the sentinel when no query applies. The model
// output is untrusted text; formatting artifacts are tolerated here and
// stripped by the executor.
type CypherGenerator struct {
	llm    LanguageModel
	schema SchemaProvider
	log    *logger.Logger
}

func NewCypherGenerator(llm LanguageModel, schema SchemaProvider, log *logger.Logger) *CypherGenerator {
	return &CypherGenerator{llm: llm, schema: schema, log: log.With("component", "CypherGenerator")}
}

func (g *CypherGenerator) Generate(ctx context.Context, question string) (string, error) {
	schemaText, err := g.schema.Schema(ctx)
	if err != nil {
		g.log.Warn("schema fetch failed, generating without schema", "error", err)
		schemaText = "(schema unavailable)"
	}

	system, user := promptCypherGeneration(schemaText, question)
	raw, err := g.llm.GenerateText(ctx, system, user)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func promptCypherGeneration(schema string, question string) (string, string) {
	system := strings.TrimSpace(strings.Join([]string{
		"ROLE: Cypher query writer for a Neo4j knowledge graph.",
		"TASK: Convert the input question into a single Cypher query.",
		"OUTPUT: The query text only. No prose, no explanation, no formatting.",
		"RULES: If no Cypher query can answer the question, reply with exactly " + SentinelNoQuery + ".",
	}, "\n"))

	user := strings.TrimSpace(strings.Join([]string{
		"Write a Cypher query that answers the user's question, based on the graph schema below.",
		"",
		"SCHEMA:",
		schema,
		"",
		"QUESTION:",
		strings.TrimSpace(question),
		"",
		"CYPHER_QUERY:",
	}, "\n"))

	return system, user
}
