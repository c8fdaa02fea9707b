package qa

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

// noResultMarker is what the synthesizer shows the model when execution
// produced nothing, so it can acknowledge the missing context instead of
// fabricating one.
const noResultMarker = "(no result)"

// Synthesizer combines the question, the generated query and the execution
// result into the final natural-language answer.
type Synthesizer struct {
	llm LanguageModel
	log *logger.Logger
}

func NewSynthesizer(llm LanguageModel, log *logger.Logger) *Synthesizer {
	return &Synthesizer{llm: llm, log: log.With("component", "Synthesizer")}
}

// Synthesize always returns a usable string; invocation failures degrade to
// the fixed fallback.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, generatedQuery string, result Result) string {
	system, user := promptSynthesis(question, generatedQuery, result)
	text, err := s.llm.GenerateText(ctx, system, user)
	if err != nil {
		s.log.Error("answer synthesis failed", "error", err)
		return FallbackAnswer
	}
	return strings.TrimSpace(text)
}

func promptSynthesis(question string, generatedQuery string, result Result) (string, string) {
	system := strings.TrimSpace(strings.Join([]string{
		"ROLE: Answer writer for a knowledge-graph assistant.",
		"TASK: Turn the question, the Cypher query, and the query result into a natural-language answer.",
		"OUTPUT: First summarize the inputs, then reason about them from multiple perspectives, then state a clear conclusion.",
		"RULES: If the query result is " + noResultMarker + ", say the graph held no facts for this question instead of inventing any.",
	}, "\n"))

	user := strings.TrimSpace(strings.Join([]string{
		"QUESTION:",
		strings.TrimSpace(question),
		"",
		"CYPHER_QUERY:",
		defaultString(strings.TrimSpace(generatedQuery), "(none)"),
		"",
		"QUERY_RESULT:",
		renderResult(result),
	}, "\n"))

	return system, user
}

func renderResult(result Result) string {
	if !result.Present() {
		return noResultMarker
	}
	raw, err := json.Marshal(result.Rows)
	if err != nil {
		return noResultMarker
	}
	return string(raw)
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
