package qa

import (
	"context"
	"strings"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

// FallbackAnswer is returned to the caller whenever a language-model
// invocation fails past its retries.
const FallbackAnswer = "Sorry, I could not produce an answer right now. Please try again in a moment."

// DirectAnswerer answers self-contained questions without retrieval.
type DirectAnswerer struct {
	llm LanguageModel
	log *logger.Logger
}

func NewDirectAnswerer(llm LanguageModel, log *logger.Logger) *DirectAnswerer {
	return &DirectAnswerer{llm: llm, log: log.With("component", "DirectAnswerer")}
}

// Answer always returns a usable string; invocation failures degrade to the
// fixed fallback.
func (d *DirectAnswerer) Answer(ctx context.Context, question string) string {
	system, user := promptDirectAnswer(question)
	text, err := d.llm.GenerateText(ctx, system, user)
	if err != nil {
		d.log.Error("direct answer generation failed", "error", err)
		return FallbackAnswer
	}
	return strings.TrimSpace(text)
}

func promptDirectAnswer(question string) (string, string) {
	system := strings.TrimSpace(strings.Join([]string{
		"ROLE: Thoughtful general assistant.",
		"TASK: Answer the user's question directly, without external lookups.",
		"OUTPUT: A reasoned answer that considers the question from multiple perspectives before concluding.",
	}, "\n"))

	user := strings.TrimSpace(strings.Join([]string{
		"QUESTION:",
		strings.TrimSpace(question),
	}, "\n"))

	return system, user
}
