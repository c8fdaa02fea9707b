package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

const personaInstruction = "You are a helpful assistant. Answer the user's question sincerely and concretely."

const reasoningInstruction = "Show your reasoning and consider the question from multiple perspectives before answering."

// Service is the end-to-end ask pipeline: memory in, gated retrieval or a
// direct answer, memory out. It never lets a downstream error escape as an
// error; the only non-nil error return is a recovered panic, which the
// transport maps to a 5xx.
type Service struct {
	log         *logger.Logger
	gate        Gate
	generator   *CypherGenerator
	executor    *Executor
	direct      *DirectAnswerer
	synthesizer *Synthesizer
	memory      *ConversationMemory
}

func NewService(
	log *logger.Logger,
	gate Gate,
	generator *CypherGenerator,
	executor *Executor,
	direct *DirectAnswerer,
	synthesizer *Synthesizer,
	memory *ConversationMemory,
) *Service {
	return &Service{
		log:         log.With("component", "QAService"),
		gate:        gate,
		generator:   generator,
		executor:    executor,
		direct:      direct,
		synthesizer: synthesizer,
		memory:      memory,
	}
}

func (s *Service) Answer(ctx context.Context, sessionID string, question string) (answer string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("ask pipeline panicked", "panic", r)
			answer = ""
			err = fmt.Errorf("ask pipeline: %v", r)
		}
	}()

	history := s.memory.LoadHistory(sessionID)
	augmented := question
	if history != "" {
		// Header words stay outside the gate keyword set so the history
		// wrapper itself never forces the retrieval path.
		augmented = "Conversation so far:\n" + history + "\nCurrent question: " + question
	}
	prompted := personaInstruction + "\n\n" + augmented

	if s.gate.RequiresRetrieval(augmented) {
		answer = s.answerWithRetrieval(ctx, prompted+"\n\n"+reasoningInstruction)
	} else {
		s.log.Debug("gate selected direct path")
		answer = s.direct.Answer(ctx, prompted)
	}

	s.memory.Append(sessionID, augmented, answer)
	return answer, nil
}

func (s *Service) answerWithRetrieval(ctx context.Context, question string) string {
	s.log.Debug("gate selected retrieval path")

	query, err := s.generator.Generate(ctx, question)
	var result Result
	if err != nil {
		s.log.Error("cypher generation failed", "error", err)
		query = ""
		result = Result{Kind: ExecutionFailed, Err: err}
	} else {
		result = s.executor.Execute(ctx, query)
	}

	if strings.EqualFold(strings.TrimSpace(query), SentinelNoQuery) {
		query = ""
	}
	return s.synthesizer.Synthesize(ctx, question, query, result)
}
