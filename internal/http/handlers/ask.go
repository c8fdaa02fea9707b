package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yungbote/graphask-backend/internal/http/response"
	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

// Answerer is what the transport needs from the qa service.
type Answerer interface {
	Answer(ctx context.Context, sessionID string, question string) (string, error)
}

type AskRequest struct {
	Question  string `json:"question" binding:"required"`
	SessionID string `json:"session_id"`
}

type AskHandler struct {
	log *logger.Logger
	qa  Answerer
}

func NewAskHandler(log *logger.Logger, qa Answerer) *AskHandler {
	return &AskHandler{log: log.With("handler", "Ask"), qa: qa}
}

// POST /ask
func (h *AskHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("ask request validation failed", "error", err)
		response.RespondValidationError(c, validationDetails(err))
		return
	}

	sessionID := orMintSession(req.SessionID)
	h.log.Info("question received", "session_id", sessionID, "question_len", len(req.Question))

	answer, err := h.qa.Answer(c.Request.Context(), sessionID, req.Question)
	if err != nil {
		h.log.Error("ask pipeline failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	response.RespondOK(c, gin.H{"answer": answer, "session_id": sessionID})
}

// GET /ask?question=...
func (h *AskHandler) AskQuery(c *gin.Context) {
	question := c.Query("question")
	if question == "" {
		response.RespondValidationError(c, []string{`query parameter "question" is required`})
		return
	}

	sessionID := orMintSession(c.Query("session_id"))
	answer, err := h.qa.Answer(c.Request.Context(), sessionID, question)
	if err != nil {
		h.log.Error("ask pipeline failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	response.RespondOK(c, gin.H{"answer": answer, "session_id": sessionID})
}

// orMintSession assigns a fresh session id to callers that sent none, and
// echoes it back so they can continue the conversation.
func orMintSession(sessionID string) string {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return uuid.NewString()
	}
	return sessionID
}

func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("field %q failed on the %q rule", fe.Field(), fe.Tag()))
	}
	return details
}
