package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

type stubAnswerer struct {
	answer    string
	err       error
	sessionID string
	question  string
}

func (s *stubAnswerer) Answer(_ context.Context, sessionID, question string) (string, error) {
	s.sessionID = sessionID
	s.question = question
	return s.answer, s.err
}

func newAskRouter(t *testing.T, stub *stubAnswerer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	router := gin.New()
	h := NewAskHandler(log, stub)
	router.POST("/ask", h.Ask)
	router.GET("/ask", h.AskQuery)
	return router
}

func TestAsk_Success(t *testing.T) {
	stub := &stubAnswerer{answer: "Philosophy and soccer."}
	router := newAskRouter(t, stub)

	body := `{"question": "What does Nakao like?", "session_id": "s1"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["answer"] != "Philosophy and soccer." {
		t.Errorf("answer = %q", resp["answer"])
	}
	if resp["session_id"] != "s1" {
		t.Errorf("session_id = %q, want the caller's id echoed back", resp["session_id"])
	}
	if stub.question != "What does Nakao like?" || stub.sessionID != "s1" {
		t.Errorf("service received (%q, %q)", stub.sessionID, stub.question)
	}
}

func TestAsk_MintsSessionIDWhenAbsent(t *testing.T) {
	stub := &stubAnswerer{answer: "Hi!"}
	router := newAskRouter(t, stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "Hello!"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, err := uuid.Parse(resp["session_id"]); err != nil {
		t.Fatalf("session_id = %q, want a minted uuid: %v", resp["session_id"], err)
	}
	if stub.sessionID != resp["session_id"] {
		t.Errorf("service saw session %q but response echoed %q", stub.sessionID, resp["session_id"])
	}
}

func TestAsk_MissingQuestionIs422(t *testing.T) {
	router := newAskRouter(t, &stubAnswerer{answer: "unused"})

	for _, body := range []string{`{}`, `{"question": ""}`, `not json`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("body %q: status = %d, want 422", body, rec.Code)
			continue
		}
		var resp struct {
			Error   string   `json:"error"`
			Details []string `json:"details"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Error == "" || len(resp.Details) == 0 {
			t.Errorf("body %q: validation envelope incomplete: %s", body, rec.Body.String())
		}
	}
}

func TestAskQuery_Success(t *testing.T) {
	stub := &stubAnswerer{answer: "An entrepreneur."}
	router := newAskRouter(t, stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ask?question=What+is+Nakao%27s+job%3F", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if stub.question != "What is Nakao's job?" {
		t.Errorf("service received question %q", stub.question)
	}
}

func TestAskQuery_MissingQuestionIs422(t *testing.T) {
	router := newAskRouter(t, &stubAnswerer{answer: "unused"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ask", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestAsk_PipelineErrorIs500(t *testing.T) {
	stub := &stubAnswerer{err: errors.New("ask pipeline: boom")}
	router := newAskRouter(t, stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "q"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Error, "boom") {
		t.Errorf("error = %q, want the pipeline error text", resp.Error)
	}
}
