package qa

import (
	"context"
	"testing"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

type fakeLLM struct {
	fn    func(system, user string) (string, error)
	calls int
}

func (f *fakeLLM) GenerateText(_ context.Context, system, user string) (string, error) {
	f.calls++
	return f.fn(system, user)
}

type fakeStore struct {
	fn      func(cypher string) ([]map[string]any, error)
	calls   int
	queries []string
}

func (f *fakeStore) Query(_ context.Context, cypher string, _ map[string]any) ([]map[string]any, error) {
	f.calls++
	f.queries = append(f.queries, cypher)
	if f.fn == nil {
		return nil, nil
	}
	return f.fn(cypher)
}

type fakeSchema struct {
	text string
	err  error
}

func (f *fakeSchema) Schema(_ context.Context) (string, error) {
	return f.text, f.err
}
