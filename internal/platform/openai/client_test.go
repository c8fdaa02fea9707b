package openai

import (
	"testing"

	"github.com/yungbote/graphask-backend/internal/platform/logger"
)

func newClientForTest(t *testing.T, temperature string) *client {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test-key-for-unit-tests-only")
	t.Setenv("OPENAI_TEMPERATURE", temperature)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	c, err := NewClient(log)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c.(*client)
}

func TestNewClient_InvalidTemperatureIsDropped(t *testing.T) {
	c := newClientForTest(t, "warm")
	if c.temperature != nil {
		t.Errorf("temperature = %v, want nil for an unparseable value", *c.temperature)
	}
}

func TestNewClient_ValidTemperatureIsKept(t *testing.T) {
	c := newClientForTest(t, "0.3")
	if c.temperature == nil || *c.temperature != 0.3 {
		t.Errorf("temperature = %v, want 0.3", c.temperature)
	}
}

func TestNewClient_DefaultTemperatureIsZero(t *testing.T) {
	c := newClientForTest(t, "")
	if c.temperature == nil || *c.temperature != 0 {
		t.Errorf("temperature = %v, want 0 by default", c.temperature)
	}
}
