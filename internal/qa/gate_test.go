package qa

import (
	"strings"
	"testing"
)

func TestKeywordGate_KeywordAlwaysTriggers(t *testing.T) {
	gate := NewKeywordGate(nil, 0)

	cases := []string{
		"What is my schedule?",
		"What does Nakao like to do?",
		"Who is the CEO?",
		"What happened yesterday?",
		"MY FAVORITE color",
	}
	for _, q := range cases {
		if !gate.RequiresRetrieval(q) {
			t.Errorf("RequiresRetrieval(%q) = false, want true", q)
		}
	}
}

func TestKeywordGate_LengthThreshold(t *testing.T) {
	gate := NewKeywordGate(nil, 0)

	long := strings.Repeat("z", DefaultGateThreshold+1)
	if !gate.RequiresRetrieval(long) {
		t.Errorf("question longer than threshold without keywords should require retrieval")
	}

	atThreshold := strings.Repeat("z", DefaultGateThreshold)
	if gate.RequiresRetrieval(atThreshold) {
		t.Errorf("question at the threshold without keywords should not require retrieval")
	}
}

func TestKeywordGate_ShortWithoutKeywords(t *testing.T) {
	gate := NewKeywordGate(nil, 0)

	cases := []string{
		"Hello, how are you?",
		"Explain quicksort.",
		"What is 2 + 2?",
	}
	for _, q := range cases {
		if gate.RequiresRetrieval(q) {
			t.Errorf("RequiresRetrieval(%q) = true, want false", q)
		}
	}
}

func TestKeywordGate_NoSubstringFalsePositives(t *testing.T) {
	gate := NewKeywordGate(nil, 0)

	// "memory" contains "me" and "nowhere" contains "now"; word matching
	// must not fire on either.
	if gate.RequiresRetrieval("Explain computer memory.") {
		t.Errorf("substring of a keyword inside a longer word should not trigger the gate")
	}
	if gate.RequiresRetrieval("It leads nowhere.") {
		t.Errorf("substring of a keyword inside a longer word should not trigger the gate")
	}
}

func TestKeywordGate_CustomConfig(t *testing.T) {
	gate := NewKeywordGate([]string{"graph"}, 10)

	if !gate.RequiresRetrieval("graph?") {
		t.Errorf("custom keyword should trigger")
	}
	if !gate.RequiresRetrieval("hello world") {
		t.Errorf("custom threshold of 10 should route an 11-rune question to retrieval")
	}
	if gate.RequiresRetrieval("hi") {
		t.Errorf("short question without custom keywords should not trigger")
	}
}
