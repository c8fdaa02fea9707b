package qa

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultGateKeywords are the personal / contextual / temporal cues that mark
// a question as needing graph facts. Matched per word, case-insensitively.
var DefaultGateKeywords = []string{
	"my", "me", "our",
	"favorite", "like", "likes", "hobby", "hobbies",
	"job", "occupation", "career", "experience", "dream", "goal",
	"who", "when", "where",
	"today", "yesterday", "tomorrow", "now",
	"currently", "recently", "latest", "earlier", "previous", "before",
	"remember", "history",
}

// DefaultGateThreshold is the rune length above which a question is routed to
// retrieval even without a keyword hit.
const DefaultGateThreshold = 100

// KeywordGate is the heuristic retrieval gate: keyword hit first, length
// threshold second. False positives only cost an extra round trip; false
// negatives degrade answer quality, never crash.
type KeywordGate struct {
	keywords  map[string]bool
	threshold int
}

func NewKeywordGate(keywords []string, threshold int) *KeywordGate {
	if len(keywords) == 0 {
		keywords = DefaultGateKeywords
	}
	if threshold <= 0 {
		threshold = DefaultGateThreshold
	}
	set := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			set[kw] = true
		}
	}
	return &KeywordGate{keywords: set, threshold: threshold}
}

func (g *KeywordGate) RequiresRetrieval(text string) bool {
	lowered := strings.ToLower(text)
	words := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, w := range words {
		if g.keywords[w] {
			return true
		}
	}
	return utf8.RuneCountInString(text) > g.threshold
}
