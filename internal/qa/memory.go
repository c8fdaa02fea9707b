package qa

import (
	"strings"
	"sync"
)

// DefaultSession is the session every caller without an explicit session id
// shares, reproducing the single global transcript as the degenerate case.
const DefaultSession = "default"

// DefaultMemoryMaxEntries caps how many (input, output) pairs a session keeps
// for rendering, so prompt sizes stay bounded.
const DefaultMemoryMaxEntries = 50

type MemoryEntry struct {
	Input  string
	Output string
}

// ConversationMemory holds per-session transcripts for the process lifetime.
// Append is the only mutation. Safe for concurrent use.
type ConversationMemory struct {
	mu         sync.Mutex
	maxEntries int
	sessions   map[string][]MemoryEntry
}

func NewConversationMemory(maxEntries int) *ConversationMemory {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryMaxEntries
	}
	return &ConversationMemory{
		maxEntries: maxEntries,
		sessions:   make(map[string][]MemoryEntry),
	}
}

// LoadHistory renders the session's transcript oldest first, or "" when the
// session has no entries yet.
func (m *ConversationMemory) LoadHistory(sessionID string) string {
	key := normalizeSession(sessionID)

	m.mu.Lock()
	entries := m.sessions[key]
	m.mu.Unlock()

	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("User: ")
		b.WriteString(e.Input)
		b.WriteString("\nAssistant: ")
		b.WriteString(e.Output)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ConversationMemory) Append(sessionID, input, output string) {
	key := normalizeSession(sessionID)

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := append(m.sessions[key], MemoryEntry{Input: input, Output: output})
	if len(entries) > m.maxEntries {
		entries = entries[len(entries)-m.maxEntries:]
	}
	m.sessions[key] = entries
}

// Entries returns a copy of the session's transcript, oldest first.
func (m *ConversationMemory) Entries(sessionID string) []MemoryEntry {
	key := normalizeSession(sessionID)

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]MemoryEntry, len(m.sessions[key]))
	copy(out, m.sessions[key])
	return out
}

func normalizeSession(sessionID string) string {
	key := strings.TrimSpace(sessionID)
	if key == "" {
		return DefaultSession
	}
	return key
}
