package store

import (
	"strings"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"
)

// History is the append-only conversation transcript.
// Entries are never removed individually, only bulk-cleared.
type History struct {
	entries []domain.ChatEntry
}

// NewHistory creates an empty history store.
func NewHistory() *History {
	return &History{}
}

// AddUser appends a user message.
func (h *History) AddUser(text string) {
	h.entries = append(h.entries, domain.ChatEntry{Speaker: domain.SpeakerUser, Text: text})
}

// AddSystem appends a bot message.
func (h *History) AddSystem(text string) {
	h.entries = append(h.entries, domain.ChatEntry{Speaker: domain.SpeakerSystem, Text: text})
}

// Latest returns the text of the most recent entry, or "" when empty.
func (h *History) Latest() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1].Text
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns the transcript in insertion order.
func (h *History) Entries() []domain.ChatEntry {
	return h.entries
}

// Transcript renders the full history with display speaker labels.
func (h *History) Transcript() string {
	var b strings.Builder
	for i, e := range h.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		if e.Speaker == domain.SpeakerUser {
			b.WriteString("You: ")
		} else {
			b.WriteString("Bot: ")
		}
		b.WriteString(e.Text)
	}
	return b.String()
}

// Clear drops all entries and records the clear itself as a system entry.
func (h *History) Clear() {
	h.entries = nil
	h.AddSystem("Chat history cleared.")
}
