package domain

import "time"

// Speaker identifies who produced a chat entry.
type Speaker string

const (
	SpeakerUser   Speaker = "user"
	SpeakerSystem Speaker = "system"
)

// ChatEntry is a single line of the conversation transcript.
// Entries are immutable once created and owned by the history store.
type ChatEntry struct {
	Speaker Speaker
	Text    string
}

// ActivityEntry is one timestamped line of the activity log.
type ActivityEntry struct {
	At   time.Time
	Text string
}

// String renders the entry the way the activity log displays it.
func (e ActivityEntry) String() string {
	return e.At.Format("2006-01-02 15:04") + ": " + e.Text
}
