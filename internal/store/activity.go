package store

import (
	"time"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"
)

// DefaultActivityCapacity bounds the activity ring buffer.
const DefaultActivityCapacity = 50

// ActivityLog is a bounded FIFO log of timestamped activity descriptions,
// independent of the conversation transcript. When the capacity is
// exceeded the oldest entry is evicted.
type ActivityLog struct {
	entries  []domain.ActivityEntry
	capacity int
	now      func() time.Time
}

// NewActivityLog creates an activity log with the default capacity.
func NewActivityLog() *ActivityLog {
	return NewActivityLogWithCapacity(DefaultActivityCapacity, time.Now)
}

// NewActivityLogWithCapacity creates an activity log with an explicit
// capacity and clock, for configuration and tests.
func NewActivityLogWithCapacity(capacity int, now func() time.Time) *ActivityLog {
	if capacity < 1 {
		capacity = DefaultActivityCapacity
	}
	return &ActivityLog{capacity: capacity, now: now}
}

// Log appends a timestamped entry, evicting the oldest beyond capacity.
func (l *ActivityLog) Log(text string) {
	l.entries = append(l.entries, domain.ActivityEntry{At: l.now(), Text: text})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[1:]
	}
}

// All returns the entries oldest-first.
func (l *ActivityLog) All() []domain.ActivityEntry {
	return l.entries
}

// Count returns the number of retained entries.
func (l *ActivityLog) Count() int {
	return len(l.entries)
}
