package domain

import (
	"fmt"
	"time"
)

// CyberTask is a cybersecurity to-do item with an optional reminder.
// Tasks live for the process lifetime only; the user-facing handle is the
// 1-based position among non-completed tasks, recomputed on every listing.
type CyberTask struct {
	ID          string
	Title       string
	Description string
	ReminderAt  *time.Time
	Completed   bool
	Notified    bool

	CreatedAt time.Time
}

// String renders the task for chat display.
func (t *CyberTask) String() string {
	status := "[ACTIVE]"
	if t.Completed {
		status = "[COMPLETED]"
	}
	due := ""
	if t.ReminderAt != nil {
		due = fmt.Sprintf(" (Due: %s)", t.ReminderAt.Format("2006-01-02 15:04"))
	}
	return fmt.Sprintf("%s %s%s - %s", status, t.Title, due, t.Description)
}
