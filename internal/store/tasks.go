package store

import (
	"strings"
	"time"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"
	"github.com/google/uuid"
)

// TaskStore holds the in-memory task list for the current process.
// Not safe for concurrent use; the engine serializes access.
type TaskStore struct {
	tasks []*domain.CyberTask
	now   func() time.Time
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{now: time.Now}
}

// NewTaskStoreWithClock creates a task store with an injected clock for tests.
func NewTaskStoreWithClock(now func() time.Time) *TaskStore {
	return &TaskStore{now: now}
}

// Add appends a new active task. Title emptiness is enforced by callers.
func (s *TaskStore) Add(title, description string, reminderAt *time.Time) *domain.CyberTask {
	t := &domain.CyberTask{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		ReminderAt:  reminderAt,
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Complete marks the task at the given 1-based visible index (its position
// among currently active tasks) as completed. Returns the task and true on
// success, or nil and false when the index is out of range.
func (s *TaskStore) Complete(visibleIndex int) (*domain.CyberTask, bool) {
	active := s.ListActive()
	if visibleIndex < 1 || visibleIndex > len(active) {
		return nil, false
	}
	t := active[visibleIndex-1]
	t.Completed = true
	return t, true
}

// ListActive returns the non-completed tasks in insertion order.
// The slice is rebuilt on every call; visible indices are not stable.
func (s *TaskStore) ListActive() []*domain.CyberTask {
	var active []*domain.CyberTask
	for _, t := range s.tasks {
		if !t.Completed {
			active = append(active, t)
		}
	}
	return active
}

// ActiveCount returns the number of non-completed tasks.
func (s *TaskStore) ActiveCount() int {
	n := 0
	for _, t := range s.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// DueUnnotified returns active tasks whose reminder time has passed and
// that have not yet been notified. The caller is responsible for calling
// MarkNotified after delivering each reminder.
func (s *TaskStore) DueUnnotified() []*domain.CyberTask {
	now := s.now()
	var due []*domain.CyberTask
	for _, t := range s.tasks {
		if t.Completed || t.Notified || t.ReminderAt == nil {
			continue
		}
		if !t.ReminderAt.After(now) {
			due = append(due, t)
		}
	}
	return due
}

// MarkNotified flips the notified flag for the task with the given ID so a
// reminder is delivered exactly once.
func (s *TaskStore) MarkNotified(id string) {
	for _, t := range s.tasks {
		if t.ID == id {
			t.Notified = true
			return
		}
	}
}
