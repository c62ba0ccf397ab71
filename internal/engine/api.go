package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"
)

// The methods in this file form the narrow interface consumed by front
// ends (TUI shell, one-shot CLI). They all serialize on the engine mutex.

// Transcript returns the full conversation with display speaker labels.
func (e *Engine) Transcript() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Transcript()
}

// ClearConversation resets the transcript, the quiz, the conversational
// state and any pending wizard data. Calling it twice is equivalent to
// calling it once.
func (e *Engine) ClearConversation() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.Clear()
	e.quiz.Reset()
	e.setState(stateIdle)
	e.pending = pendingTask{}
	e.activity.Log("Chat cleared.")
}

// SetUserName stores the display name used in templated replies.
// Blank names fall back to the default.
func (e *Engine) SetUserName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultUserName
	}
	e.userName = name
	e.activity.Log(fmt.Sprintf("User name set to: %s", name))
}

// UserName returns the current display name.
func (e *Engine) UserName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.userName
}

// Keywords returns the topic keywords the response catalog recognizes.
func (e *Engine) Keywords() []string {
	return e.catalog.Keywords()
}

// LatestMessage returns the most recent entry in the conversation,
// regardless of speaker. Empty when nothing has been said.
func (e *Engine) LatestMessage() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Latest()
}

// ListTasks returns the active tasks in visible-index order.
func (e *Engine) ListTasks() []*domain.CyberTask {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks.ListActive()
}

// ActiveTaskCount returns the number of active tasks.
func (e *Engine) ActiveTaskCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks.ActiveCount()
}

// StartQuiz begins a quiz session outside the normal input flow (e.g. a
// front-end shortcut). The returned message is also recorded in history.
func (e *Engine) StartQuiz() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	reply, ok := e.quiz.Start()
	if ok {
		e.setState(stateInQuiz)
	}
	e.appendSystem(reply)
	return reply
}

// QuizScore returns the last completed quiz percentage. ok is false while
// a quiz is in progress.
func (e *Engine) QuizScore() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.quiz.Score()
}

// ShowActivityLog renders the activity log the way the chat displays it.
func (e *Engine) ShowActivityLog() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.renderActivity()
}

// ActivityCount returns the number of retained activity entries.
func (e *Engine) ActivityCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activity.Count()
}

// TasksDueForReminder returns a snapshot of active tasks whose reminder is
// due and not yet delivered. The caller delivers each reminder and then
// calls MarkTaskNotified so it fires exactly once.
func (e *Engine) TasksDueForReminder() []*domain.CyberTask {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks.DueUnnotified()
}

// MarkTaskNotified records that a reminder for the task was delivered.
func (e *Engine) MarkTaskNotified(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tasks.MarkNotified(id)
}

// PostSystemMessage injects a message (e.g. a reminder banner) into the
// shared history outside the normal input flow.
func (e *Engine) PostSystemMessage(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.AddSystem(text)
}

// QuickAddTask creates a task in one step from pre-extracted slot values,
// bypassing the wizard. Used by the one-shot intent path where the intent
// extractor already pulled title, description and date out of the input.
func (e *Engine) QuickAddTask(title, description string, reminder *time.Time) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	reply := e.addTask(title, description, reminder)
	e.appendSystem(reply)
	return reply
}
