// Package engine implements the conversation orchestrator: a small state
// machine that routes free-text input to the quiz engine, the task-creation
// wizard, direct commands, or the keyword response catalog while keeping
// multi-turn context. The engine alone writes to the history store;
// collaborators return their replies.
package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/catalog"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/nlp"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/quiz"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/store"
)

// ExitSentinel is the reserved HandleInput return value that signals a
// user-requested shutdown. It is never produced as an ordinary reply.
const ExitSentinel = "EXIT_COMMAND"

const defaultUserName = "Guest"

// Deps holds the engine's mandatory collaborators.
type Deps struct {
	History  *store.History
	Tasks    *store.TaskStore
	Activity *store.ActivityLog
	Quiz     *quiz.Engine
	Catalog  *catalog.Catalog
	Rand     *rand.Rand
	Logger   *zap.Logger // optional; defaults to zap.NewNop()
	Now      func() time.Time
}

// Engine is the conversation orchestrator. All methods serialize on an
// internal mutex so the UI's reminder poll and HandleInput never race.
type Engine struct {
	mu sync.Mutex

	history  *store.History
	tasks    *store.TaskStore
	activity *store.ActivityLog
	quiz     *quiz.Engine
	catalog  *catalog.Catalog
	rng      *rand.Rand
	log      *zap.Logger
	now      func() time.Time

	state    chatState
	pending  pendingTask
	userName string
}

// New validates that every collaborator is present and builds the engine.
func New(deps Deps) (*Engine, error) {
	switch {
	case deps.History == nil:
		return nil, fmt.Errorf("engine: history store is required")
	case deps.Tasks == nil:
		return nil, fmt.Errorf("engine: task store is required")
	case deps.Activity == nil:
		return nil, fmt.Errorf("engine: activity log is required")
	case deps.Quiz == nil:
		return nil, fmt.Errorf("engine: quiz engine is required")
	case deps.Catalog == nil:
		return nil, fmt.Errorf("engine: response catalog is required")
	case deps.Rand == nil:
		return nil, fmt.Errorf("engine: random source is required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	e := &Engine{
		history:  deps.History,
		tasks:    deps.Tasks,
		activity: deps.Activity,
		quiz:     deps.Quiz,
		catalog:  deps.Catalog,
		rng:      deps.Rand,
		log:      deps.Logger,
		now:      deps.Now,
		userName: defaultUserName,
	}
	e.activity.Log("Chatbot engine initialized.")
	return e, nil
}

// HandleInput is the primary entry point: it records the user message,
// routes it through the state machine or the direct-command table, records
// the reply, and returns it. A return of ExitSentinel means the user asked
// to quit.
func (e *Engine) HandleInput(input string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history.AddUser(input)
	e.activity.Log(fmt.Sprintf("User input: %q", input))

	lower := strings.ToLower(strings.TrimSpace(input))

	// State-priority dispatch: a non-empty reply from the active state's
	// handler consumes the input; direct commands are not checked.
	if reply := e.handleStateInput(input, lower); reply != "" {
		e.appendSystem(reply)
		return reply
	}

	reply := e.handleDirectCommand(input, lower)
	if reply == ExitSentinel {
		return ExitSentinel
	}
	e.appendSystem(reply)
	return reply
}

// handleStateInput routes input while a multi-turn flow is active.
// Returns "" when the state is idle so direct-command matching runs.
func (e *Engine) handleStateInput(raw, lower string) string {
	switch e.state {
	case stateInQuiz:
		reply, ended := e.quiz.Answer(raw)
		if ended {
			e.setState(stateIdle)
		}
		return reply

	case stateAwaitingTitle:
		title := strings.TrimSpace(raw)
		if title == "" {
			return "The task title cannot be empty. Please try again."
		}
		e.pending.title = title
		e.setState(stateAwaitingDescription)
		return "Got it. Now, please provide a short description for this task."

	case stateAwaitingDescription:
		description := strings.TrimSpace(raw)
		if description == "" {
			return "The task description cannot be empty. Please try again."
		}
		e.pending.description = description
		e.setState(stateAwaitingDate)
		return "Okay. Do you want to set a reminder date and time? (e.g., '2025-12-31 18:00' or 'no')"

	case stateAwaitingDate:
		var reminder *time.Time
		if lower != "no" {
			reminder = nlp.ExtractDate(raw, e.now())
			if reminder == nil {
				// The only validation failure that re-prompts without
				// leaving its state.
				return "I couldn't understand that date. Please try a format like 'YYYY-MM-DD HH:MM' or type 'no' for no reminder."
			}
		}
		reply := e.addTask(e.pending.title, e.pending.description, reminder)
		e.pending = pendingTask{}
		e.setState(stateIdle)
		return reply

	case stateAwaitingIndex:
		e.setState(stateIdle)
		idx, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return "Please provide a valid task number to complete."
		}
		return e.completeTask(idx)

	default:
		return ""
	}
}

// handleDirectCommand matches idle-state input against the fixed-priority
// command table; the first match wins.
func (e *Engine) handleDirectCommand(raw, lower string) string {
	switch {
	case lower == "exit" || lower == "quit" || lower == "bye":
		e.appendSystem(fmt.Sprintf("Goodbye, %s! Stay safe online!", e.userName))
		return ExitSentinel

	case strings.Contains(lower, "thank"):
		return e.pickTemplate(thankTemplates)

	case lower == "help":
		return e.catalog.Help()

	case strings.Contains(lower, "start quiz"):
		reply, ok := e.quiz.Start()
		if ok {
			e.setState(stateInQuiz)
		}
		return reply

	case strings.Contains(lower, "add task"):
		e.pending = pendingTask{}
		e.setState(stateAwaitingTitle)
		return "What is the title for this task?"

	case strings.Contains(lower, "complete task"):
		if idx, ok := trailingInt(lower); ok {
			return e.completeTask(idx)
		}
		e.setState(stateAwaitingIndex)
		return "Which task number would you like to complete? (e.g., 'complete 1')"

	case strings.Contains(lower, "view tasks") || strings.Contains(lower, "show tasks"):
		return e.renderTasks()

	case strings.Contains(lower, "show activity log") || strings.Contains(lower, "view activity log"):
		return e.renderActivity()

	case strings.Contains(lower, "how many tasks"):
		return fmt.Sprintf("You currently have %d active tasks.", e.tasks.ActiveCount())

	case strings.Contains(lower, "my quiz score") || strings.Contains(lower, "what's my score"):
		if score, ok := e.quiz.Score(); ok {
			return fmt.Sprintf("Your last quiz score was %d%%.", score)
		}
		return "A quiz is not currently in progress or hasn't been completed yet."

	case e.catalog.IsTopicQuestion(lower):
		return e.catalog.Respond(lower)

	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi"):
		return e.pickTemplate(greetingTemplates)

	default:
		if reply, ok := nlp.DetectSentiment(lower); ok {
			return reply
		}
		return "I'm still learning! Can you please rephrase that, or ask about a specific cybersecurity topic? Type 'help' for options."
	}
}

// ── task helpers ─────────────────────────────────────────────────────────────

func (e *Engine) addTask(title, description string, reminder *time.Time) string {
	t := e.tasks.Add(title, description, reminder)
	e.log.Debug("task added",
		zap.String("id", t.ID),
		zap.String("title", t.Title),
		zap.Bool("has_reminder", reminder != nil),
	)
	if reminder != nil {
		return fmt.Sprintf("Task '%s' added successfully with a reminder for %s.",
			t.Title, reminder.Format("2006-01-02 15:04"))
	}
	return fmt.Sprintf("Task '%s' added successfully.", t.Title)
}

func (e *Engine) completeTask(visibleIndex int) string {
	t, ok := e.tasks.Complete(visibleIndex)
	if !ok {
		return "Invalid task number. Please provide a valid number from the active tasks list."
	}
	e.log.Debug("task completed", zap.String("id", t.ID), zap.String("title", t.Title))
	return fmt.Sprintf("Task '%s' marked as complete. Well done!", t.Title)
}

func (e *Engine) renderTasks() string {
	active := e.tasks.ListActive()
	if len(active) == 0 {
		return "You have no active tasks currently. Great job!"
	}
	var b strings.Builder
	b.WriteString("Your current active tasks:")
	for i, t := range active {
		b.WriteString(fmt.Sprintf("\n- %d. %s", i+1, t.String()))
	}
	return b.String()
}

func (e *Engine) renderActivity() string {
	entries := e.activity.All()
	if len(entries) == 0 {
		return "No activities logged yet."
	}
	var b strings.Builder
	b.WriteString("Recent activities:")
	for _, entry := range entries {
		b.WriteString("\n- ")
		b.WriteString(entry.String())
	}
	return b.String()
}

// ── internals ────────────────────────────────────────────────────────────────

// appendSystem records a bot reply, skipping the append when the latest
// entry already carries the same text.
func (e *Engine) appendSystem(text string) {
	if text == "" || e.history.Latest() == text {
		return
	}
	e.history.AddSystem(text)
}

func (e *Engine) setState(next chatState) {
	if next == e.state {
		return
	}
	e.log.Debug("conversation state transition",
		zap.Stringer("from", e.state),
		zap.Stringer("to", next),
	)
	e.state = next
}

func (e *Engine) pickTemplate(templates []string) string {
	return fmt.Sprintf(templates[e.rng.Intn(len(templates))], e.userName)
}

// trailingInt scans tokens right-to-left and returns the first parseable
// integer, so "complete task 2 please 3" resolves to 3.
func trailingInt(input string) (int, bool) {
	parts := strings.Fields(input)
	for i := len(parts) - 1; i >= 0; i-- {
		if n, err := strconv.Atoi(parts[i]); err == nil {
			return n, true
		}
	}
	return 0, false
}

var thankTemplates = []string{
	"You're welcome, %s! Happy to help with cybersecurity!",
	"No problem, %s! Is there anything else you'd like to know about online safety?",
	"You're very welcome, %s! Feel free to ask me more questions anytime.",
	"Glad I could help, %s! What else would you like to learn about cybersecurity?",
}

var greetingTemplates = []string{
	"Hello there, %s! How can I help you with cybersecurity today?",
	"Hi %s! Ready to learn something new about online safety?",
	"Greetings, %s! What's on your mind regarding cybersecurity?",
}
