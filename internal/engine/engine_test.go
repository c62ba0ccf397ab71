package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/catalog"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/quiz"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/store"
)

// Wednesday, 4 June 2025, 10:00.
var testNow = time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	e, err := New(Deps{
		History:  store.NewHistory(),
		Tasks:    store.NewTaskStoreWithClock(func() time.Time { return testNow }),
		Activity: store.NewActivityLog(),
		Quiz:     quiz.NewEngine(rng),
		Catalog:  catalog.New(rng),
		Rand:     rng,
		Now:      func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return e
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(Deps{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history store is required")

	rng := rand.New(rand.NewSource(1))
	_, err = New(Deps{
		History:  store.NewHistory(),
		Tasks:    store.NewTaskStore(),
		Activity: store.NewActivityLog(),
		Quiz:     quiz.NewEngine(rng),
		Catalog:  catalog.New(rng),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "random source is required")
}

func TestNew_LogsInitialization(t *testing.T) {
	e := newTestEngine(t)
	log := e.ShowActivityLog()
	assert.Contains(t, log, "Chatbot engine initialized.")
}

// ── exit and greetings ───────────────────────────────────────────────────────

func TestHandleInput_Exit_ReturnsSentinelWithFarewellInHistory(t *testing.T) {
	e := newTestEngine(t)
	e.SetUserName("Thabo")

	reply := e.HandleInput("exit")
	assert.Equal(t, ExitSentinel, reply)
	assert.Equal(t, "Goodbye, Thabo! Stay safe online!", e.LatestMessage())
}

func TestHandleInput_QuitAndBye(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, ExitSentinel, e.HandleInput("quit"))

	e = newTestEngine(t)
	assert.Equal(t, ExitSentinel, e.HandleInput("bye"))
}

func TestHandleInput_Thanks_UsesName(t *testing.T) {
	e := newTestEngine(t)
	e.SetUserName("Lerato")

	reply := e.HandleInput("thank you so much")
	assert.Contains(t, reply, "Lerato")
}

func TestHandleInput_Hello_GreetingTemplate(t *testing.T) {
	e := newTestEngine(t)
	reply := e.HandleInput("hello")
	assert.Contains(t, reply, "Guest")
}

func TestHandleInput_Help(t *testing.T) {
	e := newTestEngine(t)
	reply := e.HandleInput("help")
	assert.Contains(t, reply, "I can help with the following:")
}

func TestHandleInput_Fallback(t *testing.T) {
	e := newTestEngine(t)
	reply := e.HandleInput("flibbertigibbet")
	assert.Contains(t, reply, "I'm still learning!")
}

// ── add-task wizard ──────────────────────────────────────────────────────────

func TestWizard_AddTaskWithReminder(t *testing.T) {
	e := newTestEngine(t)

	reply := e.HandleInput("add task")
	assert.Equal(t, "What is the title for this task?", reply)

	reply = e.HandleInput("Buy a lock")
	assert.Equal(t, "Got it. Now, please provide a short description for this task.", reply)

	reply = e.HandleInput("For the server cabinet")
	assert.Equal(t, "Okay. Do you want to set a reminder date and time? (e.g., '2025-12-31 18:00' or 'no')", reply)

	reply = e.HandleInput("tomorrow")
	assert.Equal(t, "Task 'Buy a lock' added successfully with a reminder for 2025-06-05 17:00.", reply)

	tasks := e.ListTasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy a lock", tasks[0].Title)
	require.NotNil(t, tasks[0].ReminderAt)
	assert.Equal(t, time.Date(2025, 6, 5, 17, 0, 0, 0, time.UTC), *tasks[0].ReminderAt)
}

func TestWizard_NoReminder(t *testing.T) {
	e := newTestEngine(t)

	e.HandleInput("add task")
	e.HandleInput("Backup photos")
	e.HandleInput("Copy to external drive")
	reply := e.HandleInput("no")

	assert.Equal(t, "Task 'Backup photos' added successfully.", reply)
	tasks := e.ListTasks()
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].ReminderAt)
}

func TestWizard_EmptyTitleReprompts(t *testing.T) {
	e := newTestEngine(t)

	e.HandleInput("add task")
	reply := e.HandleInput("   ")
	assert.Equal(t, "The task title cannot be empty. Please try again.", reply)

	// Still awaiting the title.
	reply = e.HandleInput("Patch laptop")
	assert.Equal(t, "Got it. Now, please provide a short description for this task.", reply)
}

func TestWizard_BadDateRepromptsInPlace(t *testing.T) {
	e := newTestEngine(t)

	e.HandleInput("add task")
	e.HandleInput("Change passwords")
	e.HandleInput("All banking sites")
	reply := e.HandleInput("whenever you like")
	assert.Contains(t, reply, "I couldn't understand that date.")

	// A valid answer still completes the wizard.
	reply = e.HandleInput("no")
	assert.Equal(t, "Task 'Change passwords' added successfully.", reply)
}

func TestWizard_ExitBecomesTitleNotCommand(t *testing.T) {
	e := newTestEngine(t)

	e.HandleInput("add task")
	reply := e.HandleInput("exit")

	// Mid-wizard text is consumed as the slot value, never as a command.
	assert.Equal(t, "Got it. Now, please provide a short description for this task.", reply)
	assert.NotEqual(t, ExitSentinel, reply)
}

func TestWizard_TitleCasePreserved(t *testing.T) {
	e := newTestEngine(t)

	e.HandleInput("add task")
	e.HandleInput("Enable MFA Everywhere")
	e.HandleInput("Every account that supports it")
	e.HandleInput("no")

	tasks := e.ListTasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Enable MFA Everywhere", tasks[0].Title)
}

// ── completing tasks ─────────────────────────────────────────────────────────

func addTask(e *Engine, title string) {
	e.HandleInput("add task")
	e.HandleInput(title)
	e.HandleInput("description")
	e.HandleInput("no")
}

func TestCompleteTask_WithTrailingIndex(t *testing.T) {
	e := newTestEngine(t)
	addTask(e, "first")
	addTask(e, "second")

	reply := e.HandleInput("complete task 2")
	assert.Equal(t, "Task 'second' marked as complete. Well done!", reply)
	assert.Equal(t, 1, e.ActiveTaskCount())
}

func TestCompleteTask_PromptsForIndex(t *testing.T) {
	e := newTestEngine(t)
	addTask(e, "only")

	reply := e.HandleInput("complete task")
	assert.Equal(t, "Which task number would you like to complete? (e.g., 'complete 1')", reply)

	reply = e.HandleInput("1")
	assert.Equal(t, "Task 'only' marked as complete. Well done!", reply)
}

func TestCompleteTask_InvalidIndex(t *testing.T) {
	e := newTestEngine(t)
	addTask(e, "only")

	reply := e.HandleInput("complete task 99")
	assert.Equal(t, "Invalid task number. Please provide a valid number from the active tasks list.", reply)
	assert.Equal(t, 1, e.ActiveTaskCount())
}

func TestCompleteTask_NonNumericIndexReturnsToIdle(t *testing.T) {
	e := newTestEngine(t)
	addTask(e, "only")

	e.HandleInput("complete task")
	reply := e.HandleInput("the first one")
	assert.Equal(t, "Please provide a valid task number to complete.", reply)

	// Back in idle: direct commands work again.
	reply = e.HandleInput("how many tasks do I have?")
	assert.Equal(t, "You currently have 1 active tasks.", reply)
}

func TestViewTasks_ShiftedIndicesAfterCompletion(t *testing.T) {
	e := newTestEngine(t)
	addTask(e, "first")
	addTask(e, "second")
	addTask(e, "third")

	e.HandleInput("complete task 1")

	reply := e.HandleInput("view tasks")
	assert.Contains(t, reply, "- 1. [ACTIVE] second - description")
	assert.Contains(t, reply, "- 2. [ACTIVE] third - description")
	assert.NotContains(t, reply, "first")
}

func TestViewTasks_Empty(t *testing.T) {
	e := newTestEngine(t)
	reply := e.HandleInput("view tasks")
	assert.Equal(t, "You have no active tasks currently. Great job!", reply)
}

// ── quiz flow ────────────────────────────────────────────────────────────────

func TestStartQuiz_EntersQuizState(t *testing.T) {
	e := newTestEngine(t)

	reply := e.HandleInput("start quiz")
	assert.Contains(t, reply, "Quiz started!")
	assert.Equal(t, stateInQuiz, e.state)

	// While in the quiz, direct commands are consumed as answers.
	reply = e.HandleInput("view tasks")
	assert.Contains(t, reply, "Invalid answer.")
	assert.Equal(t, stateInQuiz, e.state)
}

func TestQuiz_CompletesAndLeavesQuizState(t *testing.T) {
	e := newTestEngine(t)
	e.HandleInput("start quiz")

	for i := 0; i < 12; i++ {
		// Valid answers always advance; "a" covers multiple choice and
		// "true" covers true/false, so alternate until the session ends.
		reply := e.HandleInput("a")
		if strings.Contains(reply, "Invalid answer.") {
			reply = e.HandleInput("true")
		}
		if strings.Contains(reply, "Quiz complete!") {
			assert.Equal(t, stateIdle, e.state)
			score, ok := e.QuizScore()
			assert.True(t, ok)
			assert.GreaterOrEqual(t, score, 0)
			return
		}
	}
	t.Fatal("quiz never completed")
}

func TestQuizScore_UnavailableDuringQuiz(t *testing.T) {
	e := newTestEngine(t)
	e.HandleInput("start quiz")

	reply := e.HandleInput("what's my score")
	// Consumed as a quiz answer, not as a command.
	assert.Contains(t, reply, "Invalid answer.")

	_, ok := e.QuizScore()
	assert.False(t, ok)
}

func TestQuizScoreQuery_BeforeAnyQuiz(t *testing.T) {
	e := newTestEngine(t)
	reply := e.HandleInput("my quiz score")
	// Score of a never-started engine reads as a completed 0-correct run.
	assert.Contains(t, reply, "Your last quiz score was 0%.")
}

// ── catalog and sentiment ────────────────────────────────────────────────────

func TestHandleInput_TopicQuestion(t *testing.T) {
	e := newTestEngine(t)
	reply := e.HandleInput("what is phishing?")
	assert.NotContains(t, reply, "I'm still learning!")
	assert.NotEmpty(t, reply)
}

func TestHandleInput_WorriedSentiment(t *testing.T) {
	e := newTestEngine(t)
	reply := e.HandleInput("i am worried about my accounts")
	assert.Contains(t, reply, "I understand your concern")
}

// ── history and activity ─────────────────────────────────────────────────────

func TestHandleInput_RecordsBothSidesInHistory(t *testing.T) {
	e := newTestEngine(t)
	e.HandleInput("help")

	transcript := e.Transcript()
	assert.Contains(t, transcript, "You: help")
	assert.Contains(t, transcript, "Bot: I can help with the following:")
}

func TestShowActivityLog_RecordsInputs(t *testing.T) {
	e := newTestEngine(t)
	e.HandleInput("hello")

	reply := e.HandleInput("show activity log")
	assert.Contains(t, reply, "Recent activities:")
	assert.Contains(t, reply, `User input: "hello"`)
}

func TestActivityLog_CapBounded(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 120; i++ {
		e.HandleInput(fmt.Sprintf("hello %d", i))
	}
	assert.LessOrEqual(t, e.ActivityCount(), store.DefaultActivityCapacity)
}

// ── clearing ─────────────────────────────────────────────────────────────────

func TestClearConversation_ResetsEverything(t *testing.T) {
	e := newTestEngine(t)
	e.HandleInput("start quiz")
	require.Equal(t, stateInQuiz, e.state)

	e.ClearConversation()

	assert.Equal(t, stateIdle, e.state)
	assert.Equal(t, "Chat history cleared.", e.LatestMessage())

	// The quiz can be started fresh.
	reply := e.HandleInput("start quiz")
	assert.Contains(t, reply, "Quiz started!")
}

func TestClearConversation_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	e.HandleInput("hello")

	e.ClearConversation()
	first := e.Transcript()
	e.ClearConversation()
	assert.Equal(t, first, e.Transcript())
}

func TestClearConversation_DropsPendingWizard(t *testing.T) {
	e := newTestEngine(t)
	e.HandleInput("add task")
	e.HandleInput("half-finished")

	e.ClearConversation()

	// Title input is interpreted as a fresh command, not a wizard slot.
	reply := e.HandleInput("view tasks")
	assert.Equal(t, "You have no active tasks currently. Great job!", reply)
}

// ── reminders ────────────────────────────────────────────────────────────────

func TestTasksDueForReminder_FiresOnce(t *testing.T) {
	e := newTestEngine(t)

	past := testNow.Add(-time.Hour)
	e.QuickAddTask("Renew antivirus", "License expires", &past)

	due := e.TasksDueForReminder()
	require.Len(t, due, 1)
	assert.Equal(t, "Renew antivirus", due[0].Title)

	e.MarkTaskNotified(due[0].ID)
	assert.Empty(t, e.TasksDueForReminder())
}

func TestQuickAddTask_RecordsReply(t *testing.T) {
	e := newTestEngine(t)

	reply := e.QuickAddTask("Update router", "Firmware patch", nil)
	assert.Equal(t, "Task 'Update router' added successfully.", reply)
	assert.Equal(t, reply, e.LatestMessage())
	assert.Equal(t, 1, e.ActiveTaskCount())
}

// ── user name ────────────────────────────────────────────────────────────────

func TestSetUserName_BlankFallsBackToGuest(t *testing.T) {
	e := newTestEngine(t)
	e.SetUserName("   ")
	assert.Equal(t, "Guest", e.UserName())

	e.SetUserName("Sipho")
	assert.Equal(t, "Sipho", e.UserName())
}
