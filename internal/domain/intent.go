package domain

import "time"

// IntentType classifies a raw user input.
type IntentType string

const (
	IntentAddTask         IntentType = "add_task"
	IntentViewTasks       IntentType = "view_tasks"
	IntentCompleteTask    IntentType = "complete_task"
	IntentStartQuiz       IntentType = "start_quiz"
	IntentAnswerQuiz      IntentType = "answer_quiz"
	IntentShowActivityLog IntentType = "show_activity_log"
	IntentQuestion        IntentType = "question"
	IntentUnknown         IntentType = "unknown"
)

// Intent is the structured result of classifying one input, with any slot
// values the classifier managed to extract.
type Intent struct {
	Type            IntentType
	RawInput        string
	TaskTitle       string
	TaskDescription string
	ReminderAt      *time.Time
	TaskIndex       int // 0 when absent
	QuizAnswer      string
}
