package engine

// chatState is the single current conversational state. It is the sole
// source of truth for how the next user message is interpreted.
type chatState int

const (
	stateIdle chatState = iota
	stateInQuiz
	stateAwaitingTitle
	stateAwaitingDescription
	stateAwaitingDate
	stateAwaitingIndex
)

func (s chatState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInQuiz:
		return "in_quiz"
	case stateAwaitingTitle:
		return "awaiting_title"
	case stateAwaitingDescription:
		return "awaiting_description"
	case stateAwaitingDate:
		return "awaiting_date"
	case stateAwaitingIndex:
		return "awaiting_index"
	default:
		return "unknown"
	}
}

// pendingTask accumulates wizard slot values across turns.
type pendingTask struct {
	title       string
	description string
}
