package quiz

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"
)

const startBanner = "Quiz started! Choose the correct option (A, B, C, D for multiple choice, or True/False)."

// Engine runs one quiz session at a time over a shuffled copy of the
// static question bank. Not safe for concurrent use; the conversation
// engine serializes access.
type Engine struct {
	questions []domain.QuizQuestion
	cursor    int
	correct   int
	active    bool
	rng       *rand.Rand
}

// NewEngine creates a quiz engine using the given random source for
// shuffling. Inject a fixed-seed source in tests for deterministic order.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{questions: seedBank(), rng: rng}
}

// Active reports whether a session is in progress.
func (e *Engine) Active() bool {
	return e.active
}

// Start begins a new session: shuffles the bank, resets the cursor and
// score, and returns the start banner with the first question. When a
// session is already running it returns a warning and ok=false.
func (e *Engine) Start() (string, bool) {
	if e.active {
		return "A quiz is already in progress. Please answer the current question or clear the chat to start a new one.", false
	}
	e.active = true
	e.cursor = 0
	e.correct = 0
	e.shuffle()
	return startBanner + "\n\n" + e.questions[e.cursor].Formatted(), true
}

// Answer grades free-text input against the current question. It returns
// the reply to show and whether the session ended with this call.
//
// Invalid input format re-prompts without advancing the cursor. Valid
// input always advances: the reply carries the verdict, the explanation,
// and either the next question or the final score.
func (e *Engine) Answer(text string) (reply string, ended bool) {
	if !e.active || e.cursor >= len(e.questions) {
		e.active = false
		return "The quiz is not active or has ended. Please start a new one if you wish to play again.", true
	}

	q := e.questions[e.cursor]
	idx, ok := parseAnswer(q, text)
	if !ok {
		if q.IsTrueFalse {
			return "Invalid answer. Please type 'True' or 'False'.", false
		}
		return "Invalid answer. Please choose A, B, C, or D (or 1, 2, 3, 4).", false
	}

	var b strings.Builder
	if idx == q.CorrectIndex {
		e.correct++
		b.WriteString("Correct! 🎉")
	} else {
		b.WriteString(fmt.Sprintf("Incorrect. The correct answer was %s", q.CorrectAnswerText()))
	}
	b.WriteString("\nExplanation: ")
	b.WriteString(q.Explanation)

	e.cursor++
	if e.cursor >= len(e.questions) {
		e.active = false
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Quiz complete! You scored %d%% (%d out of %d correct).",
			e.percentage(), e.correct, len(e.questions)))
		return b.String(), true
	}

	b.WriteString("\n\n")
	b.WriteString(e.questions[e.cursor].Formatted())
	return b.String(), false
}

// Score returns the last session's percentage. It is unavailable while a
// session is active.
func (e *Engine) Score() (int, bool) {
	if e.active {
		return 0, false
	}
	return e.percentage(), true
}

// Reset forces the engine back to a not-started state regardless of the
// current one. Used when the whole conversation is cleared.
func (e *Engine) Reset() {
	e.active = false
	e.cursor = 0
	e.correct = 0
}

func (e *Engine) percentage() int {
	if len(e.questions) == 0 {
		return 0
	}
	return int(math.Round(float64(e.correct) / float64(len(e.questions)) * 100))
}

func (e *Engine) shuffle() {
	e.rng.Shuffle(len(e.questions), func(i, j int) {
		e.questions[i], e.questions[j] = e.questions[j], e.questions[i]
	})
}

// parseAnswer maps free text onto an option index. True/false questions
// accept only the literals "true"/"false" (any case); multiple choice
// accepts a single letter A.. or a digit 1.. within the option count.
func parseAnswer(q domain.QuizQuestion, text string) (int, bool) {
	answer := strings.ToUpper(strings.TrimSpace(text))

	if q.IsTrueFalse {
		switch answer {
		case "TRUE":
			return 0, true
		case "FALSE":
			return 1, true
		}
		return -1, false
	}

	if len(answer) == 1 && answer[0] >= 'A' && int(answer[0]) < 'A'+len(q.Options) {
		return int(answer[0] - 'A'), true
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(q.Options) {
		return n - 1, true
	}
	return -1, false
}
