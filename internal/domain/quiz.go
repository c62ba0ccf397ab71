package domain

import (
	"fmt"
	"strings"
)

// QuizQuestion is one immutable question from the seed bank.
// For true/false questions the option order is a fixed convention:
// Options[0] is "True" and Options[1] is "False". CorrectIndex refers to
// that ordering, not to the option text.
type QuizQuestion struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
	IsTrueFalse  bool
}

// Formatted renders the question with its answer options for chat display.
func (q QuizQuestion) Formatted() string {
	var b strings.Builder
	b.WriteString(q.Prompt)
	b.WriteString("\n")
	if q.IsTrueFalse {
		b.WriteString("True or False?\n")
		return b.String()
	}
	for i, opt := range q.Options {
		b.WriteString(fmt.Sprintf("%c. %s\n", 'A'+i, opt))
	}
	return b.String()
}

// CorrectAnswerText renders the correct answer for "Incorrect" feedback.
func (q QuizQuestion) CorrectAnswerText() string {
	if q.IsTrueFalse {
		return q.Options[q.CorrectIndex]
	}
	return fmt.Sprintf("%c. %s", 'A'+q.CorrectIndex, q.Options[q.CorrectIndex])
}
