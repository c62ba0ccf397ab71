package formatter

import (
	"fmt"
	"strings"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"
)

const asciiBanner = `
    _   _   _   _   _
   / \ / \ / \ / \ / \
  | C | y | b | e | r |
   \_/ \_/ \_/ \_/ \_/
    _   _   _   _   _   _   _   _   _
   / \ / \ / \ / \ / \ / \ / \ / \ / \
  | A | w | a | r | e | n | e | s | s |
   \_/ \_/ \_/ \_/ \_/ \_/ \_/ \_/ \_/
        _   _   _
       / \ / \ / \
      | B | o | t |
       \_/ \_/ \_/
`

// FormatWelcome renders the startup banner shown when the shell opens.
func FormatWelcome() string {
	var b strings.Builder
	b.WriteString(StylePurple.Render(asciiBanner))
	b.WriteString("\n")
	b.WriteString(Dim("Ask about cybersecurity topics, manage tasks, or take a quiz."))
	b.WriteString("\n")
	b.WriteString(Dim("Type 'help' for options, 'exit' to quit."))
	return b.String()
}

// FormatGreeting renders the personalized greeting after name capture.
func FormatGreeting(name string) string {
	return StyleGreen.Render(fmt.Sprintf("Hello, %s! Welcome to the Cybersecurity Awareness Bot.", name))
}

// FormatUserLine echoes a sent user message into the scrollback.
func FormatUserLine(text string) string {
	return StyleYellow.Render("You: ") + StyleFg.Render(text)
}

// FormatBotReply renders a bot reply, indenting continuation lines under
// the speaker label.
func FormatBotReply(text string) string {
	lines := strings.Split(text, "\n")
	var b strings.Builder
	b.WriteString(StyleBlue.Render("Bot: "))
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n     ")
		}
		b.WriteString(StyleFg.Render(line))
	}
	return b.String()
}

// FormatReminder renders the banner shown when a task reminder fires.
func FormatReminder(t *domain.CyberTask) string {
	return StyleRed.Render("⏰ Reminder: ") +
		StyleFg.Render(fmt.Sprintf("task '%s' is due (%s).", t.Title, t.ReminderAt.Format("2006-01-02 15:04")))
}

// ReminderMessage is the plain-text form of a reminder banner, recorded in
// the conversation history.
func ReminderMessage(t *domain.CyberTask) string {
	return fmt.Sprintf("Reminder: task '%s' is due (%s).", t.Title, t.ReminderAt.Format("2006-01-02 15:04"))
}
