package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/cli/formatter"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/engine"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt shellMode = iota // Normal chat input.
	modeName                    // huh name form is active.
)

// reminderTickMsg triggers a poll for due task reminders.
type reminderTickMsg time.Time

// shellModel is the bubbletea Model for the interactive chat shell.
type shellModel struct {
	// bubbletea components
	input textinput.Model
	form  *huh.Form // active name form (nil once name is captured)
	width int

	// shell state
	app       *App
	nameValue string

	// mode management
	mode shellMode

	// history
	history    []string
	historyIdx int

	// lifecycle
	quitting bool
}

// newShellModel creates a new bubbletea shell model.
func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Use Tab for suggestion acceptance, reserve Up/Down for history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	hist := loadShellHistory()

	m := shellModel{
		input:      ti,
		app:        app,
		history:    hist,
		historyIdx: len(hist),
	}

	if strings.TrimSpace(app.Config.UserName) == "" {
		m.mode = modeName
		m.form = newNameForm(&m.nameValue)
	}

	return m
}

// newNameForm builds the one-field name capture form shown on startup.
func newNameForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What is your name?").
				Placeholder("Guest").
				Value(value),
		),
	)
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		tea.Println(formatter.FormatWelcome()),
		m.reminderTick(),
	}
	if m.mode == modeName && m.form != nil {
		cmds = append(cmds, m.form.Init())
	} else {
		m.app.Engine.SetUserName(m.app.Config.UserName)
		cmds = append(cmds, tea.Println(formatter.FormatGreeting(m.app.Engine.UserName())))
	}
	return tea.Batch(cmds...)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(promptPrefixPlain) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case reminderTickMsg:
		return m.deliverReminders()

	case tea.KeyMsg:
		// Global quit.
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		if m.mode == modeName {
			return m.updateNameForm(msg)
		}
		return m.updatePrompt(msg)
	}

	// When the name form is active, forward non-key messages to it
	// (e.g. init messages, focus transitions) so it can function properly.
	if m.mode == modeName && m.form != nil {
		return m.updateNameForm(msg)
	}

	// Pass other messages to textinput.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

const promptPrefixPlain = "you ❯ "

func (m shellModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeName && m.form != nil {
		return m.form.View()
	}
	return formatter.StylePurple.Render("you") + " " + formatter.Dim("❯") + " " + m.input.View()
}

// ── name form ────────────────────────────────────────────────────────────────

func (m shellModel) updateNameForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.mode = modePrompt
		m.form = nil
		m.app.Engine.SetUserName(m.nameValue)
		greeting := formatter.FormatGreeting(m.app.Engine.UserName())
		return m, tea.Batch(cmd, tea.Println(greeting))
	}

	return m, cmd
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)
		return m.executeInput(input)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

// commandSuggestions seeds the textinput completion pool.
func commandSuggestions() []string {
	return []string{
		"add task", "view tasks", "complete task",
		"start quiz", "my quiz score",
		"show activity log", "how many tasks",
		"help", "exit",
		"/clear", "/transcript",
	}
}

func (m *shellModel) updateSuggestions() {
	text := strings.ToLower(m.input.Value())
	if text == "" {
		m.input.SetSuggestions(nil)
		return
	}
	var matches []string
	for _, s := range commandSuggestions() {
		if strings.HasPrefix(s, text) {
			matches = append(matches, s)
		}
	}
	m.input.SetSuggestions(matches)
}

// executeInput routes a submitted line: slash commands act on the shell
// itself, everything else goes through the chat engine.
func (m shellModel) executeInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/clear":
		m.app.Engine.ClearConversation()
		return m, tea.Println(formatter.Dim("Conversation cleared."))
	case "/transcript":
		transcript := m.app.Engine.Transcript()
		if transcript == "" {
			return m, tea.Println(formatter.Dim("Nothing said yet."))
		}
		return m, tea.Println(transcript)
	}

	echo := tea.Println(formatter.FormatUserLine(input))

	reply := m.app.Engine.HandleInput(input)
	if reply == engine.ExitSentinel {
		m.quitting = true
		farewell := formatter.FormatBotReply(m.app.Engine.LatestMessage())
		return m, tea.Sequence(echo, tea.Println(farewell), tea.Quit)
	}

	return m, tea.Sequence(echo, tea.Println(formatter.FormatBotReply(reply)))
}

// ── reminders ────────────────────────────────────────────────────────────────

// reminderTick schedules the next due-reminder poll.
func (m shellModel) reminderTick() tea.Cmd {
	interval := time.Duration(m.app.Config.ReminderPollSec) * time.Second
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

// deliverReminders prints a banner for every due task, records it in the
// conversation, and marks the task notified so it fires exactly once.
func (m shellModel) deliverReminders() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.reminderTick()}
	for _, t := range m.app.Engine.TasksDueForReminder() {
		m.app.Engine.PostSystemMessage(formatter.ReminderMessage(t))
		m.app.Engine.MarkTaskNotified(t.ID)
		cmds = append(cmds, tea.Println(formatter.FormatReminder(t)))
	}
	return m, tea.Batch(cmds...)
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendShellHistory(line)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
	}
}
