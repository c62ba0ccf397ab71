package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"
)

func TestFormatBotReply_IndentsContinuationLines(t *testing.T) {
	got := FormatBotReply("first line\nsecond line")
	assert.Contains(t, got, "Bot: ")
	assert.Contains(t, got, "\n     ")
	assert.Contains(t, got, "second line")
}

func TestFormatUserLine(t *testing.T) {
	got := FormatUserLine("what is a vpn")
	assert.Contains(t, got, "You: ")
	assert.Contains(t, got, "what is a vpn")
}

func TestReminderMessage(t *testing.T) {
	due := time.Date(2025, 12, 31, 18, 0, 0, 0, time.UTC)
	task := &domain.CyberTask{Title: "Renew antivirus", ReminderAt: &due}
	assert.Equal(t, "Reminder: task 'Renew antivirus' is due (2025-12-31 18:00).", ReminderMessage(task))
}

func TestFormatGreeting_UsesName(t *testing.T) {
	got := FormatGreeting("Naledi")
	assert.Contains(t, got, "Hello, Naledi!")
}
