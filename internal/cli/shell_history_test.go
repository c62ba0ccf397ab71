package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShellHistory_FileNotFound_ReturnsNil(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent", "shell_history")
	lines := loadHistoryFromPath(path)
	assert.Nil(t, lines)
}

func TestLoadShellHistory_ReadsLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shell_history")
	content := "what is phishing\nadd task\nstart quiz\nview tasks\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines := loadHistoryFromPath(path)
	assert.Equal(t, []string{"what is phishing", "add task", "start quiz", "view tasks"}, lines)
}

func TestLoadShellHistory_TruncatesOverMax(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shell_history")

	var b strings.Builder
	for i := 0; i < 600; i++ {
		b.WriteString("line\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	lines := loadHistoryFromPath(path)
	assert.Len(t, lines, maxHistoryLines)
}

func TestAppendShellHistory_AppendsLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shell_history")

	appendHistoryToPath(path, "first message")
	appendHistoryToPath(path, "second message")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first message\nsecond message\n", string(data))
}

func TestAppendShellHistory_SkipsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shell_history")

	appendHistoryToPath(path, "")
	appendHistoryToPath(path, "   ")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file should not be created for empty lines")
}
