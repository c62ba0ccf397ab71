package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog() *Catalog {
	return New(rand.New(rand.NewSource(1)))
}

func TestIsTopicQuestion_KnownKeywords(t *testing.T) {
	c := newTestCatalog()

	assert.True(t, c.IsTopicQuestion("what is phishing?"))
	assert.True(t, c.IsTopicQuestion("tell me about VPN"))
	assert.True(t, c.IsTopicQuestion("is this email a scam"))
	assert.False(t, c.IsTopicQuestion("what's the weather like"))
}

func TestRespond_FirstMatchingTopicWins(t *testing.T) {
	c := newTestCatalog()

	reply := c.Respond("what is phishing?")
	found := false
	for _, topic := range c.topics {
		for _, variant := range topic.replies {
			if variant == reply {
				found = true
			}
		}
	}
	assert.True(t, found, "reply should come from the topic table")
}

func TestRespond_DeterministicForSeed(t *testing.T) {
	a := New(rand.New(rand.NewSource(9)))
	b := New(rand.New(rand.NewSource(9)))

	assert.Equal(t, a.Respond("tell me about malware"), b.Respond("tell me about malware"))
}

func TestRespond_UnmatchedKeywordFallsThrough(t *testing.T) {
	c := newTestCatalog()

	// "brute-force" is detected but carries no topic entry of its own.
	reply := c.Respond("what is a brute-force attack?")
	assert.Contains(t, reply, "That's an interesting cybersecurity topic!")
}

func TestTopicTable_EveryTopicHasReplies(t *testing.T) {
	for _, topic := range topicTable() {
		require.NotEmpty(t, topic.triggers)
		require.NotEmpty(t, topic.replies)
	}
}

func TestKeywords_ReturnsCopy(t *testing.T) {
	c := newTestCatalog()
	kws := c.Keywords()
	require.NotEmpty(t, kws)

	kws[0] = "mutated"
	assert.NotEqual(t, "mutated", c.Keywords()[0])
}

func TestHelp_ListsCapabilities(t *testing.T) {
	c := newTestCatalog()
	help := c.Help()
	assert.Contains(t, help, "start quiz")
	assert.Contains(t, help, "add task")
	assert.Contains(t, help, "show activity log")
	assert.Contains(t, help, "exit")
}
