package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSentiment_Grateful(t *testing.T) {
	reply, ok := DetectSentiment("thanks, that was helpful")
	assert.True(t, ok)
	assert.Contains(t, reply, "You're very welcome")
}

func TestDetectSentiment_Worried(t *testing.T) {
	reply, ok := DetectSentiment("I think I was hacked")
	assert.True(t, ok)
	assert.Contains(t, reply, "I understand your concern")
}

func TestDetectSentiment_Confused(t *testing.T) {
	reply, ok := DetectSentiment("I'm so confused by all this")
	assert.True(t, ok)
	assert.Contains(t, reply, "I understand this can be confusing")
}

func TestDetectSentiment_Greeting(t *testing.T) {
	reply, ok := DetectSentiment("good morning")
	assert.True(t, ok)
	assert.Contains(t, reply, "I'm your cybersecurity assistant")
}

func TestDetectSentiment_NoMatch(t *testing.T) {
	reply, ok := DetectSentiment("tell me about firewalls")
	assert.False(t, ok)
	assert.Empty(t, reply)
}
