// Package catalog maps recognized cybersecurity keywords to canned reply
// variants. It is purely static content plus a keyword predicate; reply
// variety comes from an injected random source.
package catalog

import (
	"math/rand"
	"strings"
)

// detectKeywords drive the IsTopicQuestion predicate. A keyword here does
// not have to carry its own topic entry; unmatched ones fall through to
// the generic topic reply.
var detectKeywords = []string{
	"phishing", "malware", "password", "mfa", "antivirus", "brute-force",
	"encryption", "firewall", "vpn", "cybersecurity", "trojan", "worm",
	"ransomware", "spyware", "privacy", "social engineering", "backup", "scam",
}

// topic binds one or more trigger substrings to reply variants.
// Order matters: the first matching topic wins.
type topic struct {
	triggers []string
	replies  []string
}

// Catalog selects canned topic replies.
type Catalog struct {
	topics []topic
	rng    *rand.Rand
}

// New creates a catalog backed by the given random source.
func New(rng *rand.Rand) *Catalog {
	return &Catalog{topics: topicTable(), rng: rng}
}

// IsTopicQuestion reports whether the input mentions any known
// cybersecurity keyword.
func (c *Catalog) IsTopicQuestion(input string) bool {
	lower := strings.ToLower(input)
	for _, k := range detectKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Respond returns a reply for the first topic the input mentions, picking
// uniformly among the topic's variants.
func (c *Catalog) Respond(input string) string {
	lower := strings.ToLower(input)
	for _, t := range c.topics {
		for _, trigger := range t.triggers {
			if strings.Contains(lower, trigger) {
				return t.replies[c.rng.Intn(len(t.replies))]
			}
		}
	}
	return "That's an interesting cybersecurity topic! Could you please be more specific, or ask about common threats like phishing, malware, or the importance of strong passwords?"
}

// Keywords returns the recognized topic keywords in detection order.
func (c *Catalog) Keywords() []string {
	out := make([]string, len(detectKeywords))
	copy(out, detectKeywords)
	return out
}

// Help returns the static capability overview.
func (c *Catalog) Help() string {
	return "I can help with the following:\n" +
		" • Ask about cybersecurity topics (e.g., 'What is phishing?', 'Tell me about passwords', 'What is a scam?')\n" +
		" • Manage your cybersecurity tasks ('add task', 'view tasks', 'complete task 1')\n" +
		" • Take a cybersecurity quiz ('start quiz')\n" +
		" • View your activity log ('show activity log')\n" +
		" • Type 'hello' for a general greeting.\n" +
		" • Type 'exit' to quit."
}
