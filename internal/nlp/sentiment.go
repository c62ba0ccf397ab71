package nlp

import "regexp"

var (
	reGrateful = regexp.MustCompile(`\b(thank you|thanks|appreciate|helpful|great|awesome|excellent)\b`)
	reConfused = regexp.MustCompile(`\b(confused|frustrated|don't understand|help|lost|stuck)\b`)
	reWorried  = regexp.MustCompile(`\b(worried|scared|concerned|afraid|anxious|hacked|compromised)\b`)
	reGreeting = regexp.MustCompile(`\b(hello|hi|hey|good morning|good afternoon|good evening)\b`)
)

// DetectSentiment matches the input against a few coarse sentiment
// classes and returns an empathetic reply for the first match.
// Returns "" and false when no sentiment is detected.
func DetectSentiment(input string) (string, bool) {
	lower := normalize(input)

	switch {
	case reGrateful.MatchString(lower):
		return "😊 You're very welcome! I'm glad I could help you with cybersecurity. Is there anything else you'd like to learn about?", true
	case reConfused.MatchString(lower):
		return "😕 I understand this can be confusing! Cybersecurity can seem overwhelming, but I'm here to help. What specific topic would you like me to explain more clearly?", true
	case reWorried.MatchString(lower):
		return "😰 I understand your concern about cybersecurity. It's good that you're being cautious! Let me help you understand the risks and how to protect yourself. What's your main worry?", true
	case reGreeting.MatchString(lower):
		return "👋 Hello! I'm your cybersecurity assistant. I'm here to help you stay safe online. What would you like to learn about today?", true
	}
	return "", false
}
