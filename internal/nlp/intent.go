// Package nlp provides the regex-based intent extractor, reminder date
// parsing, and sentiment detection. Classification never goes beyond
// substring and regular-expression matching.
package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"
)

var (
	reAddTask     = regexp.MustCompile(`^(add|new|create)\s+task\s*(.*)$`)
	reViewTasks   = regexp.MustCompile(`^(view|show|list)\s+tasks|my tasks$`)
	reComplete    = regexp.MustCompile(`^(complete|finish|done)\s+task\s*(\d*)$`)
	reStartQuiz   = regexp.MustCompile(`^(start|begin|take)\s+quiz|quiz\s+me$`)
	reQuizAnswer  = regexp.MustCompile(`(?i)^[abcd]$|^[1-4]$|^my\s+answer\s+is\s+[abcd1-4]$|^answer\s+is\s+[abcd1-4]$`)
	reActivityLog = regexp.MustCompile(`^(activity|show|view)\s+log|my\s+activity$`)

	reTaskQuoted  = regexp.MustCompile(`(?i)^(add|new|create)\s+task\s+"([^"]+)"(?:\s+-\s*"([^"]+)")?(?:\s+(?:on|by|for)\s+(.*))?$`)
	reTaskPlain   = regexp.MustCompile(`(?i)^(?:add|new|create)\s+task\s+([^\-]+)(?:-\s*(.*))?$`)
	reDescAndDate = regexp.MustCompile(`(?i)^(.*)(?:on|by|for)\s+(.*)$`)
	reTaskIndex   = regexp.MustCompile(`(?i)task\s+(\d+)`)
	reAnswerChar  = regexp.MustCompile(`(?i)([abcd1-4])\s*$`)
)

// topicKeywords is the extractor's own detection list; it is broader than
// the response catalog's so that vaguer questions still classify as
// cybersecurity questions.
var topicKeywords = []string{
	"password", "phishing", "malware", "virus", "hack", "security",
	"privacy", "data", "breach", "scam", "firewall", "antivirus",
	"encryption", "vpn", "wifi", "email", "social engineering",
	"ransomware", "spyware", "trojan", "authentication", "backup",
	"cybersecurity", "cyber", "online safety", "digital protection",
}

// Classify turns raw text into a structured intent with extracted slots.
func Classify(input string, now time.Time) domain.Intent {
	intent := domain.Intent{Type: domain.IntentUnknown, RawInput: input}
	lower := normalize(input)

	switch {
	case reAddTask.MatchString(lower):
		intent.Type = domain.IntentAddTask
		extractTaskInfo(input, now, &intent)
	case reViewTasks.MatchString(lower):
		intent.Type = domain.IntentViewTasks
	case reComplete.MatchString(lower):
		intent.Type = domain.IntentCompleteTask
		if m := reTaskIndex.FindStringSubmatch(lower); m != nil {
			if idx, err := strconv.Atoi(m[1]); err == nil {
				intent.TaskIndex = idx
			}
		}
	case reStartQuiz.MatchString(lower):
		intent.Type = domain.IntentStartQuiz
	case reQuizAnswer.MatchString(lower):
		intent.Type = domain.IntentAnswerQuiz
		if m := reAnswerChar.FindStringSubmatch(lower); m != nil {
			intent.QuizAnswer = strings.ToUpper(m[1])
		}
	case reActivityLog.MatchString(lower):
		intent.Type = domain.IntentShowActivityLog
	case ContainsTopicKeyword(lower):
		intent.Type = domain.IntentQuestion
	}

	return intent
}

// extractTaskInfo pulls title, description and reminder date slots out of
// an add-task phrase. Quoted form: add task "title" - "description" on <date>.
// Unquoted fallback: add task title - description by <date>.
func extractTaskInfo(input string, now time.Time, intent *domain.Intent) {
	if m := reTaskQuoted.FindStringSubmatch(input); m != nil {
		intent.TaskTitle = strings.TrimSpace(m[2])
		intent.TaskDescription = strings.TrimSpace(m[3])
		if m[4] != "" {
			intent.ReminderAt = ExtractDate(m[4], now)
		}
		return
	}

	m := reTaskPlain.FindStringSubmatch(input)
	if m == nil {
		return
	}
	intent.TaskTitle = strings.TrimSpace(m[1])
	remaining := strings.TrimSpace(m[2])
	if remaining == "" {
		return
	}
	if dm := reDescAndDate.FindStringSubmatch(remaining); dm != nil {
		intent.TaskDescription = strings.TrimSpace(dm[1])
		intent.ReminderAt = ExtractDate(dm[2], now)
		return
	}
	intent.TaskDescription = remaining
}

// normalize lowercases and trims raw user input before matching.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var keywordPatterns = compileKeywordPatterns()

func compileKeywordPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(topicKeywords))
	for _, kw := range topicKeywords {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return patterns
}

// ContainsTopicKeyword reports whether the input mentions a cybersecurity
// keyword. Most keywords match on word boundaries; "cyber" and
// "cybersecurity" also match as substrings so compounds are caught.
func ContainsTopicKeyword(input string) bool {
	lower := strings.ToLower(input)
	if strings.Contains(lower, "cyber") {
		return true
	}
	for _, p := range keywordPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
