package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// defaultReminderHour is applied when the user gives a date with no time.
const defaultReminderHour = 17

var (
	reInDays   = regexp.MustCompile(`in (\d+)\s+days?`)
	reInWeeks  = regexp.MustCompile(`in (\d+)\s+weeks?`)
	reDateISO  = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})|(\d{1,2}/\d{1,2}/\d{4})`)
	reClock    = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)?`)
	reWeekday  = regexp.MustCompile(`(next\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	weekdayMap = map[string]time.Weekday{
		"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
		"thursday": time.Thursday, "friday": time.Friday,
		"saturday": time.Saturday, "sunday": time.Sunday,
	}
)

// ExtractDate turns common natural-language date phrases or explicit
// date formats into a reminder timestamp relative to now. Supported:
// "today", "tomorrow", "next week", "in N days/weeks", weekday names
// (optionally prefixed with "next"), "YYYY-MM-DD" and "M/D/YYYY", each
// with an optional "HH:MM" time. Dates without a time default to 17:00.
// Returns nil when nothing recognizable is found.
func ExtractDate(input string, now time.Time) *time.Time {
	lower := strings.ToLower(input)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if strings.Contains(lower, "today") {
		return datePtr(midnight.Add(defaultReminderHour * time.Hour))
	}
	if strings.Contains(lower, "tomorrow") {
		return datePtr(midnight.AddDate(0, 0, 1).Add(defaultReminderHour * time.Hour))
	}
	if strings.Contains(lower, "next week") {
		days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return datePtr(midnight.AddDate(0, 0, days).Add(defaultReminderHour * time.Hour))
	}
	if m := reInDays.FindStringSubmatch(lower); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return datePtr(midnight.AddDate(0, 0, days).Add(defaultReminderHour * time.Hour))
		}
	}
	if m := reInWeeks.FindStringSubmatch(lower); m != nil {
		if weeks, err := strconv.Atoi(m[1]); err == nil {
			return datePtr(midnight.AddDate(0, 0, weeks*7).Add(defaultReminderHour * time.Hour))
		}
	}

	if m := reDateISO.FindString(lower); m != "" {
		layout := "2006-01-02"
		if strings.Contains(m, "/") {
			layout = "1/2/2006"
		}
		if day, err := time.ParseInLocation(layout, m, now.Location()); err == nil {
			h, min, ok := extractClock(lower)
			if !ok {
				h, min = defaultReminderHour, 0
			}
			return datePtr(day.Add(time.Duration(h)*time.Hour + time.Duration(min)*time.Minute))
		}
	}

	if m := reWeekday.FindStringSubmatch(lower); m != nil {
		target := weekdayMap[m[2]]
		day := midnight
		for day.Weekday() != target {
			day = day.AddDate(0, 0, 1)
		}
		// "next friday" or a day that is today/past rolls over a week.
		if m[1] != "" || !day.After(midnight) {
			day = day.AddDate(0, 0, 7)
		}
		h, min, ok := extractClock(lower)
		if !ok {
			h, min = defaultReminderHour, 0
		}
		return datePtr(day.Add(time.Duration(h)*time.Hour + time.Duration(min)*time.Minute))
	}

	return nil
}

// extractClock pulls an "HH:MM" (optionally am/pm) time out of the input.
func extractClock(lower string) (hour, min int, ok bool) {
	m := reClock.FindStringSubmatch(lower)
	if m == nil {
		return 0, 0, false
	}
	hour, err1 := strconv.Atoi(m[1])
	min, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || hour > 23 || min > 59 {
		return 0, 0, false
	}
	if m[3] == "pm" && hour < 12 {
		hour += 12
	}
	if m[3] == "am" && hour == 12 {
		hour = 0
	}
	return hour, min, true
}

func datePtr(t time.Time) *time.Time {
	return &t
}
