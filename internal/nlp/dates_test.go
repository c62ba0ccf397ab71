package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 4 June 2025, 10:00.
var testNow = time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

func TestExtractDate_Today(t *testing.T) {
	got := ExtractDate("remind me today", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 4, 17, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_Tomorrow(t *testing.T) {
	got := ExtractDate("tomorrow", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 5, 17, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_NextWeek_RollsToMonday(t *testing.T) {
	got := ExtractDate("next week", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 9, 17, 0, 0, 0, time.UTC), *got)
	assert.Equal(t, time.Monday, got.Weekday())
}

func TestExtractDate_InNDays(t *testing.T) {
	got := ExtractDate("in 3 days", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 7, 17, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_InOneWeek(t *testing.T) {
	got := ExtractDate("in 1 week", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_ISOWithTime(t *testing.T) {
	got := ExtractDate("2025-12-31 18:00", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 12, 31, 18, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_ISOWithoutTime_DefaultsTo17(t *testing.T) {
	got := ExtractDate("2025-12-31", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 12, 31, 17, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_SlashDate(t *testing.T) {
	got := ExtractDate("7/15/2025", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 7, 15, 17, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_WeekdayUpcoming(t *testing.T) {
	// Friday after Wednesday 4 June is 6 June.
	got := ExtractDate("friday", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 6, 17, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_NextWeekday_SkipsAWeek(t *testing.T) {
	got := ExtractDate("next friday", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 13, 17, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_SameWeekdayRollsOver(t *testing.T) {
	// "wednesday" on a Wednesday means the following one.
	got := ExtractDate("wednesday", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC), *got)
}

func TestExtractDate_WeekdayWithClock(t *testing.T) {
	got := ExtractDate("friday 9:30", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 6, 9, 30, 0, 0, time.UTC), *got)
}

func TestExtractDate_PMClock(t *testing.T) {
	got := ExtractDate("2025-12-31 6:30 pm", testNow)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 12, 31, 18, 30, 0, 0, time.UTC), *got)
}

func TestExtractDate_Unrecognized(t *testing.T) {
	assert.Nil(t, ExtractDate("whenever", testNow))
	assert.Nil(t, ExtractDate("", testNow))
}
