package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	monday := day(2026, 3, 9)

	assert.Equal(t, monday, weekStart(monday), "monday maps to itself")
	assert.Equal(t, monday, weekStart(day(2026, 3, 11)), "midweek maps back")
	assert.Equal(t, monday, weekStart(day(2026, 3, 15)), "sunday belongs to the preceding monday")
	assert.Equal(t, day(2026, 3, 16), weekStart(day(2026, 3, 16)), "next monday starts a new week")
}

func TestWeekEnd(t *testing.T) {
	assert.Equal(t, day(2026, 3, 15), weekEnd(day(2026, 3, 9)))
}

func TestDatesBetween(t *testing.T) {
	dates := datesBetween(day(2026, 3, 9), day(2026, 3, 15))
	assert.Len(t, dates, 7)
	assert.Equal(t, day(2026, 3, 9), dates[0])
	assert.Equal(t, day(2026, 3, 15), dates[6])
}

func TestParseDayInWindow(t *testing.T) {
	start, end := day(2026, 3, 9), day(2026, 3, 15)

	got := parseDayInWindow("2026-03-12", start, end)
	assert.NotNil(t, got)

	assert.Nil(t, parseDayInWindow("2026-03-08", start, end))
	assert.Nil(t, parseDayInWindow("2026-03-16", start, end))
	assert.Nil(t, parseDayInWindow("no date here", start, end))
	assert.Nil(t, parseDayInWindow("", start, end))

	// boundary days are inside
	assert.NotNil(t, parseDayInWindow("2026-03-09", start, end))
	assert.NotNil(t, parseDayInWindow("2026-03-15", start, end))
}
