package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekFromDueDate(t *testing.T) {
	today := time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC)

	cases := []struct {
		name    string
		dueDate string
		want    int
	}{
		{"due today", "2026-08-30", 40},
		{"one week out", "2026-09-06", 39},
		{"six days out rounds down", "2026-09-05", 40},
		{"twenty weeks out", "2027-01-17", 20},
		{"full term away", "2027-06-06", 1},
		{"far future clamps to 1", "2028-01-01", 1},
		{"overdue clamps to 40", "2026-08-01", 40},
		{"empty", "", 1},
		{"garbage", "soon", 1},
		{"rfc3339 timestamp", "2026-09-06T10:30:00Z", 39},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeekFromDueDate(tc.dueDate, today))
		})
	}
}

func TestWeekFromDueDateIgnoresTimeOfDay(t *testing.T) {
	due := "2026-09-06"
	morning := time.Date(2026, 8, 30, 0, 1, 0, 0, time.UTC)
	night := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, WeekFromDueDate(due, morning), WeekFromDueDate(due, night),
		"the week never flips mid-day")
}
