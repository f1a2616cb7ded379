package client

import "time"

// WeekFromDueDate derives the current pregnancy week from a due date,
// assuming a 40-week term. The result is clamped to [1, 40]; an empty or
// unparseable due date yields week 1. Days are compared at UTC midnight so
// the week never flips mid-day across time zones.
func WeekFromDueDate(dueDate string, today time.Time) int {
	if dueDate == "" {
		return 1
	}
	due, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		if due, err = time.Parse(time.RFC3339, dueDate); err != nil {
			return 1
		}
	}
	due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	t := today.UTC()
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	daysUntilDue := int(due.Sub(t).Hours() / 24)
	week := 40 - daysUntilDue/7
	if daysUntilDue < 0 && daysUntilDue%7 != 0 {
		// Mirror floor division for overdue dates.
		week++
	}
	if week < 1 {
		return 1
	}
	if week > 40 {
		return 40
	}
	return week
}
