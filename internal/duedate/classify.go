package duedate

// Status is the badge category of a task's due date relative to a
// reference day.
type Status string

const (
	StatusNone     Status = "none"
	StatusOverdue  Status = "overdue"
	StatusToday    Status = "today"
	StatusUpcoming Status = "upcoming"
)

// Classify maps a due date onto its Status relative to today. A nil due
// date is StatusNone. Deterministic: today is an argument, never read
// from the clock here.
func Classify(due *Date, today Date) Status {
	switch {
	case due == nil:
		return StatusNone
	case due.Before(today):
		return StatusOverdue
	case due.Equal(today):
		return StatusToday
	default:
		return StatusUpcoming
	}
}
