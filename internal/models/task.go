package models

import (
	"strings"
	"time"

	"github.com/mkaraca/task-tracker-api/internal/duedate"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// NormalizePriority lower-cases the input and reports whether it is a
// known priority. The empty string normalizes to the medium default.
func NormalizePriority(s string) (Priority, bool) {
	if s == "" {
		return PriorityMedium, true
	}
	p := Priority(strings.ToLower(s))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return "", false
}

type Task struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Completed   bool          `gorm:"not null;default:false" json:"completed"`
	AssigneeID  *uint64       `json:"assignee_id"`
	Priority    Priority      `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	DueDate     *duedate.Date `json:"due_date"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	Assignee *User `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
}
