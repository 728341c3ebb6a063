package services

import (
	"strings"

	"github.com/mkaraca/task-tracker-api/internal/duedate"
	"github.com/mkaraca/task-tracker-api/internal/models"
	"github.com/mkaraca/task-tracker-api/internal/query"
)

// FilterTasks applies the filters against the full task collection.
// Predicates combine conjunctively, input order is preserved, and
// today is fixed once for the whole pass so every task in one response
// is classified against the same day.
func FilterTasks(tasks []models.Task, f query.Filters, today duedate.Date) []models.Task {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if matchesFilters(task, f, search, today) {
			out = append(out, task)
		}
	}
	return out
}

func matchesFilters(task models.Task, f query.Filters, search string, today duedate.Date) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(task.Title), search) &&
		!strings.Contains(strings.ToLower(task.Description), search) {
		return false
	}

	switch f.Status {
	case query.StatusComplete:
		if !task.Completed {
			return false
		}
	case query.StatusIncomplete:
		if task.Completed {
			return false
		}
	}

	if f.Assignee != nil {
		if *f.Assignee == query.Unassigned {
			if task.AssigneeID != nil {
				return false
			}
		} else if task.AssigneeID == nil || *task.AssigneeID != *f.Assignee {
			return false
		}
	}

	if f.Priority != "" && f.Priority != query.PriorityAll &&
		task.Priority != models.Priority(f.Priority) {
		return false
	}

	if f.Due != "" && f.Due != query.DueAll &&
		duedate.Classify(task.DueDate, today) != duedate.Status(f.Due) {
		return false
	}

	return true
}
