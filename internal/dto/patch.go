package dto

import (
	"encoding/json"
	"fmt"

	"github.com/mkaraca/task-tracker-api/internal/duedate"
)

// OptionalID carries an assignee_id patch field where "absent",
// "null" (clear the assignment) and a concrete id are three distinct
// states.
type OptionalID struct {
	Set   bool
	Value *uint64 // nil when the field was an explicit null
}

// OptionalDate carries a due_date patch field with the same
// absent / null / value distinction.
type OptionalDate struct {
	Set   bool
	Value *duedate.Date
}

// TaskPatch is a partial update of a task: any subset of the mutable
// fields. It is applied attribute-by-attribute server-side; the full
// entity is never reconstructed on the client. Title, Description,
// Completed and Priority cannot be cleared, so plain pointers are
// enough for them; assignee_id and due_date are nullable and need the
// explicit presence flag.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	AssigneeID  OptionalID
	DueDate     OptionalDate
}

// IsZero reports whether the patch touches no fields.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.Priority == nil && !p.AssigneeID.Set && !p.DueDate.Set
}

// MarshalJSON emits only the fields present in the patch. Explicit
// nulls survive for assignee_id and due_date.
func (p TaskPatch) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 6)
	if p.Title != nil {
		body["title"] = *p.Title
	}
	if p.Description != nil {
		body["description"] = *p.Description
	}
	if p.Completed != nil {
		body["completed"] = *p.Completed
	}
	if p.Priority != nil {
		body["priority"] = *p.Priority
	}
	if p.AssigneeID.Set {
		body["assignee_id"] = p.AssigneeID.Value
	}
	if p.DueDate.Set {
		body["due_date"] = p.DueDate.Value
	}
	return json.Marshal(body)
}

// UnmarshalJSON decodes the raw body keeping track of which keys were
// actually sent, so an absent field and an explicit null stay apart.
func (p *TaskPatch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = TaskPatch{}

	if msg, ok := raw["title"]; ok {
		if err := json.Unmarshal(msg, &p.Title); err != nil {
			return fmt.Errorf("title: %w", err)
		}
	}
	if msg, ok := raw["description"]; ok {
		if err := json.Unmarshal(msg, &p.Description); err != nil {
			return fmt.Errorf("description: %w", err)
		}
	}
	if msg, ok := raw["completed"]; ok {
		if err := json.Unmarshal(msg, &p.Completed); err != nil {
			return fmt.Errorf("completed: %w", err)
		}
	}
	if msg, ok := raw["priority"]; ok {
		if err := json.Unmarshal(msg, &p.Priority); err != nil {
			return fmt.Errorf("priority: %w", err)
		}
	}
	if msg, ok := raw["assignee_id"]; ok {
		p.AssigneeID.Set = true
		if err := json.Unmarshal(msg, &p.AssigneeID.Value); err != nil {
			return fmt.Errorf("assignee_id: %w", err)
		}
	}
	if msg, ok := raw["due_date"]; ok {
		p.DueDate.Set = true
		if err := json.Unmarshal(msg, &p.DueDate.Value); err != nil {
			return fmt.Errorf("due_date: %w", err)
		}
	}

	return nil
}

// PatchTitle, PatchCompleted and friends build single-field patches for
// the common client mutations.

func PatchCompleted(completed bool) TaskPatch {
	return TaskPatch{Completed: &completed}
}

func PatchAssignee(assigneeID *uint64) TaskPatch {
	return TaskPatch{AssigneeID: OptionalID{Set: true, Value: assigneeID}}
}
