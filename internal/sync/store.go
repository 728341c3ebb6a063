package sync

import (
	"github.com/mkaraca/task-tracker-api/internal/dto"
	"github.com/mkaraca/task-tracker-api/internal/models"
)

// Store is the client-side cache of the last-fetched users and tasks,
// the single source of truth the UI renders from. Its contents mirror
// the most recent full read; there is no per-field merge on load.
// The Engine owns it and serializes access; the Store itself does no
// locking.
type Store struct {
	users []dto.UserDTO
	tasks []dto.TaskDTO
}

func NewStore() *Store {
	return &Store{}
}

// ReplaceAll swaps in a fresh server response wholesale.
func (s *Store) ReplaceAll(users []dto.UserDTO, tasks []dto.TaskDTO) {
	s.users = users
	s.tasks = tasks
}

// PatchOne applies a partial update to the task with the given id,
// touching only the fields the patch carries. Derived fields such as
// assignee_name are left as-is; they may read stale until the next
// full reload. Reports whether the task was found.
func (s *Store) PatchOne(id uint64, patch dto.TaskPatch) bool {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		task := &s.tasks[i]
		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Completed != nil {
			task.Completed = *patch.Completed
		}
		if patch.Priority != nil {
			task.Priority = models.Priority(*patch.Priority)
		}
		if patch.AssigneeID.Set {
			task.AssigneeID = patch.AssigneeID.Value
		}
		if patch.DueDate.Set {
			task.DueDate = patch.DueDate.Value
		}
		return true
	}
	return false
}

// Task looks up a single task by id.
func (s *Store) Task(id uint64) (dto.TaskDTO, bool) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return dto.TaskDTO{}, false
}

// Tasks returns a copy of the cached task list.
func (s *Store) Tasks() []dto.TaskDTO {
	out := make([]dto.TaskDTO, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Users returns a copy of the cached user list.
func (s *Store) Users() []dto.UserDTO {
	out := make([]dto.UserDTO, len(s.users))
	copy(out, s.users)
	return out
}
