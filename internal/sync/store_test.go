package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaraca/task-tracker-api/internal/dto"
	"github.com/mkaraca/task-tracker-api/internal/duedate"
)

func seededStore() *Store {
	due := duedate.New(2024, time.June, 9)
	assignee := uint64(1)
	store := NewStore()
	store.ReplaceAll(
		[]dto.UserDTO{{ID: 1, Name: "Harry"}},
		[]dto.TaskDTO{
			{ID: 1, Title: "Grade quiz", Description: "Unit 3", Completed: false,
				AssigneeID: &assignee, AssigneeName: "Harry", Priority: "high", DueDate: &due},
			{ID: 2, Title: "Plan session", Priority: "low"},
		},
	)
	return store
}

func TestReplaceAllIsWholesale(t *testing.T) {
	store := seededStore()

	store.ReplaceAll(nil, []dto.TaskDTO{{ID: 9, Title: "Only one"}})

	tasks := store.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, uint64(9), tasks[0].ID)
	assert.Empty(t, store.Users())
}

func TestPatchOneTouchesOnlyCarriedFields(t *testing.T) {
	store := seededStore()

	completed := true
	require.True(t, store.PatchOne(1, dto.TaskPatch{Completed: &completed}))

	task, ok := store.Task(1)
	require.True(t, ok)
	assert.True(t, task.Completed)
	// Everything else is untouched, including the derived name.
	assert.Equal(t, "Grade quiz", task.Title)
	assert.Equal(t, "Harry", task.AssigneeName)
	require.NotNil(t, task.DueDate)

	// The sibling task is untouched by identity.
	other, ok := store.Task(2)
	require.True(t, ok)
	assert.False(t, other.Completed)
}

func TestPatchOneAssigneeLeavesDerivedNameStale(t *testing.T) {
	store := seededStore()

	// Clearing the assignee locally does not recompute assignee_name;
	// that stays stale until the next full reload.
	require.True(t, store.PatchOne(1, dto.PatchAssignee(nil)))

	task, _ := store.Task(1)
	assert.Nil(t, task.AssigneeID)
	assert.Equal(t, "Harry", task.AssigneeName)
}

func TestPatchOneUnknownID(t *testing.T) {
	store := seededStore()
	completed := true
	assert.False(t, store.PatchOne(99, dto.TaskPatch{Completed: &completed}))
}

func TestSnapshotsAreCopies(t *testing.T) {
	store := seededStore()

	tasks := store.Tasks()
	tasks[0].Title = "mutated copy"

	task, _ := store.Task(1)
	assert.Equal(t, "Grade quiz", task.Title)
}
