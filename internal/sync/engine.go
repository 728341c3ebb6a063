// Package sync keeps the client-side task cache consistent with the
// server. Mutations go through the Engine, which reconciles the Store
// by re-fetching the filtered collection after every confirmed change.
// The status toggle is the one optimistic path: it flips the cache
// first and reverts on failure.
package sync

import (
	"context"
	"errors"
	"strings"
	gosync "sync"

	"github.com/mkaraca/task-tracker-api/internal/client"
	"github.com/mkaraca/task-tracker-api/internal/dto"
	"github.com/mkaraca/task-tracker-api/internal/query"
)

var (
	// ErrTitleRequired aborts create/save before any network call.
	ErrTitleRequired = errors.New("title is required")
	// ErrUnknownTask means the toggled task is not in the cache.
	ErrUnknownTask = errors.New("task not present in store")
)

// Engine orchestrates mutations and reloads. The filters callback is
// read at the moment a reload fires, so filter changes made while a
// mutation was in flight are honored by the subsequent reload.
type Engine struct {
	api     *client.Client
	store   *Store
	filters func() query.Filters

	mu          gosync.Mutex
	nextSeq     uint64
	lastApplied uint64
}

func NewEngine(api *client.Client, store *Store, filters func() query.Filters) *Engine {
	if filters == nil {
		filters = func() query.Filters { return query.Filters{} }
	}
	return &Engine{
		api:     api,
		store:   store,
		filters: filters,
	}
}

// Tasks returns a snapshot of the cached tasks.
func (e *Engine) Tasks() []dto.TaskDTO {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Tasks()
}

// Users returns a snapshot of the cached users.
func (e *Engine) Users() []dto.UserDTO {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Users()
}

// Reload fetches users and tasks for the current filter state and
// replaces the store contents. Loads are never cancelled, so slow
// responses can resolve after newer ones; each load takes a sequence
// number at issue time and a resolution older than the last applied
// one is discarded instead of clobbering fresher data.
func (e *Engine) Reload(ctx context.Context) error {
	seq, f := e.beginLoad()

	users, err := e.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	tasks, err := e.api.ListTasks(ctx, f)
	if err != nil {
		return err
	}

	e.applyLoad(seq, users, tasks)
	return nil
}

func (e *Engine) beginLoad() (uint64, query.Filters) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextSeq++
	return e.nextSeq, e.filters()
}

func (e *Engine) applyLoad(seq uint64, users []dto.UserDTO, tasks []dto.TaskDTO) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if seq < e.lastApplied {
		return false
	}
	e.store.ReplaceAll(users, tasks)
	e.lastApplied = seq
	return true
}

// Create validates locally, persists the task, then reloads. An empty
// post-trim title never reaches the transport.
func (e *Engine) Create(ctx context.Context, req dto.CreateTaskRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if _, err := e.api.CreateTask(ctx, req); err != nil {
		return err
	}
	return e.Reload(ctx)
}

// ToggleComplete flips a task's completed flag optimistically, then
// confirms it with the server. On success the follow-up reload is
// authoritative; on failure the local flip is reverted and no reload
// happens — the revert is the whole recovery.
func (e *Engine) ToggleComplete(ctx context.Context, id uint64) error {
	e.mu.Lock()
	task, ok := e.store.Task(id)
	if !ok {
		e.mu.Unlock()
		return ErrUnknownTask
	}
	prev := task.Completed
	e.store.PatchOne(id, dto.PatchCompleted(!prev))
	e.mu.Unlock()

	if err := e.api.PatchTask(ctx, id, dto.PatchCompleted(!prev)); err != nil {
		e.mu.Lock()
		e.store.PatchOne(id, dto.PatchCompleted(prev))
		e.mu.Unlock()
		return err
	}

	return e.Reload(ctx)
}

// SaveEdit sends all edited fields as one partial update, then
// reloads. No optimistic mutation happens here: on failure the store
// simply keeps its stale state.
func (e *Engine) SaveEdit(ctx context.Context, id uint64, patch dto.TaskPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return ErrTitleRequired
	}
	if err := e.api.PatchTask(ctx, id, patch); err != nil {
		return err
	}
	return e.Reload(ctx)
}

// QuickAssign changes only the assignee. The denormalized
// assignee_name cannot be computed locally, so the change becomes
// visible through the reload.
func (e *Engine) QuickAssign(ctx context.Context, id uint64, assigneeID *uint64) error {
	if err := e.api.PatchTask(ctx, id, dto.PatchAssignee(assigneeID)); err != nil {
		return err
	}
	return e.Reload(ctx)
}

// Remove deletes a task, then reloads.
func (e *Engine) Remove(ctx context.Context, id uint64) error {
	if err := e.api.DeleteTask(ctx, id); err != nil {
		return err
	}
	return e.Reload(ctx)
}
