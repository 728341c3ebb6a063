package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkaraca/task-tracker-api/internal/dto"
	"github.com/mkaraca/task-tracker-api/internal/duedate"
	"github.com/mkaraca/task-tracker-api/internal/models"
	"github.com/mkaraca/task-tracker-api/internal/query"
	"github.com/mkaraca/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleEmpty      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("priority must be one of low|medium|high")
	ErrInvalidAssignee = errors.New("assignee_id does not reference an existing user")
	ErrDueDateInPast   = errors.New("due_date cannot be before today")
	ErrTaskNotFound    = errors.New("task not found")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	today    func() duedate.Date
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		today:    duedate.Today,
	}
}

// ListUsers returns the team roster
func (s *TaskService) ListUsers() ([]dto.UserDTO, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return dto.ToUserDTOs(users), nil
}

// ListTasks loads the full collection and filters it in memory,
// resolving the denormalized assignee names on the way out.
func (s *TaskService) ListTasks(f query.Filters) ([]dto.TaskDTO, error) {
	tasks, err := s.taskRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	filtered := FilterTasks(tasks, f, s.today())
	return dto.ToTaskDTOs(filtered, users), nil
}

// CreateTask validates and persists a new task, returning its id.
func (s *TaskService) CreateTask(req dto.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	priority, ok := models.NormalizePriority(req.Priority)
	if !ok {
		return nil, ErrInvalidPriority
	}

	if err := s.checkAssignee(req.AssigneeID); err != nil {
		return nil, err
	}

	if req.DueDate != nil && req.DueDate.Before(s.today()) {
		return nil, ErrDueDateInPast
	}

	task := &models.Task{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		AssigneeID:  req.AssigneeID,
		Priority:    priority,
		DueDate:     req.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// PatchTask applies a partial update attribute by attribute. Fields
// the patch does not carry keep their stored values.
func (s *TaskService) PatchTask(id uint64, patch dto.TaskPatch) error {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return ErrTitleEmpty
		}
		task.Title = title
	}

	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}

	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if patch.Priority != nil {
		priority, ok := models.NormalizePriority(*patch.Priority)
		if !ok {
			return ErrInvalidPriority
		}
		task.Priority = priority
	}

	if patch.AssigneeID.Set {
		if err := s.checkAssignee(patch.AssigneeID.Value); err != nil {
			return err
		}
		task.AssigneeID = patch.AssigneeID.Value
	}

	if patch.DueDate.Set {
		task.DueDate = patch.DueDate.Value
	}

	if err := s.taskRepo.Save(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// DeleteTask removes a task permanently
func (s *TaskService) DeleteTask(id uint64) error {
	if err := s.taskRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// checkAssignee accepts nil (unassigned) and otherwise requires an
// existing user.
func (s *TaskService) checkAssignee(id *uint64) error {
	if id == nil {
		return nil
	}
	exists, err := s.userRepo.Exists(*id)
	if err != nil {
		return fmt.Errorf("failed to look up assignee: %w", err)
	}
	if !exists {
		return ErrInvalidAssignee
	}
	return nil
}
