package dto

import (
	"time"

	"github.com/mkaraca/task-tracker-api/internal/duedate"
	"github.com/mkaraca/task-tracker-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TaskDTO represents a task in API responses. AssigneeName is derived
// from the assignee link on every read; it is never stored.
type TaskDTO struct {
	ID           uint64          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Completed    bool            `json:"completed"`
	AssigneeID   *uint64         `json:"assignee_id"`
	AssigneeName string          `json:"assignee_name"`
	Priority     models.Priority `json:"priority"`
	DueDate      *duedate.Date   `json:"due_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateTaskRequest is the POST /tasks body.
type CreateTaskRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	AssigneeID  *uint64       `json:"assignee_id"`
	Priority    string        `json:"priority"`
	DueDate     *duedate.Date `json:"due_date"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:   user.ID,
		Name: user.Name,
	}
}

// ToTaskDTO converts a Task model to TaskDTO, resolving the display
// name through the given id→name map.
func ToTaskDTO(task models.Task, userNames map[uint64]string) TaskDTO {
	dto := TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Completed:    task.Completed,
		AssigneeID:   task.AssigneeID,
		AssigneeName: "Unassigned",
		Priority:     task.Priority,
		DueDate:      task.DueDate,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}

	if task.AssigneeID != nil {
		if name, ok := userNames[*task.AssigneeID]; ok {
			dto.AssigneeName = name
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks, preserving order.
func ToTaskDTOs(tasks []models.Task, users []models.User) []TaskDTO {
	names := make(map[uint64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task, names)
	}
	return dtos
}

// ToUserDTOs converts a slice of users, preserving order.
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = ToUserDTO(u)
	}
	return dtos
}
