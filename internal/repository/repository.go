package repository

import (
	"github.com/mkaraca/task-tracker-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListAll retrieves every task in insertion order. Filtering is a
	// pure function over the full collection, so no predicates are
	// pushed down here.
	ListAll() ([]models.Task, error)

	// Save persists all fields of an existing task
	Save(task *models.Task) error

	// Delete removes a task
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// ListAll retrieves every user in insertion order
	ListAll() ([]models.User, error)

	// Exists reports whether a user with the given ID exists
	Exists(id uint64) (bool, error)

	// Count returns the total number of users
	Count() (int64, error)

	// CreateBatch inserts users in a single transaction (seeding)
	CreateBatch(users []models.User) error
}
