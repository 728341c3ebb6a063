package database

import (
	"fmt"
	"log"

	"github.com/mkaraca/task-tracker-api/internal/models"
	"github.com/mkaraca/task-tracker-api/internal/repository"
)

// DefaultTeam is the roster inserted on first start so a fresh
// database is immediately usable for assignment.
var DefaultTeam = []models.User{
	{Name: "Harry"},
	{Name: "John"},
	{Name: "Peter"},
	{Name: "Tom"},
}

// SeedUsers inserts the default team when the users table is empty.
// Re-running against a populated database is a no-op.
func SeedUsers(userRepo repository.UserRepository) error {
	count, err := userRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	users := make([]models.User, len(DefaultTeam))
	copy(users, DefaultTeam)

	if err := userRepo.CreateBatch(users); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	log.Printf("Seeded %d team members", len(users))
	return nil
}
