package repository

import (
	"github.com/chaosboard/sticky-notes-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(task *models.Task) error

	// FindByID finds a task by its UUID
	FindByID(id string) (*models.Task, error)

	// ListActive retrieves uncompleted tasks, newest first, up to limit
	ListActive(limit int) ([]models.Task, error)

	// UpdateFields applies the given column/value pairs to a task
	UpdateFields(id string, fields map[string]any) error

	// Delete hard-removes a task
	Delete(id string) error
}
