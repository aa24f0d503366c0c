package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/chaosboard/sticky-notes-api/internal/constants"
	"github.com/chaosboard/sticky-notes-api/internal/dto"
	"github.com/chaosboard/sticky-notes-api/internal/models"
	"github.com/chaosboard/sticky-notes-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyUpdate  = errors.New("no update data provided")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTask persists a new task, filling in the board defaults for any
// optional field the caller left out. The ID and creation timestamp are
// assigned here and never change afterwards.
func (s *TaskService) CreateTask(req dto.TaskCreateRequest) (*models.Task, error) {
	task := &models.Task{
		ID:        uuid.NewString(),
		Text:      req.Text,
		X:         constants.DefaultTaskX,
		Y:         constants.DefaultTaskY,
		Width:     constants.DefaultTaskWidth,
		Height:    constants.DefaultTaskHeight,
		Priority:  models.TaskPriorityLow,
		Color:     constants.DefaultTaskColor,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}

	if req.X != nil {
		task.X = *req.X
	}
	if req.Y != nil {
		task.Y = *req.Y
	}
	if req.Priority != nil {
		task.Priority = models.TaskPriority(*req.Priority)
	}
	if req.Color != nil {
		task.Color = *req.Color
	}
	if req.Date != nil {
		task.Date = req.Date
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns all uncompleted tasks, newest first
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.ListActive(constants.MaxListResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks, nil
}

// UpdateTask applies a partial update and returns the task as persisted
// after the write. An update carrying no recognized fields is rejected.
func (s *TaskService) UpdateTask(id string, req dto.TaskUpdateRequest) (*models.Task, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	// Fresh read so the response reflects true persisted state
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	return task, nil
}

// CompleteTask marks a task as completed. Completing an already completed
// task succeeds again; the state simply stays completed.
func (s *TaskService) CompleteTask(id string) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.UpdateFields(id, map[string]any{"completed": true}); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	return nil
}

// DeleteTask hard-removes a task
func (s *TaskService) DeleteTask(id string) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
