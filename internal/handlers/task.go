package handlers

import (
	"errors"
	"net/http"

	"github.com/chaosboard/sticky-notes-api/internal/dto"
	apierrors "github.com/chaosboard/sticky-notes-api/internal/errors"
	"github.com/chaosboard/sticky-notes-api/internal/services"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Root returns the service banner
func (h *TaskHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "CHAOS - The Anti-Task Manager API",
	})
}

// CreateTask creates a new task from the posted payload
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.taskService.CreateTask(req)
	if err != nil {
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasks returns all uncompleted tasks, newest first
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask applies a partial update and returns the updated task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyUpdate):
			apierrors.BadRequest(c, "No update data provided")
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		default:
			apierrors.InternalError(c, "Failed to update task")
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// CompleteTask marks a task as completed
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	if err := h.taskService.CompleteTask(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to complete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task completed successfully",
	})
}

// DeleteTask hard-removes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}
