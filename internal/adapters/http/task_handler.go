package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// MessageResponse is the generic {message} envelope
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// GetMyTasks returns every task owned by the caller
func (h *TaskHandler) GetMyTasks(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		h.logger.Errorw("List tasks failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask stores a new task owned by the caller
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Please fill in all required fields")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrMissingFields):
			return echo.NewHTTPError(http.StatusBadRequest, "Please fill in all required fields")
		case errors.Is(err, entities.ErrInvalidStatus), errors.Is(err, entities.ErrInvalidPriority):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Errorw("Create task failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update to a task owned by the caller.
// The patch type has no id, owner or createdAt fields, so those keys in
// the payload are dropped at bind time and can never reach the store.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot match any task.
		return echo.NewHTTPError(http.StatusNotFound, "Task not found")
	}

	var patch entities.TaskPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task payload")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), userID, taskID, patch)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrTaskNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		case errors.Is(err, entities.ErrInvalidStatus), errors.Is(err, entities.ErrInvalidPriority):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Errorw("Update task failed", "error", err, "task_id", taskID, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask permanently removes a task owned by the caller
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Task not found")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), userID, taskID); err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		}
		h.logger.Errorw("Delete task failed", "error", err, "task_id", taskID, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}

// getUserIDFromContext extracts the authenticated user ID set by the auth
// middleware. uuid.Nil means no verified identity is present.
func getUserIDFromContext(c echo.Context) uuid.UUID {
	userID, ok := c.Get("user").(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
