package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// TaskService handles owner-scoped task operations. It never issues a store
// query that is not bound to the caller's user id.
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// ListTasks returns every task owned by the caller, in store order.
func (s *TaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]entities.Task, error) {
	if ownerID == uuid.Nil {
		return nil, entities.ErrUnauthenticated
	}

	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// CreateTask stores a new task owned by the caller. Title, description and
// due date are mandatory; status defaults to todo and priority to medium.
func (s *TaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	if ownerID == uuid.Nil {
		return nil, entities.ErrUnauthenticated
	}

	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.DueDate) == "" {
		return nil, entities.ErrMissingFields
	}

	status := req.Status
	if status == "" {
		status = entities.TaskStatusTodo
	}
	if !status.Valid() {
		return nil, entities.ErrInvalidStatus
	}

	priority := req.Priority
	if priority == "" {
		priority = entities.TaskPriorityMedium
	}
	if !priority.Valid() {
		return nil, entities.ErrInvalidPriority
	}

	task := &entities.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      status,
		DueDate:     req.DueDate,
		Category:    req.Category,
		UserID:      ownerID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infow("Task created", "task_id", task.ID, "user_id", ownerID)

	return task, nil
}

// UpdateTask merges the patch into the task matching both the task id and
// the caller. An ownership mismatch surfaces as ErrTaskNotFound, identical
// to a missing id. Enumerated fields are re-validated even on partial
// updates.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, patch entities.TaskPatch) (*entities.Task, error) {
	if ownerID == uuid.Nil {
		return nil, entities.ErrUnauthenticated
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, entities.ErrInvalidStatus
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, entities.ErrInvalidPriority
	}

	task, err := s.taskRepo.UpdateOwned(ctx, taskID, ownerID, patch)
	if err != nil {
		if err == entities.ErrTaskNotFound {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Infow("Task updated", "task_id", taskID, "user_id", ownerID)

	return task, nil
}

// DeleteTask removes the task matching both the task id and the caller.
// Deletion is permanent; repeating the call yields ErrTaskNotFound.
func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return entities.ErrUnauthenticated
	}

	if err := s.taskRepo.DeleteOwned(ctx, taskID, ownerID); err != nil {
		if err == entities.ErrTaskNotFound {
			return entities.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Infow("Task deleted", "task_id", taskID, "user_id", ownerID)

	return nil
}
