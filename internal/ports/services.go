package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskflow/core/internal/domain/entities"
)

// AuthService interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// TaskService interface for owner-scoped task operations
type TaskService interface {
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]entities.Task, error)
	CreateTask(ctx context.Context, ownerID uuid.UUID, req CreateTaskRequest) (*entities.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, patch entities.TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// Request/Response Types

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse mirrors the wire shape {user, token}
type AuthResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Claims struct {
	UserID uuid.UUID
}

// CreateTaskRequest carries the client payload for a new task. Title,
// description and due date are mandatory; priority, status and category
// default server-side when absent.
type CreateTaskRequest struct {
	Title       string                `json:"title" validate:"required,min=1"`
	Description string                `json:"description" validate:"required,min=1"`
	Priority    entities.TaskPriority `json:"priority" validate:"omitempty,oneof=high medium low"`
	Status      entities.TaskStatus   `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	DueDate     string                `json:"dueDate" validate:"required,min=1"`
	Category    string                `json:"category"`
}
