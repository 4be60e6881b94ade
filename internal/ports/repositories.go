package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskflow/core/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// TaskRepository defines the interface for task data operations. Every
// operation that targets a single task is scoped by (id, owner) in one
// store query; a task owned by someone else and a task that does not exist
// are both entities.ErrTaskNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Task, error)
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, patch entities.TaskPatch) (*entities.Task, error)
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}
