package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface. Single-task
// operations match on id AND user_id in one statement, so a task owned by
// another user and a nonexistent task are indistinguishable to the caller.
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, priority, status, due_date, category, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Description, task.Priority,
		task.Status, task.DueDate, task.Category, task.UserID,
	).Scan(&task.CreatedAt)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Task, error) {
	query := `
		SELECT id, title, description, priority, status, due_date, category, created_at, user_id
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at, id`

	tasks := []entities.Task{}
	err := r.db.SelectContext(ctx, &tasks, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by owner: %w", err)
	}

	return tasks, nil
}

// UpdateOwned merges the patch into the task matching id and owner in one
// statement. COALESCE keeps the stored value for absent fields, so there is
// no fetch-then-write gap between the ownership check and the merge.
func (r *TaskRepositoryImpl) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, patch entities.TaskPatch) (*entities.Task, error) {
	query := `
		UPDATE tasks
		SET title       = COALESCE($3, title),
		    description = COALESCE($4, description),
		    priority    = COALESCE($5, priority),
		    status      = COALESCE($6, status),
		    due_date    = COALESCE($7, due_date),
		    category    = COALESCE($8, category)
		WHERE id = $1 AND user_id = $2
		RETURNING id, title, description, priority, status, due_date, category, created_at, user_id`

	var task entities.Task
	err := r.db.QueryRowxContext(ctx, query,
		id, ownerID,
		patch.Title, patch.Description, patch.Priority,
		patch.Status, patch.DueDate, patch.Category,
	).StructScan(&task)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}
