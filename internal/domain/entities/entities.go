package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Enums and types
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// TaskStatuses lists every valid status value.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted}
}

// TaskPriorities lists every valid priority value.
func TaskPriorities() []TaskPriority {
	return []TaskPriority{TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow}
}

// Valid reports whether the status is one of the enumerated values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Valid reports whether the priority is one of the enumerated values.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// EnumMeta carries the presentation attributes of a status or priority value.
type EnumMeta struct {
	Label string
	Color string
}

// StatusMeta maps every valid status to its presentation attributes. The
// table must stay exhaustive over TaskStatuses.
var StatusMeta = map[TaskStatus]EnumMeta{
	TaskStatusTodo:       {Label: "To Do", Color: "slate"},
	TaskStatusInProgress: {Label: "In Progress", Color: "blue"},
	TaskStatusCompleted:  {Label: "Completed", Color: "green"},
}

// PriorityMeta maps every valid priority to its presentation attributes. The
// table must stay exhaustive over TaskPriorities.
var PriorityMeta = map[TaskPriority]EnumMeta{
	TaskPriorityHigh:   {Label: "High", Color: "red"},
	TaskPriorityMedium: {Label: "Medium", Color: "yellow"},
	TaskPriorityLow:    {Label: "Low", Color: "green"},
}

// Task represents one unit of work owned by exactly one user
type Task struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Priority    TaskPriority `json:"priority" db:"priority"`
	Status      TaskStatus   `json:"status" db:"status"`
	DueDate     string       `json:"dueDate" db:"due_date"`
	Category    string       `json:"category" db:"category"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UserID      uuid.UUID    `json:"userId" db:"user_id"`
}

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// TaskPatch is a partial task update. Nil fields keep their stored value.
// ID, owner and creation timestamp are not representable here, so a client
// payload can never alter them.
type TaskPatch struct {
	Title       *string       `json:"title" validate:"omitempty,min=1"`
	Description *string       `json:"description" validate:"omitempty,min=1"`
	Priority    *TaskPriority `json:"priority" validate:"omitempty,oneof=high medium low"`
	Status      *TaskStatus   `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
	DueDate     *string       `json:"dueDate" validate:"omitempty,min=1"`
	Category    *string       `json:"category"`
}

// Apply merges the patch into the task, field by field. Unset fields retain
// the current value.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
}
