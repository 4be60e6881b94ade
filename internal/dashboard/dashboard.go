// Package dashboard holds the client-side view state for the task list:
// a local cache of the caller's tasks, the active filters, and the
// optimistic-mutation protocol that reconciles the cache with the server.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// FilterAll is the wildcard value that disables an individual filter.
const FilterAll = "all"

// TaskAPI is the slice of the API client the dashboard depends on.
type TaskAPI interface {
	ListMyTasks(ctx context.Context) ([]entities.Task, error)
	CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, patch entities.TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// Notifier surfaces transient mutation outcomes to the user.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Failure(string) {}

// Filters selects the visible subset of the task list. Category, Priority
// and Status use FilterAll as a wildcard; Search matches title or
// description, case-insensitively.
type Filters struct {
	Search   string
	Category string
	Priority string
	Status   string
}

// NewFilters returns filters that show everything.
func NewFilters() Filters {
	return Filters{Category: FilterAll, Priority: FilterAll, Status: FilterAll}
}

// Matches reports whether the task satisfies the conjunction of all four
// filters.
func (f Filters) Matches(task entities.Task) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(task.Title), needle) &&
			!strings.Contains(strings.ToLower(task.Description), needle) {
			return false
		}
	}
	if f.Category != FilterAll && f.Category != task.Category {
		return false
	}
	if f.Priority != FilterAll && f.Priority != string(task.Priority) {
		return false
	}
	if f.Status != FilterAll && f.Status != string(task.Status) {
		return false
	}
	return true
}

// Stats are the per-status task counts shown above the list.
type Stats struct {
	Total      int
	Todo       int
	InProgress int
	Completed  int
}

// pending is a compensating transaction for one in-flight mutation: the
// exact pre-mutation copy and where it sat in the list. Every optimistic
// mutation goes through this shape; rollback restores the snapshot verbatim
// rather than recomputing anything.
type pending struct {
	snapshot entities.Task
	index    int
}

// Dashboard is the local, renderable copy of the caller's task list. It is
// meant to be driven from a single goroutine, mirroring a UI event loop.
type Dashboard struct {
	api      TaskAPI
	notifier Notifier

	tasks   []entities.Task
	Filters Filters
}

// New creates a dashboard backed by the given API. A nil notifier discards
// notifications.
func New(api TaskAPI, notifier Notifier) *Dashboard {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Dashboard{
		api:      api,
		notifier: notifier,
		Filters:  NewFilters(),
	}
}

// Load replaces the local cache with the server's task list.
func (d *Dashboard) Load(ctx context.Context) error {
	tasks, err := d.api.ListMyTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	d.tasks = tasks
	return nil
}

// Tasks returns the full local cache, in list order.
func (d *Dashboard) Tasks() []entities.Task {
	return d.tasks
}

// Visible returns the tasks passing the active filters, preserving list
// order. The filter is re-evaluated on every call; nothing is cached.
func (d *Dashboard) Visible() []entities.Task {
	out := []entities.Task{}
	for _, task := range d.tasks {
		if d.Filters.Matches(task) {
			out = append(out, task)
		}
	}
	return out
}

// Stats counts the cached tasks by status.
func (d *Dashboard) Stats() Stats {
	var s Stats
	s.Total = len(d.tasks)
	for _, task := range d.tasks {
		switch task.Status {
		case entities.TaskStatusTodo:
			s.Todo++
		case entities.TaskStatusInProgress:
			s.InProgress++
		case entities.TaskStatusCompleted:
			s.Completed++
		}
	}
	return s
}

// ChangeStatus flips a task's status optimistically.
func (d *Dashboard) ChangeStatus(ctx context.Context, id uuid.UUID, status entities.TaskStatus) error {
	return d.EditTask(ctx, id, entities.TaskPatch{Status: &status})
}

// EditTask applies a partial edit optimistically: the local copy changes
// immediately, the server is asked to confirm, and on failure the exact
// pre-edit copy is restored at its original position.
func (d *Dashboard) EditTask(ctx context.Context, id uuid.UUID, patch entities.TaskPatch) error {
	p, ok := d.applyOptimistic(id, patch)
	if !ok {
		return entities.ErrTaskNotFound
	}

	updated, err := d.api.UpdateTask(ctx, id, patch)
	if err != nil {
		d.rollback(p)
		d.notifier.Failure("Failed to update task")
		return fmt.Errorf("update task: %w", err)
	}

	// The server's record is the truth; adopt it over the optimistic guess.
	d.tasks[p.index] = *updated
	d.notifier.Success("Task updated")
	return nil
}

// AddTask creates a task. Creation is not optimistic: the identifier and
// creation timestamp do not exist until the store assigns them, so the
// record is appended only after the server confirms.
func (d *Dashboard) AddTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	task, err := d.api.CreateTask(ctx, req)
	if err != nil {
		d.notifier.Failure("Failed to create task")
		return nil, fmt.Errorf("create task: %w", err)
	}

	d.tasks = append(d.tasks, *task)
	d.notifier.Success("Task created")
	return task, nil
}

// RemoveTask deletes a task. Deletion is not optimistic either: the record
// leaves the local list only after the server confirms, so the view never
// shows a task as gone while it still exists.
func (d *Dashboard) RemoveTask(ctx context.Context, id uuid.UUID) error {
	idx := d.indexOf(id)
	if idx < 0 {
		return entities.ErrTaskNotFound
	}

	if err := d.api.DeleteTask(ctx, id); err != nil {
		d.notifier.Failure("Failed to delete task")
		return fmt.Errorf("delete task: %w", err)
	}

	d.tasks = append(d.tasks[:idx], d.tasks[idx+1:]...)
	d.notifier.Success("Task deleted")
	return nil
}

// applyOptimistic captures the pre-mutation copy of the task, applies the
// patch to local state, and returns the compensating transaction.
func (d *Dashboard) applyOptimistic(id uuid.UUID, patch entities.TaskPatch) (pending, bool) {
	idx := d.indexOf(id)
	if idx < 0 {
		return pending{}, false
	}

	p := pending{snapshot: d.tasks[idx], index: idx}
	task := d.tasks[idx]
	patch.Apply(&task)
	d.tasks[idx] = task
	return p, true
}

// rollback restores the captured snapshot at its original position.
func (d *Dashboard) rollback(p pending) {
	d.tasks[p.index] = p.snapshot
}

func (d *Dashboard) indexOf(id uuid.UUID) int {
	for i, task := range d.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
