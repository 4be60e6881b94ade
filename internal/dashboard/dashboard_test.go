package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

type taskAPIMock struct {
	mock.Mock
}

func (m *taskAPIMock) ListMyTasks(ctx context.Context) ([]entities.Task, error) {
	args := m.Called(ctx)

	var tasks []entities.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]entities.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskAPIMock) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	args := m.Called(ctx, req)

	var task *entities.Task
	if value := args.Get(0); value != nil {
		task = value.(*entities.Task)
	}
	return task, args.Error(1)
}

func (m *taskAPIMock) UpdateTask(ctx context.Context, id uuid.UUID, patch entities.TaskPatch) (*entities.Task, error) {
	args := m.Called(ctx, id, patch)

	var task *entities.Task
	if value := args.Get(0); value != nil {
		task = value.(*entities.Task)
	}
	return task, args.Error(1)
}

func (m *taskAPIMock) DeleteTask(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Failure(msg string) { n.failures = append(n.failures, msg) }

func sampleTasks() []entities.Task {
	owner := uuid.New()
	return []entities.Task{
		{ID: uuid.New(), Title: "Monthly Report", Description: "Compile sales data", Priority: entities.TaskPriorityHigh, Status: entities.TaskStatusInProgress, Category: "Work", UserID: owner},
		{ID: uuid.New(), Title: "Team Meeting", Description: "Weekly sync", Priority: entities.TaskPriorityMedium, Status: entities.TaskStatusTodo, Category: "Meeting", UserID: owner},
		{ID: uuid.New(), Title: "Review PRs", Description: "Approve pull requests", Priority: entities.TaskPriorityHigh, Status: entities.TaskStatusTodo, Category: "Work", UserID: owner},
	}
}

func loadedDashboard(t *testing.T, api *taskAPIMock, notifier Notifier, tasks []entities.Task) *Dashboard {
	t.Helper()
	api.On("ListMyTasks", mock.Anything).Return(tasks, nil).Once()

	d := New(api, notifier)
	require.NoError(t, d.Load(context.Background()))
	return d
}

func TestFilters_Conjunction(t *testing.T) {
	tasks := sampleTasks()
	api := new(taskAPIMock)
	d := loadedDashboard(t, api, nil, tasks)

	// Everything visible by default.
	require.Len(t, d.Visible(), 3)

	// Search matches title or description, case-insensitively.
	d.Filters.Search = "report"
	require.Len(t, d.Visible(), 1)
	require.Equal(t, "Monthly Report", d.Visible()[0].Title)

	d.Filters.Search = "PULL REQUESTS"
	require.Len(t, d.Visible(), 1)
	require.Equal(t, "Review PRs", d.Visible()[0].Title)

	// Filters combine conjunctively.
	d.Filters = NewFilters()
	d.Filters.Category = "Work"
	require.Len(t, d.Visible(), 2)

	d.Filters.Status = "todo"
	require.Len(t, d.Visible(), 1)
	require.Equal(t, "Review PRs", d.Visible()[0].Title)

	d.Filters.Priority = "medium"
	require.Empty(t, d.Visible())
}

func TestFilters_PreserveOrder(t *testing.T) {
	tasks := sampleTasks()
	api := new(taskAPIMock)
	d := loadedDashboard(t, api, nil, tasks)

	d.Filters.Priority = "high"
	visible := d.Visible()
	require.Len(t, visible, 2)
	require.Equal(t, tasks[0].ID, visible[0].ID)
	require.Equal(t, tasks[2].ID, visible[1].ID)
}

func TestChangeStatus_OptimisticThenConfirmed(t *testing.T) {
	tasks := sampleTasks()
	target := tasks[1]

	confirmed := target
	confirmed.Status = entities.TaskStatusCompleted

	api := new(taskAPIMock)
	notifier := &recordingNotifier{}
	d := loadedDashboard(t, api, notifier, tasks)

	api.On("UpdateTask", mock.Anything, target.ID, mock.MatchedBy(func(p entities.TaskPatch) bool {
		return p.Status != nil && *p.Status == entities.TaskStatusCompleted
	})).Return(&confirmed, nil).Once()

	require.NoError(t, d.ChangeStatus(context.Background(), target.ID, entities.TaskStatusCompleted))

	require.Equal(t, entities.TaskStatusCompleted, d.Tasks()[1].Status)
	require.Equal(t, []string{"Task updated"}, notifier.successes)
	require.Empty(t, notifier.failures)
	api.AssertExpectations(t)
}

func TestChangeStatus_RejectedRollsBackExactSnapshot(t *testing.T) {
	tasks := sampleTasks()
	target := tasks[1]

	api := new(taskAPIMock)
	notifier := &recordingNotifier{}
	d := loadedDashboard(t, api, notifier, tasks)

	api.On("UpdateTask", mock.Anything, target.ID, mock.Anything).
		Return(nil, errors.New("simulated failure")).Once()

	err := d.ChangeStatus(context.Background(), target.ID, entities.TaskStatusCompleted)
	require.Error(t, err)

	// The exact pre-change copy is back at the same position.
	require.Equal(t, target, d.Tasks()[1])
	require.Equal(t, entities.TaskStatusTodo, d.Tasks()[1].Status)
	require.Len(t, d.Tasks(), 3)
	require.Equal(t, []string{"Failed to update task"}, notifier.failures)
	require.Empty(t, notifier.successes)
	api.AssertExpectations(t)
}

func TestEditTask_AdoptsServerRecordOnSuccess(t *testing.T) {
	tasks := sampleTasks()
	target := tasks[0]

	title := "Quarterly Report"
	patch := entities.TaskPatch{Title: &title}

	// The server may normalize the record beyond the optimistic guess.
	confirmed := target
	confirmed.Title = title
	confirmed.Category = "Finance"

	api := new(taskAPIMock)
	d := loadedDashboard(t, api, nil, tasks)

	api.On("UpdateTask", mock.Anything, target.ID, patch).Return(&confirmed, nil).Once()

	require.NoError(t, d.EditTask(context.Background(), target.ID, patch))
	require.Equal(t, confirmed, d.Tasks()[0])
	api.AssertExpectations(t)
}

func TestEditTask_UnknownIDIsNotFoundWithoutAPICall(t *testing.T) {
	api := new(taskAPIMock)
	d := loadedDashboard(t, api, nil, sampleTasks())

	title := "X"
	err := d.EditTask(context.Background(), uuid.New(), entities.TaskPatch{Title: &title})
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
	api.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddTask_NonOptimistic(t *testing.T) {
	api := new(taskAPIMock)
	notifier := &recordingNotifier{}
	d := loadedDashboard(t, api, notifier, sampleTasks())

	req := ports.CreateTaskRequest{Title: "New", Description: "Thing", DueDate: "2024-02-01"}

	// Failure first: nothing is added.
	api.On("CreateTask", mock.Anything, req).Return(nil, errors.New("rejected")).Once()
	_, err := d.AddTask(context.Background(), req)
	require.Error(t, err)
	require.Len(t, d.Tasks(), 3)
	require.Equal(t, []string{"Failed to create task"}, notifier.failures)

	// Success: the store-assigned record is appended.
	stored := entities.Task{ID: uuid.New(), Title: "New", Description: "Thing", DueDate: "2024-02-01", Status: entities.TaskStatusTodo}
	api.On("CreateTask", mock.Anything, req).Return(&stored, nil).Once()
	task, err := d.AddTask(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, stored.ID, task.ID)
	require.Len(t, d.Tasks(), 4)
	require.Equal(t, stored, d.Tasks()[3])
	api.AssertExpectations(t)
}

func TestRemoveTask_NonOptimistic(t *testing.T) {
	tasks := sampleTasks()
	target := tasks[0]

	api := new(taskAPIMock)
	notifier := &recordingNotifier{}
	d := loadedDashboard(t, api, notifier, tasks)

	// Failure: the record stays put.
	api.On("DeleteTask", mock.Anything, target.ID).Return(errors.New("rejected")).Once()
	err := d.RemoveTask(context.Background(), target.ID)
	require.Error(t, err)
	require.Len(t, d.Tasks(), 3)
	require.Equal(t, target, d.Tasks()[0])

	// Success: the record is removed, order preserved.
	api.On("DeleteTask", mock.Anything, target.ID).Return(nil).Once()
	require.NoError(t, d.RemoveTask(context.Background(), target.ID))
	require.Len(t, d.Tasks(), 2)
	require.Equal(t, tasks[1].ID, d.Tasks()[0].ID)
	require.Equal(t, tasks[2].ID, d.Tasks()[1].ID)
	api.AssertExpectations(t)
}

func TestStats_CountsByStatus(t *testing.T) {
	api := new(taskAPIMock)
	d := loadedDashboard(t, api, nil, sampleTasks())

	stats := d.Stats()
	require.Equal(t, Stats{Total: 3, Todo: 2, InProgress: 1, Completed: 0}, stats)
}
