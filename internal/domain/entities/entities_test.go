package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatusValid(t *testing.T) {
	for _, s := range TaskStatuses() {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}

	assert.False(t, TaskStatus("done").Valid())
	assert.False(t, TaskStatus("").Valid())
	assert.False(t, TaskStatus("in_progress").Valid())
}

func TestTaskPriorityValid(t *testing.T) {
	for _, p := range TaskPriorities() {
		assert.True(t, p.Valid(), "priority %q should be valid", p)
	}

	assert.False(t, TaskPriority("critical").Valid())
	assert.False(t, TaskPriority("").Valid())
}

func TestMetaTablesAreExhaustive(t *testing.T) {
	require.Len(t, StatusMeta, len(TaskStatuses()))
	for _, s := range TaskStatuses() {
		meta, ok := StatusMeta[s]
		require.True(t, ok, "missing meta for status %q", s)
		assert.NotEmpty(t, meta.Label)
		assert.NotEmpty(t, meta.Color)
	}

	require.Len(t, PriorityMeta, len(TaskPriorities()))
	for _, p := range TaskPriorities() {
		meta, ok := PriorityMeta[p]
		require.True(t, ok, "missing meta for priority %q", p)
		assert.NotEmpty(t, meta.Label)
		assert.NotEmpty(t, meta.Color)
	}
}

func TestTaskPatchApply(t *testing.T) {
	owner := uuid.New()
	task := Task{
		ID:          uuid.New(),
		Title:       "Monthly report",
		Description: "Compile December numbers",
		Priority:    TaskPriorityHigh,
		Status:      TaskStatusTodo,
		DueDate:     "2024-01-15",
		Category:    "Work",
		UserID:      owner,
	}
	original := task

	status := TaskStatusCompleted
	patch := TaskPatch{Status: &status}
	patch.Apply(&task)

	assert.Equal(t, TaskStatusCompleted, task.Status)
	assert.Equal(t, original.Title, task.Title)
	assert.Equal(t, original.Description, task.Description)
	assert.Equal(t, original.Priority, task.Priority)
	assert.Equal(t, original.DueDate, task.DueDate)
	assert.Equal(t, original.Category, task.Category)
	assert.Equal(t, original.ID, task.ID)
	assert.Equal(t, owner, task.UserID)
}

func TestTaskPatchApplyAllFields(t *testing.T) {
	task := Task{
		Title:       "Old",
		Description: "Old desc",
		Priority:    TaskPriorityLow,
		Status:      TaskStatusTodo,
		DueDate:     "2024-01-01",
		Category:    "Home",
	}

	title := "New"
	desc := "New desc"
	priority := TaskPriorityHigh
	status := TaskStatusInProgress
	due := "2024-02-01"
	category := "Work"

	patch := TaskPatch{
		Title:       &title,
		Description: &desc,
		Priority:    &priority,
		Status:      &status,
		DueDate:     &due,
		Category:    &category,
	}
	patch.Apply(&task)

	assert.Equal(t, Task{
		Title:       "New",
		Description: "New desc",
		Priority:    TaskPriorityHigh,
		Status:      TaskStatusInProgress,
		DueDate:     "2024-02-01",
		Category:    "Work",
	}, task)
}
