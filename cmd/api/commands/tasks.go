package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskflow/core/internal/dashboard"
	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// printNotifier surfaces mutation outcomes on the terminal.
type printNotifier struct{}

func (printNotifier) Success(msg string) { fmt.Println(msg) }
func (printNotifier) Failure(msg string) { fmt.Fprintln(os.Stderr, msg) }

// NewTasksCommand creates the tasks command group
func NewTasksCommand() *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Work with your tasks",
	}

	tasksCmd.AddCommand(newTasksListCommand())
	tasksCmd.AddCommand(newTasksCreateCommand())
	tasksCmd.AddCommand(newTasksUpdateCommand())
	tasksCmd.AddCommand(newTasksDeleteCommand())
	tasksCmd.AddCommand(newTasksStatsCommand())

	return tasksCmd
}

func newTasksListCommand() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your tasks, optionally filtered",
		Run: func(cmd *cobra.Command, args []string) {
			d := loadDashboard()

			d.Filters.Search, _ = cmd.Flags().GetString("search")
			d.Filters.Category, _ = cmd.Flags().GetString("category")
			d.Filters.Priority, _ = cmd.Flags().GetString("priority")
			d.Filters.Status, _ = cmd.Flags().GetString("status")

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tDUE\tCATEGORY")
			for _, task := range d.Visible() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					task.ID,
					task.Title,
					entities.PriorityMeta[task.Priority].Label,
					entities.StatusMeta[task.Status].Label,
					task.DueDate,
					task.Category,
				)
			}
			w.Flush()
		},
	}

	listCmd.Flags().String("search", "", "Match against title or description")
	listCmd.Flags().String("category", dashboard.FilterAll, "Filter by category")
	listCmd.Flags().String("priority", dashboard.FilterAll, "Filter by priority (high, medium, low)")
	listCmd.Flags().String("status", dashboard.FilterAll, "Filter by status (todo, in-progress, completed)")

	return listCmd
}

func newTasksCreateCommand() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Run: func(cmd *cobra.Command, args []string) {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			priority, _ := cmd.Flags().GetString("priority")
			status, _ := cmd.Flags().GetString("status")
			dueDate, _ := cmd.Flags().GetString("due")
			category, _ := cmd.Flags().GetString("category")

			if title == "" || description == "" || dueDate == "" {
				log.Fatal("Title, description and due date are required")
			}

			d := loadDashboard()

			task, err := d.AddTask(context.Background(), ports.CreateTaskRequest{
				Title:       title,
				Description: description,
				Priority:    entities.TaskPriority(priority),
				Status:      entities.TaskStatus(status),
				DueDate:     dueDate,
				Category:    category,
			})
			if err != nil {
				log.Fatalf("Create failed: %v", err)
			}

			fmt.Printf("Created task %s\n", task.ID)
		},
	}

	createCmd.Flags().String("title", "", "Task title (required)")
	createCmd.Flags().String("description", "", "Task description (required)")
	createCmd.Flags().String("priority", "", "Priority: high, medium, low")
	createCmd.Flags().String("status", "", "Status: todo, in-progress, completed")
	createCmd.Flags().String("due", "", "Due date, e.g. 2024-01-15 (required)")
	createCmd.Flags().String("category", "", "Free-text category")

	return createCmd
}

func newTasksUpdateCommand() *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			taskID, err := uuid.Parse(args[0])
			if err != nil {
				log.Fatalf("Invalid task id: %v", err)
			}

			var patch entities.TaskPatch
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				patch.Title = &v
			}
			if cmd.Flags().Changed("description") {
				v, _ := cmd.Flags().GetString("description")
				patch.Description = &v
			}
			if cmd.Flags().Changed("priority") {
				v, _ := cmd.Flags().GetString("priority")
				p := entities.TaskPriority(v)
				patch.Priority = &p
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				s := entities.TaskStatus(v)
				patch.Status = &s
			}
			if cmd.Flags().Changed("due") {
				v, _ := cmd.Flags().GetString("due")
				patch.DueDate = &v
			}
			if cmd.Flags().Changed("category") {
				v, _ := cmd.Flags().GetString("category")
				patch.Category = &v
			}

			d := loadDashboard()
			if err := d.EditTask(context.Background(), taskID, patch); err != nil {
				log.Fatalf("Update failed: %v", err)
			}
		},
	}

	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().String("description", "", "New description")
	updateCmd.Flags().String("priority", "", "New priority: high, medium, low")
	updateCmd.Flags().String("status", "", "New status: todo, in-progress, completed")
	updateCmd.Flags().String("due", "", "New due date")
	updateCmd.Flags().String("category", "", "New category")

	return updateCmd
}

func newTasksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			taskID, err := uuid.Parse(args[0])
			if err != nil {
				log.Fatalf("Invalid task id: %v", err)
			}

			d := loadDashboard()
			if err := d.RemoveTask(context.Background(), taskID); err != nil {
				log.Fatalf("Delete failed: %v", err)
			}
		},
	}
}

func newTasksStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts by status",
		Run: func(cmd *cobra.Command, args []string) {
			d := loadDashboard()
			stats := d.Stats()

			fmt.Printf("Total:       %d\n", stats.Total)
			fmt.Printf("%-12s %d\n", entities.StatusMeta[entities.TaskStatusTodo].Label+":", stats.Todo)
			fmt.Printf("%-12s %d\n", entities.StatusMeta[entities.TaskStatusInProgress].Label+":", stats.InProgress)
			fmt.Printf("%-12s %d\n", entities.StatusMeta[entities.TaskStatusCompleted].Label+":", stats.Completed)
		},
	}
}

// loadDashboard builds a dashboard over the authenticated API client and
// fills it with the caller's tasks.
func loadDashboard() *dashboard.Dashboard {
	_, api := authedClient()

	d := dashboard.New(api, printNotifier{})
	if err := d.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load tasks: %v", err)
	}

	return d
}
