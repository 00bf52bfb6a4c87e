package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mwhitfield/gantry/internal/cli/formatter"
	"github.com/mwhitfield/gantry/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the task snapshot",
	}
	cmd.AddCommand(newTaskListCmd(app), newTaskAddCmd(app))
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					t.ID,
					t.Title,
					formatter.Hours(t.EstimatedHours),
					formatter.PriorityColor(t.Priority).Render(string(t.Priority)),
					string(t.Complexity),
					formatter.RiskColor(t.Risk).Render(string(t.Risk)),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "Title", "Effort", "Priority", "Complexity", "Risk"}, rows))
			return nil
		},
	}
}

func newTaskAddCmd(app *App) *cobra.Command {
	var id, title, priority, complexity, risk string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if hours <= 0 {
				return fmt.Errorf("--hours must be positive")
			}
			if priority != "" && !domain.ValidPriorities[priority] {
				return fmt.Errorf("invalid priority %q", priority)
			}
			if complexity != "" && !domain.ValidComplexities[complexity] {
				return fmt.Errorf("invalid complexity %q", complexity)
			}
			if id == "" {
				id = uuid.NewString()
			}
			if priority == "" {
				priority = string(domain.PriorityMedium)
			}
			if complexity == "" {
				complexity = string(domain.ComplexityModerate)
			}
			if risk == "" {
				risk = string(domain.RiskLow)
			}

			now := time.Now().UTC()
			t := &domain.Task{
				ID:             id,
				Title:          title,
				EstimatedHours: hours,
				Priority:       domain.Priority(priority),
				Complexity:     domain.Complexity(complexity),
				Status:         domain.TaskPending,
				Risk:           domain.RiskLevel(risk),
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}
			fmt.Printf("Added task %s\n", t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Task ID (generated when omitted)")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated effort in hours")
	cmd.Flags().StringVar(&priority, "priority", "", "critical|high|medium|low")
	cmd.Flags().StringVar(&complexity, "complexity", "", "trivial|simple|moderate|complex|epic")
	cmd.Flags().StringVar(&risk, "risk", "", "low|medium|high")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}
