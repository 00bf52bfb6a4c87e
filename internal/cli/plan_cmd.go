package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mwhitfield/gantry/internal/cli/formatter"
	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
	"github.com/mwhitfield/gantry/internal/repository"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		file         string
		teamSize     int
		weeks        int
		hoursPerWeek float64
		start        string
		velocity     float64
		buffer       float64
		save         bool
		showTasks    bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a capacity-aware sprint plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, edges, err := loadSnapshot(app, file)
			if err != nil {
				return err
			}

			startDate := time.Now().UTC().Truncate(24 * time.Hour)
			if start != "" {
				startDate, err = time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid --start date %q (expected YYYY-MM-DD)", start)
				}
			}

			req := contract.PlanRequest{
				Tasks: tasks,
				Edges: edges,
				Constraints: contract.PlanConstraints{
					TeamSize:              teamSize,
					SprintLengthWeeks:     weeks,
					HoursPerWeekPerPerson: hoursPerWeek,
					StartDate:             startDate,
					VelocityFactor:        velocity,
					BufferPct:             buffer,
				},
			}

			plan, err := app.Planner.GenerateSprintPlan(context.Background(), req)
			if err != nil {
				var cycleErr *contract.CycleError
				if errors.As(err, &cycleErr) {
					fmt.Print(formatter.FormatCycleError(cycleErr))
					return fmt.Errorf("planning aborted: %d cycle(s)", len(cycleErr.Cycles))
				}
				return err
			}

			fmt.Print(formatter.FormatSprintPlan(plan))
			if showTasks {
				byID := make(map[string]domain.Task, len(tasks))
				for _, t := range tasks {
					byID[t.ID] = t
				}
				fmt.Print("\n" + formatter.FormatAssignments(plan.Assignments, byID))
			}

			if save {
				saved := &repository.SavedPlan{
					ID:          uuid.NewString(),
					Constraints: req.Constraints,
					Sprints:     plan.Sprints,
					Assignments: plan.Assignments,
					Milestones:  plan.Milestones,
					Utilization: plan.Capacity.UtilizationPct,
				}
				if err := app.Plans.Save(context.Background(), saved); err != nil {
					return fmt.Errorf("saving plan: %w", err)
				}
				fmt.Printf("\nSaved plan %s\n", saved.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Plan from a snapshot file instead of the stored tasks")
	cmd.Flags().IntVar(&teamSize, "team-size", 0, "Number of people on the team")
	cmd.Flags().IntVar(&weeks, "sprint-weeks", 2, "Sprint length in weeks")
	cmd.Flags().Float64Var(&hoursPerWeek, "hours-per-week", 40, "Working hours per week per person")
	cmd.Flags().StringVar(&start, "start", "", "Project start date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "Velocity factor (default 0.8)")
	cmd.Flags().Float64Var(&buffer, "buffer", 0, "Buffer percentage as a fraction (default 0.15)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the generated plan")
	cmd.Flags().BoolVar(&showTasks, "assignments", false, "Print the per-task assignment table")
	_ = cmd.MarkFlagRequired("team-size")

	return cmd
}
