package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/gantry/internal/cli/formatter"
	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
	"github.com/mwhitfield/gantry/internal/importer"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the dependency graph and print the critical path",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, edges, err := loadSnapshot(app, file)
			if err != nil {
				return err
			}

			analysis, err := app.Planner.AnalyzeDependencies(context.Background(), tasks, edges)
			if err != nil {
				var cycleErr *contract.CycleError
				if errors.As(err, &cycleErr) {
					fmt.Print(formatter.FormatCycleError(cycleErr))
					return fmt.Errorf("planning aborted: %d cycle(s)", len(cycleErr.Cycles))
				}
				return err
			}

			fmt.Print(formatter.FormatAnalysis(analysis))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Analyze a snapshot file instead of the stored tasks")
	return cmd
}

// loadSnapshot reads tasks and edges either from a snapshot file or from
// the store.
func loadSnapshot(app *App, file string) ([]domain.Task, []domain.DependencyEdge, error) {
	if file != "" {
		snap, err := importer.LoadSnapshot(file)
		if err != nil {
			return nil, nil, err
		}
		if errs, _ := importer.ValidateSnapshot(snap); len(errs) > 0 {
			return nil, nil, fmt.Errorf("invalid snapshot: %v", errs[0])
		}
		tasks, edges, _ := importer.ConvertSnapshot(snap, time.Now().UTC())
		return tasks, edges, nil
	}

	ctx := context.Background()
	stored, err := app.Tasks.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	tasks := make([]domain.Task, len(stored))
	for i, t := range stored {
		tasks[i] = *t
	}
	edges, err := app.Edges.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return tasks, edges, nil
}
