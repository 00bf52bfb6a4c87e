package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/gantry/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a task/dependency snapshot (JSON or YAML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Importer.ImportSnapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d tasks and %d dependency edges\n", result.TaskCount, result.EdgeCount)
			for _, w := range result.Warnings {
				fmt.Println(formatter.Dim("  warning: " + w))
			}
			return nil
		},
	}
}
