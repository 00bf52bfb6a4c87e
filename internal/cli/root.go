package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwhitfield/gantry/internal/repository"
	"github.com/mwhitfield/gantry/internal/service"
)

// App holds references to the services and repositories CLI commands use.
type App struct {
	Tasks    repository.TaskRepo
	Edges    repository.EdgeRepo
	Plans    repository.PlanRepo
	Planner  service.PlanService
	Importer service.ImportService
}

// NewRootCmd creates the top-level "gantry" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gantry",
		Short: "Dependency analysis and capacity-aware sprint planning",
	}

	root.AddCommand(
		newTaskCmd(app),
		newImportCmd(app),
		newAnalyzeCmd(app),
		newPlanCmd(app),
	)

	return root
}
