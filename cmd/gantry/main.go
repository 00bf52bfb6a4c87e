package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/mwhitfield/gantry/internal/cli"
	"github.com/mwhitfield/gantry/internal/db"
	"github.com/mwhitfield/gantry/internal/repository"
	"github.com/mwhitfield/gantry/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.gantry/gantry.db
	dbPath := os.Getenv("GANTRY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gantry", "gantry.db")
	}

	// No colors when stdout is not a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	edgeRepo := repository.NewSQLiteEdgeRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	var observer service.PlanObserver = service.NoopPlanObserver{}
	if os.Getenv("GANTRY_DEBUG") != "" {
		observer = service.NewLogPlanObserver(os.Stderr)
	}

	app := &cli.App{
		Tasks:    taskRepo,
		Edges:    edgeRepo,
		Plans:    planRepo,
		Planner:  service.NewPlanService(observer),
		Importer: service.NewImportService(taskRepo, edgeRepo),
	}

	return cli.NewRootCmd(app).Execute()
}
