package service

import (
	"context"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
)

// PlanService is the engine's public surface. Both operations are pure
// over their input snapshot: no I/O, no shared state, identical inputs
// produce identical outputs.
type PlanService interface {
	// AnalyzeDependencies validates the blocking-dependency graph and
	// computes the CPM schedule, critical path, parallel tracks and
	// optimization suggestions. Returns *contract.CycleError when the
	// graph is cyclic; callers must treat that as fatal and not schedule.
	AnalyzeDependencies(ctx context.Context, tasks []domain.Task, edges []domain.DependencyEdge) (*contract.DependencyAnalysis, error)

	// GenerateSprintPlan runs the full pipeline: analysis, greedy
	// capacity-aware sprint assignment, milestones, release timeline,
	// capacity diagnostics and recommendations. Propagates cycle errors
	// from the analysis and rejects malformed constraints up front.
	GenerateSprintPlan(ctx context.Context, req contract.PlanRequest) (*contract.SprintPlan, error)
}

// ImportResult holds the outcome of a snapshot import.
type ImportResult struct {
	TaskCount   int
	EdgeCount   int
	Constraints *contract.PlanConstraints
	Warnings    []string
}

// ImportService loads a task/dependency snapshot file into the store.
type ImportService interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
}
