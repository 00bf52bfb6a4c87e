package contract

import (
	"github.com/mwhitfield/gantry/internal/cpm"
	"github.com/mwhitfield/gantry/internal/domain"
)

// NodeSchedule is one task's computed CPM view: static fields plus the
// forward/backward pass results, in hours from project start.
type NodeSchedule struct {
	TaskID         string
	Title          string
	EstimatedHours float64
	Priority       domain.Priority
	Complexity     domain.Complexity
	Risk           domain.RiskLevel
	Dependencies   []string
	Dependents     []string
	EarliestStart  float64
	EarliestFinish float64
	LatestStart    float64
	LatestFinish   float64
	Slack          float64
	OnCriticalPath bool
}

// DependencyAnalysis is the result of AnalyzeDependencies: the validated
// graph's schedule, critical path, track decomposition and advisory
// optimization suggestions.
type DependencyAnalysis struct {
	// Nodes are ordered topologically (dependencies before dependents).
	Nodes              []NodeSchedule
	CriticalPath       cpm.CriticalPath
	Tracks             []cpm.Track
	Suggestions        []cpm.Suggestion
	ProjectFinishHours float64
	// DroppedEdges counts dependency edges that referenced unknown task
	// IDs and were discarded.
	DroppedEdges int
}
