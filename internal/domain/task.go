package domain

import "time"

// Task is one unit of development work. Tasks are immutable during a
// planning run; computed schedule fields live in a side table, not here.
type Task struct {
	ID             string
	Title          string
	Description    string
	EstimatedHours float64
	Priority       Priority
	Complexity     Complexity
	Status         TaskStatus
	Risk           RiskLevel

	// Dependencies lists task IDs this task depends on (convenience
	// mirror of the blocking edge set; the graph builder works from
	// edges, and the importer converts these into edges).
	Dependencies []string
	// Dependents lists task IDs that depend on this task (derived).
	Dependents []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DependencyEdge is a directed relation: TaskID depends on DependsOnID.
// Strength, Reason and Risk are advisory metadata and never influence
// the schedule.
type DependencyEdge struct {
	TaskID      string
	DependsOnID string
	Kind        RelationKind
	Strength    float64
	Reason      string
	Risk        RiskLevel
}
