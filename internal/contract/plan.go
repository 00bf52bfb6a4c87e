package contract

import (
	"time"

	"github.com/mwhitfield/gantry/internal/domain"
)

// Capacity policy defaults. These are documented product policy, not
// caller-tunable in the base design; a zero value on PlanConstraints
// means "use the default".
const (
	DefaultVelocityFactor = 0.8
	DefaultBufferPct      = 0.15
)

// PlanConstraints is the team-capacity input to sprint planning.
type PlanConstraints struct {
	TeamSize              int
	SprintLengthWeeks     int
	HoursPerWeekPerPerson float64
	StartDate             time.Time
	// VelocityFactor discounts raw team-hours for non-coding overhead.
	VelocityFactor float64
	// BufferPct reserves a fraction of velocity-adjusted hours.
	BufferPct float64
}

func (c PlanConstraints) Velocity() float64 {
	if c.VelocityFactor <= 0 {
		return DefaultVelocityFactor
	}
	return c.VelocityFactor
}

func (c PlanConstraints) Buffer() float64 {
	if c.BufferPct <= 0 {
		return DefaultBufferPct
	}
	return c.BufferPct
}

// SprintTotalHours is the raw team capacity for one sprint.
func (c PlanConstraints) SprintTotalHours() float64 {
	return float64(c.TeamSize) * float64(c.SprintLengthWeeks) * c.HoursPerWeekPerPerson
}

// SprintAvailableHours is the per-sprint budget after the velocity factor
// and buffer are applied.
func (c PlanConstraints) SprintAvailableHours() float64 {
	return c.SprintTotalHours() * c.Velocity() * (1 - c.Buffer())
}

// Validate rejects constraints that would make capacity zero or negative.
// Planning must not start on invalid constraints.
func (c PlanConstraints) Validate() error {
	switch {
	case c.TeamSize <= 0:
		return &ConstraintError{Field: "team_size", Message: "must be positive"}
	case c.SprintLengthWeeks <= 0:
		return &ConstraintError{Field: "sprint_length_weeks", Message: "must be positive"}
	case c.HoursPerWeekPerPerson <= 0:
		return &ConstraintError{Field: "hours_per_week_per_person", Message: "must be positive"}
	}
	return nil
}

// PlanRequest carries one planning invocation's full input snapshot.
type PlanRequest struct {
	Tasks       []domain.Task
	Edges       []domain.DependencyEdge
	Constraints PlanConstraints
	// MilestoneTemplates are caller-supplied milestones appended to the
	// generated ones, with unset fields defaulted from the sprints.
	MilestoneTemplates []domain.Milestone
}

// Assignment records one task's sprint placement.
type Assignment struct {
	TaskID string
	Sprint int
	Hours  float64
	Reason string
	// Confidence is in [0.3, 1.0], derived from complexity and
	// dependency count.
	Confidence float64
	// DependenciesMet reports whether every dependency had already been
	// assigned when this task was placed.
	DependenciesMet bool
	// Overflow marks a task whose effort alone exceeds one sprint's
	// available hours; it is placed anyway, never split or dropped.
	Overflow bool
}

// TimelinePhase is one of the three fixed release phases.
type TimelinePhase struct {
	Name        string
	StartSprint int
	EndSprint   int
	StartDate   time.Time
	EndDate     time.Time
}

// CapacityAnalysis aggregates plan-wide utilization figures.
type CapacityAnalysis struct {
	SprintCount        int
	TotalHours         float64
	PlannedHours       float64
	BufferHours        float64
	UtilizationPct     float64
	OverallocationRisk domain.RiskLevel
}

// RecommendationCategory tags a planning recommendation.
type RecommendationCategory string

const (
	RecommendCapacity   RecommendationCategory = "capacity"
	RecommendDependency RecommendationCategory = "dependency"
	RecommendMilestone  RecommendationCategory = "milestone"
	RecommendRisk       RecommendationCategory = "risk"
)

// Recommendation is one prioritized planning warning.
type Recommendation struct {
	Category RecommendationCategory
	Priority domain.Priority
	Message  string
}

// SprintPlan is the full planning output. All slices are freshly
// allocated per invocation; the caller owns the result.
type SprintPlan struct {
	Sprints         []domain.Sprint
	Assignments     []Assignment
	Milestones      []domain.Milestone
	Timeline        []TimelinePhase
	Capacity        CapacityAnalysis
	Recommendations []Recommendation
	Analysis        DependencyAnalysis
}
