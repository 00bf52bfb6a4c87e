package domain

import "time"

// Milestone is a delivery checkpoint tied to one or more sprints.
// Auto-generated milestones partition the sprint sequence into thirds;
// caller-supplied templates are appended with unset fields defaulted.
type Milestone struct {
	Name               string
	Description        string
	TargetDate         time.Time
	DependentSprints   []int
	CompletionCriteria []string
	Deliverables       []string
	Priority           Priority
	ProgressPct        float64
}
