package domain

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// PriorityRank returns a sort rank for a priority (lower = more urgent).
// Unknown values rank after low.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

type Complexity string

const (
	ComplexityTrivial  Complexity = "trivial"
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
	ComplexityEpic     Complexity = "epic"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type SprintStatus string

const (
	SprintPlanned   SprintStatus = "planned"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

// RelationKind categorizes a dependency edge between two tasks.
type RelationKind string

const (
	RelationBlocks   RelationKind = "blocks"
	RelationRequires RelationKind = "requires"
	RelationSuggests RelationKind = "suggests"
	RelationEnhances RelationKind = "enhances"
)

// Blocking reports whether edges of this kind constrain scheduling.
// suggests/enhances edges are advisory and excluded from the graph.
func (k RelationKind) Blocking() bool {
	return k == RelationBlocks || k == RelationRequires
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"critical": true, "high": true, "medium": true, "low": true,
}

// ValidComplexities is the canonical set of accepted complexity strings.
var ValidComplexities = map[string]bool{
	"trivial": true, "simple": true, "moderate": true, "complex": true, "epic": true,
}

// ValidRelationKinds is the canonical set of accepted relation kind strings.
var ValidRelationKinds = map[string]bool{
	"blocks": true, "requires": true, "suggests": true, "enhances": true,
}
