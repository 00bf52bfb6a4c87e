package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
)

// ConvertSnapshot maps a validated snapshot onto domain records. Tasks
// without an explicit id get a generated one; task-level depends_on lists
// become blocking edges alongside the explicit dependency records.
func ConvertSnapshot(snap *Snapshot, now time.Time) ([]domain.Task, []domain.DependencyEdge, *contract.PlanConstraints) {
	tasks := make([]domain.Task, 0, len(snap.Tasks))
	var edges []domain.DependencyEdge

	for _, t := range snap.Tasks {
		id := t.ID
		if id == "" {
			id = uuid.NewString()
		}
		tasks = append(tasks, domain.Task{
			ID:             id,
			Title:          t.Title,
			Description:    t.Description,
			EstimatedHours: t.EstimatedHours,
			Priority:       priorityOrDefault(t.Priority),
			Complexity:     complexityOrDefault(t.Complexity),
			Status:         statusOrDefault(t.Status),
			Risk:           riskOrDefault(t.RiskLevel),
			Dependencies:   append([]string(nil), t.DependsOn...),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		for _, dep := range t.DependsOn {
			edges = append(edges, domain.DependencyEdge{
				TaskID:      id,
				DependsOnID: dep,
				Kind:        domain.RelationBlocks,
			})
		}
	}

	for _, d := range snap.Dependencies {
		kind := domain.RelationKind(d.Kind)
		if d.Kind == "" {
			kind = domain.RelationBlocks
		}
		edges = append(edges, domain.DependencyEdge{
			TaskID:      d.TaskID,
			DependsOnID: d.DependsOnID,
			Kind:        kind,
			Strength:    d.Strength,
			Reason:      d.Reason,
			Risk:        riskOrDefault(d.RiskLevel),
		})
	}

	var constraints *contract.PlanConstraints
	if c := snap.Constraints; c != nil {
		start, _ := time.Parse("2006-01-02", c.StartDate)
		constraints = &contract.PlanConstraints{
			TeamSize:              c.TeamSize,
			SprintLengthWeeks:     c.SprintLengthWeeks,
			HoursPerWeekPerPerson: c.HoursPerWeekPerPerson,
			StartDate:             start,
			VelocityFactor:        c.VelocityFactor,
			BufferPct:             c.BufferPct,
		}
	}

	return tasks, edges, constraints
}

func priorityOrDefault(s string) domain.Priority {
	if domain.ValidPriorities[s] {
		return domain.Priority(s)
	}
	return domain.PriorityMedium
}

func complexityOrDefault(s string) domain.Complexity {
	if domain.ValidComplexities[s] {
		return domain.Complexity(s)
	}
	return domain.ComplexityModerate
}

func statusOrDefault(s string) domain.TaskStatus {
	switch domain.TaskStatus(s) {
	case domain.TaskInProgress, domain.TaskDone:
		return domain.TaskStatus(s)
	default:
		return domain.TaskPending
	}
}

func riskOrDefault(s string) domain.RiskLevel {
	switch domain.RiskLevel(s) {
	case domain.RiskMedium, domain.RiskHigh:
		return domain.RiskLevel(s)
	default:
		return domain.RiskLow
	}
}
