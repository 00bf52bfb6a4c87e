package planner

import "github.com/mwhitfield/gantry/internal/domain"

// milestoneTemplate fixes the name/priority pairs for the three generated
// checkpoints.
var milestoneTemplates = []struct {
	name        string
	description string
	priority    domain.Priority
}{
	{"Foundation Complete", "Core infrastructure and groundwork delivered", domain.PriorityMedium},
	{"Core Features Complete", "Primary functionality implemented end to end", domain.PriorityHigh},
	{"Release Ready", "All planned work finished and release-quality", domain.PriorityCritical},
}

// GenerateMilestones derives exactly three milestones by slicing the
// sprint sequence into ceil-division thirds, then appends caller-supplied
// templates with unset fields defaulted from the sprints.
func GenerateMilestones(sprints []domain.Sprint, supplied []domain.Milestone) []domain.Milestone {
	if len(sprints) == 0 {
		return nil
	}

	n := len(sprints)
	boundaries := []int{ceilDiv(n, 3), ceilDiv(2*n, 3), n}

	out := make([]domain.Milestone, 0, len(boundaries)+len(supplied))
	for i, b := range boundaries {
		deps := make([]int, b)
		for s := 1; s <= b; s++ {
			deps[s-1] = s
		}
		out = append(out, domain.Milestone{
			Name:             milestoneTemplates[i].name,
			Description:      milestoneTemplates[i].description,
			TargetDate:       sprints[b-1].EndDate,
			DependentSprints: deps,
			Priority:         milestoneTemplates[i].priority,
		})
	}

	last := sprints[n-1]
	for _, m := range supplied {
		if m.TargetDate.IsZero() {
			m.TargetDate = last.EndDate
		}
		if m.Priority == "" {
			m.Priority = domain.PriorityMedium
		}
		if len(m.DependentSprints) == 0 {
			m.DependentSprints = []int{last.Number}
		}
		out = append(out, m)
	}

	return out
}
