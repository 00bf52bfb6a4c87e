package planner

import (
	"fmt"
	"sort"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
)

// highWorkloadHours flags a sprint whose planned hours pass this bar.
const highWorkloadHours = 80.0

// MaterializeSprints turns assignments into contiguous sprints 1..max
// with calendar dates, capacity snapshots, positional goals and per-sprint
// risk annotations.
func MaterializeSprints(assignments []contract.Assignment, c contract.PlanConstraints) []domain.Sprint {
	maxSprint := 0
	for _, a := range assignments {
		if a.Sprint > maxSprint {
			maxSprint = a.Sprint
		}
	}
	if maxSprint == 0 {
		return nil
	}

	byNumber := make(map[int][]contract.Assignment, maxSprint)
	for _, a := range assignments {
		byNumber[a.Sprint] = append(byNumber[a.Sprint], a)
	}

	sprints := make([]domain.Sprint, 0, maxSprint)
	for n := 1; n <= maxSprint; n++ {
		members := byNumber[n]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].TaskID < members[j].TaskID
		})

		start := c.StartDate.AddDate(0, 0, (n-1)*c.SprintLengthWeeks*7)
		end := start.AddDate(0, 0, c.SprintLengthWeeks*7-1)

		sp := domain.Sprint{
			Number:    n,
			StartDate: start,
			EndDate:   end,
			Status:    domain.SprintPlanned,
			Capacity: domain.SprintCapacity{
				TotalHours:     c.SprintTotalHours(),
				AvailableHours: c.SprintAvailableHours(),
				TeamSize:       c.TeamSize,
			},
			Goals: sprintGoals(n, maxSprint),
		}

		var unresolved int
		for _, a := range members {
			sp.TaskIDs = append(sp.TaskIDs, a.TaskID)
			sp.Velocity.PlannedHours += a.Hours
			sp.Velocity.PlannedTasks++
			if a.Overflow {
				sp.Overflow = true
			}
			if !a.DependenciesMet {
				unresolved++
			}
		}

		if sp.Overflow {
			sp.Risks = append(sp.Risks, fmt.Sprintf("contains work exceeding the %.1fh sprint budget", sp.Capacity.AvailableHours))
		}
		if unresolved > 0 {
			sp.Risks = append(sp.Risks, fmt.Sprintf("%d tasks were placed before all their dependencies", unresolved))
		}
		if sp.Velocity.PlannedHours > highWorkloadHours {
			sp.Risks = append(sp.Risks, "high workload")
		}

		sprints = append(sprints, sp)
	}

	return sprints
}

// sprintGoals keys the goal text to the sprint's position in the plan:
// the first sprint lays foundations, the last third wraps up, everything
// between builds core features.
func sprintGoals(n, total int) []string {
	switch {
	case n == 1:
		return []string{"Establish project foundations and unblock dependent work"}
	case n > total-ceilDiv(total, 3):
		return []string{"Stabilize, polish and prepare the release"}
	default:
		return []string{"Deliver core features on the critical path"}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
