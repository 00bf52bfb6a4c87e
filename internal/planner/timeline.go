package planner

import (
	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
)

var phaseNames = [3]string{"Foundation", "Core Development", "Polish & Release"}

// ReleaseTimeline splits the sprint range into the three fixed release
// phases, each spanning a ceil-division third of the sprints.
func ReleaseTimeline(sprints []domain.Sprint) []contract.TimelinePhase {
	if len(sprints) == 0 {
		return nil
	}

	n := len(sprints)
	boundaries := [3]int{ceilDiv(n, 3), ceilDiv(2*n, 3), n}

	var phases []contract.TimelinePhase
	start := 1
	for i, end := range boundaries {
		if end < start {
			continue
		}
		phases = append(phases, contract.TimelinePhase{
			Name:        phaseNames[i],
			StartSprint: start,
			EndSprint:   end,
			StartDate:   sprints[start-1].StartDate,
			EndDate:     sprints[end-1].EndDate,
		})
		start = end + 1
	}

	return phases
}
