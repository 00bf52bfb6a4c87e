package planner

import (
	"fmt"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/cpm"
	"github.com/mwhitfield/gantry/internal/domain"
)

// Confidence bounds for assignments.
const (
	confidenceMax = 1.0
	confidenceMin = 0.3
)

// AssignSprints packs the admission-ordered tasks into sprints in a
// single greedy pass. Each sprint's assigned hours stay within
// availableHours, with one exception: a task whose effort alone exceeds
// the budget is still placed (as an overflow) rather than skipped
// forever or split.
//
// A task whose dependencies are not all assigned yet is pushed to the
// sprint after its latest assigned dependency; a task whose dependencies
// are all placed may share their sprint when capacity allows.
func AssignSprints(ordered []domain.Task, g *cpm.Graph, s *cpm.Schedule, availableHours float64) []contract.Assignment {
	assignments := make([]contract.Assignment, 0, len(ordered))
	assignedSprint := make(map[string]int, len(ordered))
	sprintHours := make(map[int]float64)

	currentSprint := 1
	for _, t := range ordered {
		node := g.Nodes[t.ID]

		depsMet := true
		latestDepSprint := 0
		for _, dep := range node.Dependencies {
			sp, ok := assignedSprint[dep]
			if !ok {
				depsMet = false
				continue
			}
			if sp > latestDepSprint {
				latestDepSprint = sp
			}
		}

		reason := "packed by capacity"
		if s.Timings[t.ID].OnCriticalPath {
			reason = "critical path task"
		}

		if !depsMet {
			earliest := latestDepSprint + 1
			if earliest < currentSprint {
				earliest = currentSprint
			}
			if earliest > currentSprint {
				currentSprint = earliest
			}
			reason = fmt.Sprintf("%s; deferred to sprint %d for unassigned dependencies", reason, currentSprint)
		}

		overflow := false
		if sprintHours[currentSprint]+t.EstimatedHours > availableHours {
			if sprintHours[currentSprint] == 0 {
				// The task alone exceeds one sprint's budget. Place it
				// anyway and flag the overflow.
				overflow = true
				reason = fmt.Sprintf("%s; effort %.0fh exceeds sprint capacity %.1fh", reason, t.EstimatedHours, availableHours)
			} else {
				currentSprint++
				if sprintHours[currentSprint]+t.EstimatedHours > availableHours {
					overflow = true
					reason = fmt.Sprintf("%s; effort %.0fh exceeds sprint capacity %.1fh", reason, t.EstimatedHours, availableHours)
				}
			}
		}

		sprintHours[currentSprint] += t.EstimatedHours
		assignedSprint[t.ID] = currentSprint
		assignments = append(assignments, contract.Assignment{
			TaskID:          t.ID,
			Sprint:          currentSprint,
			Hours:           t.EstimatedHours,
			Reason:          reason,
			Confidence:      assignmentConfidence(t.Complexity, len(node.Dependencies)),
			DependenciesMet: depsMet,
			Overflow:        overflow,
		})
	}

	return assignments
}

// assignmentConfidence derives a placement confidence from complexity and
// dependency count, clamped to [0.3, 1.0].
func assignmentConfidence(complexity domain.Complexity, depCount int) float64 {
	c := confidenceMax
	switch complexity {
	case domain.ComplexitySimple:
		c -= 0.05
	case domain.ComplexityModerate:
		c -= 0.1
	case domain.ComplexityComplex:
		c -= 0.2
	case domain.ComplexityEpic:
		c -= 0.35
	}
	c -= 0.05 * float64(depCount)
	if c < confidenceMin {
		return confidenceMin
	}
	return c
}
