package cpm

import (
	"math"
	"sort"
)

// HoursPerDay converts working hours to working days for duration figures.
const HoursPerDay = 8.0

// slackEpsilon absorbs float64 rounding when testing slack == 0.
const slackEpsilon = 1e-9

// Timing holds the computed CPM fields for one task, in hours from
// project start.
type Timing struct {
	EarliestStart  float64
	EarliestFinish float64
	LatestStart    float64
	LatestFinish   float64
	Slack          float64
	OnCriticalPath bool
}

// Schedule is the CPM side table for one graph: computed times keyed by
// task ID, leaving the graph itself untouched.
type Schedule struct {
	Timings map[string]Timing
	// TopoOrder is the Kahn order the passes ran in.
	TopoOrder []string
	// ProjectFinish is the maximum earliest finish over all tasks.
	ProjectFinish float64
}

// ComputeSchedule runs the forward and backward CPM passes over the DAG.
// Forward: earliest_start = max over dependencies of earliest_finish
// (zero-dependency tasks start at 0); earliest_finish = earliest_start +
// estimated hours. Backward, in reverse topological order: latest_finish =
// min over dependents of latest_start (project finish for sinks);
// latest_start = latest_finish - estimated hours. Slack is latest_start -
// earliest_start; a task is on the critical path iff its slack is zero.
func ComputeSchedule(g *Graph) (*Schedule, error) {
	order, err := TopologicalOrder(g)
	if err != nil {
		return nil, err
	}

	timings := make(map[string]Timing, len(order))

	var projectFinish float64
	for _, id := range order {
		n := g.Nodes[id]
		var start float64
		for _, dep := range n.Dependencies {
			if f := timings[dep].EarliestFinish; f > start {
				start = f
			}
		}
		finish := start + n.EstimatedHours
		timings[id] = Timing{EarliestStart: start, EarliestFinish: finish}
		if finish > projectFinish {
			projectFinish = finish
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		n := g.Nodes[id]
		finish := projectFinish
		for _, dep := range n.Dependents {
			if s := timings[dep].LatestStart; s < finish {
				finish = s
			}
		}
		t := timings[id]
		t.LatestFinish = finish
		t.LatestStart = finish - n.EstimatedHours
		t.Slack = t.LatestStart - t.EarliestStart
		t.OnCriticalPath = math.Abs(t.Slack) < slackEpsilon
		timings[id] = t
	}

	return &Schedule{
		Timings:       timings,
		TopoOrder:     order,
		ProjectFinish: projectFinish,
	}, nil
}

// CriticalPath is the ordered zero-slack chain plus its annotations.
type CriticalPath struct {
	TaskIDs       []string
	DurationHours float64
	DurationDays  float64
	Bottlenecks   []Bottleneck
	RiskFactors   []RiskFactor
}

// ExtractCriticalPath collects the zero-slack tasks ordered by earliest
// start (ties broken by ID) and annotates them with bottlenecks and
// project-level risk factors.
func ExtractCriticalPath(g *Graph, s *Schedule, classifier Classifier) CriticalPath {
	var ids []string
	for _, id := range g.Order {
		if s.Timings[id].OnCriticalPath {
			ids = append(ids, id)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := s.Timings[ids[i]], s.Timings[ids[j]]
		if a.EarliestStart != b.EarliestStart {
			return a.EarliestStart < b.EarliestStart
		}
		return ids[i] < ids[j]
	})

	cp := CriticalPath{
		TaskIDs:       ids,
		DurationHours: s.ProjectFinish,
		DurationDays:  s.ProjectFinish / HoursPerDay,
	}
	cp.Bottlenecks = detectBottlenecks(g, ids)
	cp.RiskFactors = synthesizeRiskFactors(g, ids, classifier)
	return cp
}
