// Package planner turns a dependency analysis plus team-capacity
// constraints into sprints, milestones and capacity diagnostics. Like the
// cpm package it is pure and deterministic.
package planner

import (
	"sort"

	"github.com/mwhitfield/gantry/internal/cpm"
	"github.com/mwhitfield/gantry/internal/domain"
)

// AdmissionOrder sorts tasks for greedy sprint admission by the canonical
// rules:
// 1. Critical-path tasks first
// 2. Priority: critical > high > medium > low
// 3. Dependent count: descending (unblock the most work first)
// 4. Estimated hours: ascending (finish small tasks early)
// 5. Task ID: lexical ascending
func AdmissionOrder(tasks []domain.Task, g *cpm.Graph, s *cpm.Schedule) []domain.Task {
	ordered := make([]domain.Task, len(tasks))
	copy(ordered, tasks)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		critA := s.Timings[a.ID].OnCriticalPath
		critB := s.Timings[b.ID].OnCriticalPath
		if critA != critB {
			return critA
		}

		rankA, rankB := domain.PriorityRank(a.Priority), domain.PriorityRank(b.Priority)
		if rankA != rankB {
			return rankA < rankB
		}

		depsA, depsB := len(g.Nodes[a.ID].Dependents), len(g.Nodes[b.ID].Dependents)
		if depsA != depsB {
			return depsA > depsB
		}

		if a.EstimatedHours != b.EstimatedHours {
			return a.EstimatedHours < b.EstimatedHours
		}

		return a.ID < b.ID
	})

	return ordered
}
