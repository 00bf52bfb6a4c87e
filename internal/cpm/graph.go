// Package cpm implements the dependency-graph side of planning: graph
// construction from blocking edges, cycle detection, critical-path-method
// forward/backward passes, parallel track decomposition, and heuristic
// optimization suggestions. Everything here is pure and deterministic:
// identical inputs produce identical outputs.
package cpm

import "github.com/mwhitfield/gantry/internal/domain"

// Node carries a task's static fields plus its blocking adjacency.
// Computed times live in Schedule, keeping the graph immutable once built.
type Node struct {
	TaskID         string
	Title          string
	Description    string
	EstimatedHours float64
	Priority       domain.Priority
	Complexity     domain.Complexity
	Risk           domain.RiskLevel
	Dependencies   []string
	Dependents     []string
}

// Graph is the in-memory dependency graph over one task snapshot.
type Graph struct {
	Nodes map[string]*Node
	// Order preserves task input order for deterministic iteration.
	Order []string
	// DroppedEdges counts edges referencing unknown task IDs. Such edges
	// are discarded, not fatal.
	DroppedEdges int
}

// Build assembles the graph from a task list and a dependency edge list.
// Only blocking edges (blocks/requires) participate; advisory kinds are
// skipped. Duplicate edges collapse to one.
func Build(tasks []domain.Task, edges []domain.DependencyEdge) *Graph {
	g := &Graph{
		Nodes: make(map[string]*Node, len(tasks)),
		Order: make([]string, 0, len(tasks)),
	}
	for _, t := range tasks {
		if _, ok := g.Nodes[t.ID]; ok {
			continue
		}
		g.Nodes[t.ID] = &Node{
			TaskID:         t.ID,
			Title:          t.Title,
			Description:    t.Description,
			EstimatedHours: t.EstimatedHours,
			Priority:       t.Priority,
			Complexity:     t.Complexity,
			Risk:           t.Risk,
		}
		g.Order = append(g.Order, t.ID)
	}

	seen := make(map[[2]string]bool, len(edges))
	for _, e := range edges {
		if !e.Kind.Blocking() {
			continue
		}
		from, okFrom := g.Nodes[e.TaskID]
		to, okTo := g.Nodes[e.DependsOnID]
		if !okFrom || !okTo {
			g.DroppedEdges++
			continue
		}
		key := [2]string{e.TaskID, e.DependsOnID}
		if seen[key] {
			continue
		}
		seen[key] = true
		from.Dependencies = append(from.Dependencies, e.DependsOnID)
		to.Dependents = append(to.Dependents, e.TaskID)
	}

	return g
}
