package cpm

import "fmt"

// TopologicalOrder returns the graph's task IDs in dependency order using
// Kahn's algorithm: every task appears after all of its dependencies.
// The queue is seeded and drained in input order, so the result is
// deterministic. Returns an error if the graph contains a cycle.
func TopologicalOrder(g *Graph) ([]string, error) {
	inDegree := make(map[string]int, len(g.Nodes))
	for _, id := range g.Order {
		inDegree[id] = len(g.Nodes[id].Dependencies)
	}

	var queue []string
	for _, id := range g.Order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(g.Nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, dep := range g.Nodes[id].Dependents {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != len(g.Nodes) {
		return nil, fmt.Errorf("cycle detected: ordered %d of %d tasks", len(order), len(g.Nodes))
	}
	return order, nil
}
