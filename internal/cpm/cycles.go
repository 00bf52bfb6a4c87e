package cpm

// CycleReport is the result of validating the graph is a DAG.
// Each cycle is an ordered task-id sequence whose last element repeats
// the first, e.g. [T1, T2, T1].
type CycleReport struct {
	HasCycles bool
	Cycles    [][]string
}

// DetectCycles runs a depth-first traversal from every unvisited node,
// maintaining a recursion stack. Revisiting a node already on the stack
// yields the contained cycle: the sub-sequence of the current path from
// the repeated node onward.
func DetectCycles(g *Graph) CycleReport {
	visited := make(map[string]bool, len(g.Nodes))
	onStack := make(map[string]bool, len(g.Nodes))
	var path []string
	var report CycleReport

	var visit func(id string)
	visit = func(id string) {
		visited[id] = true
		onStack[id] = true
		path = append(path, id)

		for _, dep := range g.Nodes[id].Dependencies {
			if onStack[dep] {
				report.HasCycles = true
				report.Cycles = append(report.Cycles, extractCycle(path, dep))
				continue
			}
			if !visited[dep] {
				visit(dep)
			}
		}

		path = path[:len(path)-1]
		onStack[id] = false
	}

	for _, id := range g.Order {
		if !visited[id] {
			visit(id)
		}
	}

	return report
}

func extractCycle(path []string, start string) []string {
	for i, id := range path {
		if id == start {
			cycle := make([]string, 0, len(path)-i+1)
			cycle = append(cycle, path[i:]...)
			return append(cycle, start)
		}
	}
	// start is always on the path when the caller saw it on the stack
	return []string{start, start}
}
