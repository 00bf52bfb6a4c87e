package contract

import (
	"fmt"
	"strings"
)

// CycleError reports that the dependency graph is not a DAG. It is fatal
// for the planning request: a cyclic graph has no valid earliest/latest
// times, so no scheduling may proceed. Each cycle is an ordered task-id
// sequence that ends on its own start node.
type CycleError struct {
	Cycles [][]string
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		parts[i] = strings.Join(c, " -> ")
	}
	return fmt.Sprintf("dependency graph contains %d cycle(s): %s", len(e.Cycles), strings.Join(parts, "; "))
}

// ConstraintError rejects malformed plan constraints at the call boundary
// before any computation runs.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("invalid constraint %s: %s", e.Field, e.Message)
}
