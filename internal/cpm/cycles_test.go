package cpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/gantry/internal/domain"
)

// sameRotation reports whether got is the want cycle starting at any node.
// Cycles carry the first node again at the end, so [a b a] matches [b a b].
func sameRotation(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	ring := got[:len(got)-1]
	n := len(ring)
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if ring[(i+shift)%n] != want[i] {
				match = false
				break
			}
		}
		if match && want[n] == want[0] {
			return true
		}
	}
	return false
}

func TestDetectCycles_AcyclicGraph(t *testing.T) {
	g := Build(
		[]domain.Task{task("a", 4), task("b", 8), task("c", 2)},
		[]domain.DependencyEdge{edge("b", "a"), edge("c", "b")},
	)

	report := DetectCycles(g)

	assert.False(t, report.HasCycles)
	assert.Empty(t, report.Cycles)
}

func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	g := Build(
		[]domain.Task{task("t1", 8), task("t2", 8)},
		[]domain.DependencyEdge{edge("t1", "t2"), edge("t2", "t1")},
	)

	report := DetectCycles(g)

	require.True(t, report.HasCycles)
	require.Len(t, report.Cycles, 1)
	assert.True(t, sameRotation(report.Cycles[0], []string{"t1", "t2", "t1"}),
		"expected a rotation of t1 -> t2 -> t1, got %v", report.Cycles[0])
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	g := Build(
		[]domain.Task{task("t1", 8)},
		[]domain.DependencyEdge{edge("t1", "t1")},
	)

	report := DetectCycles(g)

	require.True(t, report.HasCycles)
	require.Len(t, report.Cycles, 1)
	assert.Equal(t, []string{"t1", "t1"}, report.Cycles[0])
}

func TestDetectCycles_CycleBesideAcyclicTail(t *testing.T) {
	g := Build(
		[]domain.Task{task("a", 4), task("b", 4), task("c", 4), task("d", 4)},
		[]domain.DependencyEdge{
			edge("b", "a"),
			edge("a", "b"),
			edge("d", "c"),
		},
	)

	report := DetectCycles(g)

	require.True(t, report.HasCycles)
	require.Len(t, report.Cycles, 1)
	assert.True(t, sameRotation(report.Cycles[0], []string{"a", "b", "a"}),
		"got %v", report.Cycles[0])
}

func TestTopologicalOrder_RespectsDependencies(t *testing.T) {
	g := Build(
		[]domain.Task{task("c", 2), task("a", 4), task("b", 8)},
		[]domain.DependencyEdge{edge("b", "a"), edge("c", "b")},
	)

	order, err := TopologicalOrder(g)
	require.NoError(t, err)
	require.Len(t, order, 3)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos["a"], pos["b"])
	assert.Less(t, pos["b"], pos["c"])
}

func TestTopologicalOrder_DeterministicForIndependentTasks(t *testing.T) {
	tasks := []domain.Task{task("z", 1), task("m", 1), task("a", 1)}

	first, err := TopologicalOrder(Build(tasks, nil))
	require.NoError(t, err)
	second, err := TopologicalOrder(Build(tasks, nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "m", "a"}, first, "independent tasks keep input order")
	assert.Equal(t, first, second)
}

func TestTopologicalOrder_FailsOnCycle(t *testing.T) {
	g := Build(
		[]domain.Task{task("t1", 8), task("t2", 8)},
		[]domain.DependencyEdge{edge("t1", "t2"), edge("t2", "t1")},
	)

	_, err := TopologicalOrder(g)
	assert.Error(t, err)
}
