package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
)

func testConstraints() contract.PlanConstraints {
	return contract.PlanConstraints{
		TeamSize:              2,
		SprintLengthWeeks:     2,
		HoursPerWeekPerPerson: 40,
		StartDate:             time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestMaterializeSprints_ContiguousNumbersAndDates(t *testing.T) {
	assignments := []contract.Assignment{
		{TaskID: "a", Sprint: 1, Hours: 20},
		{TaskID: "b", Sprint: 3, Hours: 10},
	}

	sprints := MaterializeSprints(assignments, testConstraints())

	require.Len(t, sprints, 3, "sprint 2 is materialized even though it is empty")
	for i, sp := range sprints {
		assert.Equal(t, i+1, sp.Number)
		assert.Equal(t, domain.SprintPlanned, sp.Status)
	}

	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), sprints[0].StartDate)
	assert.Equal(t, time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC), sprints[0].EndDate)
	assert.Equal(t, time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC), sprints[1].StartDate, "sprints abut with no gap")
	assert.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), sprints[2].StartDate)
}

func TestMaterializeSprints_CapacityAndVelocitySnapshot(t *testing.T) {
	c := testConstraints()
	assignments := []contract.Assignment{
		{TaskID: "a", Sprint: 1, Hours: 20},
		{TaskID: "b", Sprint: 1, Hours: 15},
	}

	sprints := MaterializeSprints(assignments, c)

	require.Len(t, sprints, 1)
	sp := sprints[0]
	assert.InDelta(t, 160.0, sp.Capacity.TotalHours, 1e-9)
	assert.InDelta(t, 108.8, sp.Capacity.AvailableHours, 1e-9)
	assert.Equal(t, 2, sp.Capacity.TeamSize)
	assert.Equal(t, []string{"a", "b"}, sp.TaskIDs)
	assert.InDelta(t, 35.0, sp.Velocity.PlannedHours, 1e-9)
	assert.Equal(t, 2, sp.Velocity.PlannedTasks)
}

func TestMaterializeSprints_RiskAnnotations(t *testing.T) {
	assignments := []contract.Assignment{
		{TaskID: "big", Sprint: 1, Hours: 200, Overflow: true},
		{TaskID: "orphan", Sprint: 2, Hours: 90, DependenciesMet: false},
		{TaskID: "ok", Sprint: 3, Hours: 10, DependenciesMet: true},
	}

	sprints := MaterializeSprints(assignments, testConstraints())

	require.Len(t, sprints, 3)
	assert.True(t, sprints[0].Overflow)
	require.NotEmpty(t, sprints[0].Risks)
	assert.Contains(t, sprints[0].Risks[0], "exceeding")

	joined := ""
	for _, r := range sprints[1].Risks {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "before all their dependencies")
	assert.Contains(t, joined, "high workload")

	assert.Empty(t, sprints[2].Risks)
}

func TestMaterializeSprints_GoalsByPosition(t *testing.T) {
	assignments := []contract.Assignment{
		{TaskID: "a", Sprint: 1, Hours: 8},
		{TaskID: "b", Sprint: 2, Hours: 8},
		{TaskID: "c", Sprint: 3, Hours: 8},
		{TaskID: "d", Sprint: 4, Hours: 8},
	}

	sprints := MaterializeSprints(assignments, testConstraints())

	require.Len(t, sprints, 4)
	assert.Contains(t, sprints[0].Goals[0], "foundations")
	assert.Contains(t, sprints[1].Goals[0], "core features")
	assert.Contains(t, sprints[2].Goals[0], "release")
	assert.Contains(t, sprints[3].Goals[0], "release")
}

func TestMaterializeSprints_NoAssignments(t *testing.T) {
	assert.Nil(t, MaterializeSprints(nil, testConstraints()))
}

func TestGenerateMilestones_ThreeCheckpointsAtThirds(t *testing.T) {
	assignments := make([]contract.Assignment, 7)
	for i := range assignments {
		assignments[i] = contract.Assignment{TaskID: string(rune('a' + i)), Sprint: i + 1, Hours: 8}
	}
	sprints := MaterializeSprints(assignments, testConstraints())
	require.Len(t, sprints, 7)

	milestones := GenerateMilestones(sprints, nil)

	require.Len(t, milestones, 3)
	assert.Equal(t, "Foundation Complete", milestones[0].Name)
	assert.Equal(t, sprints[2].EndDate, milestones[0].TargetDate, "ceil(7/3) = sprint 3")
	assert.Equal(t, []int{1, 2, 3}, milestones[0].DependentSprints)

	assert.Equal(t, "Core Features Complete", milestones[1].Name)
	assert.Equal(t, sprints[4].EndDate, milestones[1].TargetDate, "ceil(14/3) = sprint 5")

	assert.Equal(t, "Release Ready", milestones[2].Name)
	assert.Equal(t, domain.PriorityCritical, milestones[2].Priority)
	assert.Equal(t, sprints[6].EndDate, milestones[2].TargetDate)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, milestones[2].DependentSprints)
}

func TestGenerateMilestones_SuppliedTemplatesDefaulted(t *testing.T) {
	assignments := []contract.Assignment{
		{TaskID: "a", Sprint: 1, Hours: 8},
		{TaskID: "b", Sprint: 2, Hours: 8},
	}
	sprints := MaterializeSprints(assignments, testConstraints())

	milestones := GenerateMilestones(sprints, []domain.Milestone{
		{Name: "Beta Demo"},
	})

	require.Len(t, milestones, 4)
	beta := milestones[3]
	assert.Equal(t, "Beta Demo", beta.Name)
	assert.Equal(t, sprints[1].EndDate, beta.TargetDate)
	assert.Equal(t, domain.PriorityMedium, beta.Priority)
	assert.Equal(t, []int{2}, beta.DependentSprints)
}

func TestGenerateMilestones_NoSprints(t *testing.T) {
	assert.Nil(t, GenerateMilestones(nil, []domain.Milestone{{Name: "Beta"}}))
}

func TestReleaseTimeline_ThreePhases(t *testing.T) {
	assignments := make([]contract.Assignment, 6)
	for i := range assignments {
		assignments[i] = contract.Assignment{TaskID: string(rune('a' + i)), Sprint: i + 1, Hours: 8}
	}
	sprints := MaterializeSprints(assignments, testConstraints())

	phases := ReleaseTimeline(sprints)

	require.Len(t, phases, 3)
	assert.Equal(t, "Foundation", phases[0].Name)
	assert.Equal(t, 1, phases[0].StartSprint)
	assert.Equal(t, 2, phases[0].EndSprint)
	assert.Equal(t, "Core Development", phases[1].Name)
	assert.Equal(t, 3, phases[1].StartSprint)
	assert.Equal(t, 4, phases[1].EndSprint)
	assert.Equal(t, "Polish & Release", phases[2].Name)
	assert.Equal(t, 5, phases[2].StartSprint)
	assert.Equal(t, 6, phases[2].EndSprint)

	assert.Equal(t, sprints[0].StartDate, phases[0].StartDate)
	assert.Equal(t, sprints[5].EndDate, phases[2].EndDate)
}

func TestReleaseTimeline_SingleSprintCollapsesToOnePhase(t *testing.T) {
	sprints := MaterializeSprints([]contract.Assignment{{TaskID: "a", Sprint: 1, Hours: 8}}, testConstraints())

	phases := ReleaseTimeline(sprints)

	require.Len(t, phases, 1)
	assert.Equal(t, "Foundation", phases[0].Name)
	assert.Equal(t, 1, phases[0].StartSprint)
	assert.Equal(t, 1, phases[0].EndSprint)
}
