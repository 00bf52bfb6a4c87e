package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/gantry/internal/domain"
)

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSnapshot_JSON(t *testing.T) {
	path := writeSnapshot(t, "plan.json", `{
		"tasks": [
			{"id": "t1", "title": "Design schema", "estimated_hours": 8},
			{"id": "t2", "title": "Build API", "estimated_hours": 24, "depends_on": ["t1"]}
		],
		"dependencies": [
			{"task_id": "t2", "depends_on_id": "t1", "kind": "blocks", "strength": 0.9}
		],
		"constraints": {
			"team_size": 3,
			"sprint_length_weeks": 2,
			"hours_per_week_per_person": 40,
			"start_date": "2026-03-02"
		}
	}`)

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)

	require.Len(t, snap.Tasks, 2)
	assert.Equal(t, "Design schema", snap.Tasks[0].Title)
	assert.Equal(t, []string{"t1"}, snap.Tasks[1].DependsOn)
	require.Len(t, snap.Dependencies, 1)
	assert.InDelta(t, 0.9, snap.Dependencies[0].Strength, 1e-9)
	require.NotNil(t, snap.Constraints)
	assert.Equal(t, 3, snap.Constraints.TeamSize)
}

func TestLoadSnapshot_YAML(t *testing.T) {
	path := writeSnapshot(t, "plan.yaml", `
tasks:
  - id: t1
    title: Design schema
    estimated_hours: 8
    priority: high
  - id: t2
    title: Build API
    estimated_hours: 24
    depends_on: [t1]
constraints:
  team_size: 2
  sprint_length_weeks: 1
  hours_per_week_per_person: 35
  start_date: "2026-03-02"
`)

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)

	require.Len(t, snap.Tasks, 2)
	assert.Equal(t, "high", snap.Tasks[0].Priority)
	require.NotNil(t, snap.Constraints)
	assert.InDelta(t, 35.0, snap.Constraints.HoursPerWeekPerPerson, 1e-9)
}

func TestLoadSnapshot_MalformedJSON(t *testing.T) {
	path := writeSnapshot(t, "broken.json", `{"tasks": [`)

	_, err := LoadSnapshot(path)
	assert.Error(t, err)
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidateSnapshot_CollectsAllErrors(t *testing.T) {
	snap := &Snapshot{
		Tasks: []TaskImport{
			{ID: "t1", Title: "", EstimatedHours: 0},
			{ID: "t1", Title: "Dup", EstimatedHours: 8, Priority: "urgent"},
		},
		Dependencies: []DependencyImport{
			{TaskID: "", DependsOnID: "t1"},
			{TaskID: "t1", DependsOnID: "t1", Kind: "wants", Strength: 2},
		},
		Constraints: &ConstraintsImport{TeamSize: 0, SprintLengthWeeks: 2, HoursPerWeekPerPerson: 40, StartDate: "03/02/2026"},
	}

	errs, _ := ValidateSnapshot(snap)

	require.NotEmpty(t, errs)
	joined := ""
	for _, e := range errs {
		joined += e.Error() + "\n"
	}
	assert.Contains(t, joined, "title is required")
	assert.Contains(t, joined, "estimated_hours must be positive")
	assert.Contains(t, joined, `duplicate task id "t1"`)
	assert.Contains(t, joined, `invalid priority "urgent"`)
	assert.Contains(t, joined, "task_id and depends_on_id are required")
	assert.Contains(t, joined, `invalid kind "wants"`)
	assert.Contains(t, joined, "strength must be within [0, 1]")
	assert.Contains(t, joined, "team_size must be positive")
	assert.Contains(t, joined, "start_date: invalid date")
}

func TestValidateSnapshot_UnknownEdgeRefsAreWarnings(t *testing.T) {
	snap := &Snapshot{
		Tasks: []TaskImport{{ID: "t1", Title: "Only task", EstimatedHours: 8}},
		Dependencies: []DependencyImport{
			{TaskID: "t1", DependsOnID: "ghost"},
		},
	}

	errs, warnings := ValidateSnapshot(snap)

	assert.Empty(t, errs)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `unknown depends_on_id "ghost"`)
}

func TestValidateSnapshot_EmptySnapshot(t *testing.T) {
	errs, _ := ValidateSnapshot(&Snapshot{})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no tasks")
}

func TestConvertSnapshot_DefaultsAndGeneratedIDs(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Tasks: []TaskImport{
			{Title: "No id task", EstimatedHours: 8},
			{ID: "t2", Title: "Explicit", EstimatedHours: 4, Priority: "high", Complexity: "complex", Status: "in_progress", RiskLevel: "high"},
		},
	}

	tasks, edges, constraints := ConvertSnapshot(snap, now)

	require.Len(t, tasks, 2)
	assert.NotEmpty(t, tasks[0].ID, "missing ids are generated")
	assert.Equal(t, domain.PriorityMedium, tasks[0].Priority)
	assert.Equal(t, domain.ComplexityModerate, tasks[0].Complexity)
	assert.Equal(t, domain.TaskPending, tasks[0].Status)
	assert.Equal(t, domain.RiskLow, tasks[0].Risk)
	assert.Equal(t, now, tasks[0].CreatedAt)

	assert.Equal(t, domain.PriorityHigh, tasks[1].Priority)
	assert.Equal(t, domain.ComplexityComplex, tasks[1].Complexity)
	assert.Equal(t, domain.TaskInProgress, tasks[1].Status)
	assert.Equal(t, domain.RiskHigh, tasks[1].Risk)

	assert.Empty(t, edges)
	assert.Nil(t, constraints)
}

func TestConvertSnapshot_DependsOnBecomesBlockingEdges(t *testing.T) {
	snap := &Snapshot{
		Tasks: []TaskImport{
			{ID: "t1", Title: "Base", EstimatedHours: 8},
			{ID: "t2", Title: "On top", EstimatedHours: 8, DependsOn: []string{"t1"}},
		},
		Dependencies: []DependencyImport{
			{TaskID: "t2", DependsOnID: "t1", Kind: "suggests", Strength: 0.5, Reason: "same area"},
		},
	}

	_, edges, _ := ConvertSnapshot(snap, time.Now())

	require.Len(t, edges, 2)
	assert.Equal(t, domain.RelationBlocks, edges[0].Kind)
	assert.Equal(t, "t2", edges[0].TaskID)
	assert.Equal(t, "t1", edges[0].DependsOnID)
	assert.Equal(t, domain.RelationSuggests, edges[1].Kind)
	assert.Equal(t, "same area", edges[1].Reason)
}

func TestConvertSnapshot_Constraints(t *testing.T) {
	snap := &Snapshot{
		Tasks: []TaskImport{{ID: "t1", Title: "Task", EstimatedHours: 8}},
		Constraints: &ConstraintsImport{
			TeamSize:              3,
			SprintLengthWeeks:     2,
			HoursPerWeekPerPerson: 40,
			StartDate:             "2026-03-02",
			VelocityFactor:        0.9,
		},
	}

	_, _, constraints := ConvertSnapshot(snap, time.Now())

	require.NotNil(t, constraints)
	assert.Equal(t, 3, constraints.TeamSize)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), constraints.StartDate)
	assert.InDelta(t, 0.9, constraints.Velocity(), 1e-9)
	assert.InDelta(t, 0.15, constraints.Buffer(), 1e-9, "unset buffer falls back to the default")
}
