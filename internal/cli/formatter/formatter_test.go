package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/cpm"
	"github.com/mwhitfield/gantry/internal/domain"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestFormatAnalysis(t *testing.T) {
	a := &contract.DependencyAnalysis{
		Nodes: []contract.NodeSchedule{
			{TaskID: "t1", Title: "Design schema", EstimatedHours: 8, EarliestFinish: 8, OnCriticalPath: true},
			{TaskID: "t2", Title: "Build API", EstimatedHours: 24, EarliestStart: 8, EarliestFinish: 32, OnCriticalPath: true},
		},
		CriticalPath: cpm.CriticalPath{
			TaskIDs:       []string{"t1", "t2"},
			DurationHours: 32,
			DurationDays:  4,
			Bottlenecks:   []cpm.Bottleneck{{TaskID: "t2", Reason: "complex complexity on the critical path", ImpactHours: 7.2}},
			RiskFactors:   []cpm.RiskFactor{{Description: "1 complex or epic tasks may exceed their estimates", Probability: 0.4, ImpactHours: 7.2}},
		},
		Tracks: []cpm.Track{
			{Number: 1, Description: "Critical path", TaskIDs: []string{"t1", "t2"}, DurationHours: 32},
			{Number: 2, Description: "Parallel track 2", TaskIDs: []string{"t3"}, DurationHours: 4},
		},
		Suggestions: []cpm.Suggestion{
			{Kind: cpm.SuggestSplit, TaskIDs: []string{"t2"}, Description: `Split "Build API" (24h) into smaller tasks that can overlap`, ExpectedSavingHours: 7.2},
		},
		ProjectFinishHours: 32,
		DroppedEdges:       1,
	}

	out := FormatAnalysis(a)

	assert.Contains(t, out, "SCHEDULE")
	assert.Contains(t, out, "Design schema")
	assert.Contains(t, out, "t1 → t2")
	assert.Contains(t, out, "PARALLEL TRACKS")
	assert.Contains(t, out, "SUGGESTIONS")
	assert.Contains(t, out, "1 dependency edges referenced unknown tasks")
}

func TestFormatCycleError(t *testing.T) {
	out := FormatCycleError(&contract.CycleError{Cycles: [][]string{{"t1", "t2", "t1"}}})

	assert.Contains(t, out, "Dependency cycles detected")
	assert.Contains(t, out, "t1 → t2 → t1")
}

func TestFormatSprintPlan(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	p := &contract.SprintPlan{
		Sprints: []domain.Sprint{
			{
				Number:    1,
				StartDate: start,
				EndDate:   start.AddDate(0, 0, 13),
				Status:    domain.SprintPlanned,
				Capacity:  domain.SprintCapacity{TotalHours: 160, AvailableHours: 108.8, TeamSize: 2},
				Velocity:  domain.Velocity{PlannedHours: 200, PlannedTasks: 1},
				Overflow:  true,
				Risks:     []string{"contains work exceeding the 108.8h sprint budget"},
			},
		},
		Milestones: []domain.Milestone{
			{Name: "Release Ready", TargetDate: start.AddDate(0, 0, 13), Priority: domain.PriorityCritical, DependentSprints: []int{1}},
		},
		Timeline: []contract.TimelinePhase{
			{Name: "Foundation", StartSprint: 1, EndSprint: 1, StartDate: start, EndDate: start.AddDate(0, 0, 13)},
		},
		Capacity: contract.CapacityAnalysis{
			SprintCount: 1, TotalHours: 160, PlannedHours: 200, BufferHours: -40,
			UtilizationPct: 125, OverallocationRisk: domain.RiskHigh,
		},
		Recommendations: []contract.Recommendation{
			{Category: contract.RecommendCapacity, Priority: domain.PriorityHigh, Message: "Utilization is 125%; reduce scope or add buffer before committing"},
		},
	}

	out := FormatSprintPlan(p)

	assert.Contains(t, out, "SPRINTS")
	assert.Contains(t, out, "2026-03-02")
	assert.Contains(t, out, "overflow")
	assert.Contains(t, out, "Release Ready")
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "utilization")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "reduce scope")
}

func TestFormatAssignments(t *testing.T) {
	assignments := []contract.Assignment{
		{TaskID: "t1", Sprint: 1, Hours: 8, Reason: "critical path task", Confidence: 0.9, DependenciesMet: true},
		{TaskID: "t2", Sprint: 2, Hours: 200, Reason: "packed by capacity", Confidence: 0.5, Overflow: true},
	}
	tasks := map[string]domain.Task{
		"t1": {ID: "t1", Title: "Design schema"},
	}

	out := FormatAssignments(assignments, tasks)

	assert.Contains(t, out, "ASSIGNMENTS")
	assert.Contains(t, out, "Design schema")
	assert.Contains(t, out, "t2", "falls back to the task id when no title is known")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Title"},
		[][]string{{"a", "short"}, {"bb", "a much longer title"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 3, "header plus two rows")
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "a much longer title")
}
