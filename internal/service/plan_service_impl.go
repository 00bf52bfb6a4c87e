package service

import (
	"context"
	"time"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/cpm"
	"github.com/mwhitfield/gantry/internal/domain"
	"github.com/mwhitfield/gantry/internal/planner"
)

type planService struct {
	classifier cpm.Classifier
	observer   PlanObserver
}

// NewPlanService builds the engine with the default keyword classifier.
func NewPlanService(observer PlanObserver) PlanService {
	return NewPlanServiceWithClassifier(cpm.KeywordClassifier{}, observer)
}

// NewPlanServiceWithClassifier allows alternative signal sources (tags,
// structured metadata) to replace title keyword matching.
func NewPlanServiceWithClassifier(classifier cpm.Classifier, observer PlanObserver) PlanService {
	if observer == nil {
		observer = NoopPlanObserver{}
	}
	return &planService{classifier: classifier, observer: observer}
}

func (s *planService) AnalyzeDependencies(ctx context.Context, tasks []domain.Task, edges []domain.DependencyEdge) (*contract.DependencyAnalysis, error) {
	started := time.Now()
	analysis, _, _, err := s.analyze(tasks, edges)

	fields := map[string]any{"task_count": len(tasks), "edge_count": len(edges)}
	if analysis != nil {
		fields["dropped_edges"] = analysis.DroppedEdges
		fields["critical_path_len"] = len(analysis.CriticalPath.TaskIDs)
	}
	s.observer.ObservePlan(ctx, PlanEvent{
		Name:      "analyze_dependencies",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	return analysis, err
}

func (s *planService) analyze(tasks []domain.Task, edges []domain.DependencyEdge) (*contract.DependencyAnalysis, *cpm.Graph, *cpm.Schedule, error) {
	g := cpm.Build(tasks, edges)

	if report := cpm.DetectCycles(g); report.HasCycles {
		return nil, nil, nil, &contract.CycleError{Cycles: report.Cycles}
	}

	schedule, err := cpm.ComputeSchedule(g)
	if err != nil {
		return nil, nil, nil, err
	}

	criticalPath := cpm.ExtractCriticalPath(g, schedule, s.classifier)
	tracks := cpm.IdentifyTracks(g, schedule, criticalPath)
	suggestions := cpm.SuggestOptimizations(g, criticalPath, s.classifier)

	nodes := make([]contract.NodeSchedule, 0, len(schedule.TopoOrder))
	for _, id := range schedule.TopoOrder {
		n := g.Nodes[id]
		t := schedule.Timings[id]
		nodes = append(nodes, contract.NodeSchedule{
			TaskID:         n.TaskID,
			Title:          n.Title,
			EstimatedHours: n.EstimatedHours,
			Priority:       n.Priority,
			Complexity:     n.Complexity,
			Risk:           n.Risk,
			Dependencies:   append([]string(nil), n.Dependencies...),
			Dependents:     append([]string(nil), n.Dependents...),
			EarliestStart:  t.EarliestStart,
			EarliestFinish: t.EarliestFinish,
			LatestStart:    t.LatestStart,
			LatestFinish:   t.LatestFinish,
			Slack:          t.Slack,
			OnCriticalPath: t.OnCriticalPath,
		})
	}

	analysis := &contract.DependencyAnalysis{
		Nodes:              nodes,
		CriticalPath:       criticalPath,
		Tracks:             tracks,
		Suggestions:        suggestions,
		ProjectFinishHours: schedule.ProjectFinish,
		DroppedEdges:       g.DroppedEdges,
	}
	return analysis, g, schedule, nil
}

func (s *planService) GenerateSprintPlan(ctx context.Context, req contract.PlanRequest) (*contract.SprintPlan, error) {
	started := time.Now()
	plan, err := s.generate(req)

	fields := map[string]any{"task_count": len(req.Tasks)}
	if plan != nil {
		fields["sprint_count"] = len(plan.Sprints)
		fields["overflow_sprints"] = countOverflow(plan.Sprints)
		fields["utilization_pct"] = plan.Capacity.UtilizationPct
	}
	s.observer.ObservePlan(ctx, PlanEvent{
		Name:      "generate_sprint_plan",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	return plan, err
}

func (s *planService) generate(req contract.PlanRequest) (*contract.SprintPlan, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}

	analysis, g, schedule, err := s.analyze(req.Tasks, req.Edges)
	if err != nil {
		return nil, err
	}

	ordered := planner.AdmissionOrder(req.Tasks, g, schedule)
	assignments := planner.AssignSprints(ordered, g, schedule, req.Constraints.SprintAvailableHours())
	sprints := planner.MaterializeSprints(assignments, req.Constraints)
	milestones := planner.GenerateMilestones(sprints, req.MilestoneTemplates)
	timeline := planner.ReleaseTimeline(sprints)
	capacity := planner.AnalyzeCapacity(sprints, req.Constraints)
	recommendations := planner.Recommend(capacity, *analysis, sprints)

	return &contract.SprintPlan{
		Sprints:         sprints,
		Assignments:     assignments,
		Milestones:      milestones,
		Timeline:        timeline,
		Capacity:        capacity,
		Recommendations: recommendations,
		Analysis:        *analysis,
	}, nil
}

func countOverflow(sprints []domain.Sprint) int {
	var n int
	for _, sp := range sprints {
		if sp.Overflow {
			n++
		}
	}
	return n
}
