package planner

import (
	"fmt"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
)

// Overallocation thresholds on utilization percent.
const (
	utilizationHigh   = 90.0
	utilizationMedium = 80.0
	varianceRatio     = 1.5
	manySprints       = 6
)

// AnalyzeCapacity aggregates plan-wide utilization: total team-hours over
// all sprints, planned hours, the implicit buffer, and an overallocation
// risk level.
func AnalyzeCapacity(sprints []domain.Sprint, c contract.PlanConstraints) contract.CapacityAnalysis {
	analysis := contract.CapacityAnalysis{
		SprintCount:        len(sprints),
		OverallocationRisk: domain.RiskLow,
	}
	if len(sprints) == 0 {
		return analysis
	}

	analysis.TotalHours = float64(len(sprints)) * c.SprintTotalHours()
	for _, sp := range sprints {
		analysis.PlannedHours += sp.Velocity.PlannedHours
	}
	analysis.BufferHours = analysis.TotalHours - analysis.PlannedHours
	analysis.UtilizationPct = analysis.PlannedHours / analysis.TotalHours * 100

	switch {
	case analysis.UtilizationPct > utilizationHigh:
		analysis.OverallocationRisk = domain.RiskHigh
	case analysis.UtilizationPct > utilizationMedium:
		analysis.OverallocationRisk = domain.RiskMedium
	}

	return analysis
}

// Recommend produces prioritized planning warnings from the capacity
// figures, the dependency analysis and the sprint shapes.
func Recommend(capacity contract.CapacityAnalysis, analysis contract.DependencyAnalysis, sprints []domain.Sprint) []contract.Recommendation {
	var out []contract.Recommendation

	switch capacity.OverallocationRisk {
	case domain.RiskHigh:
		out = append(out, contract.Recommendation{
			Category: contract.RecommendCapacity,
			Priority: domain.PriorityHigh,
			Message:  fmt.Sprintf("Utilization is %.0f%%; reduce scope or add buffer before committing", capacity.UtilizationPct),
		})
	case domain.RiskMedium:
		out = append(out, contract.Recommendation{
			Category: contract.RecommendCapacity,
			Priority: domain.PriorityMedium,
			Message:  fmt.Sprintf("Utilization is %.0f%%; the plan has little room for surprises", capacity.UtilizationPct),
		})
	}

	if len(analysis.CriticalPath.Bottlenecks) > 0 {
		out = append(out, contract.Recommendation{
			Category: contract.RecommendDependency,
			Priority: domain.PriorityHigh,
			Message:  fmt.Sprintf("%d bottlenecks sit on the critical path; resolve or de-risk them first", len(analysis.CriticalPath.Bottlenecks)),
		})
	}

	if minH, maxH, ok := hourSpread(sprints); ok && maxH > minH*varianceRatio {
		out = append(out, contract.Recommendation{
			Category: contract.RecommendCapacity,
			Priority: domain.PriorityMedium,
			Message:  fmt.Sprintf("Sprint load varies from %.0fh to %.0fh; rebalance for steadier delivery", minH, maxH),
		})
	}

	if len(analysis.CriticalPath.RiskFactors) > 2 {
		out = append(out, contract.Recommendation{
			Category: contract.RecommendRisk,
			Priority: domain.PriorityMedium,
			Message:  fmt.Sprintf("%d project-level risk factors identified; review them with the team", len(analysis.CriticalPath.RiskFactors)),
		})
	}

	if len(sprints) > manySprints {
		out = append(out, contract.Recommendation{
			Category: contract.RecommendMilestone,
			Priority: domain.PriorityLow,
			Message:  fmt.Sprintf("Plan spans %d sprints; consider intermediate milestones between the generated ones", len(sprints)),
		})
	}

	return out
}

// hourSpread returns the min and max planned hours over non-empty sprints.
func hourSpread(sprints []domain.Sprint) (minH, maxH float64, ok bool) {
	for _, sp := range sprints {
		h := sp.Velocity.PlannedHours
		if h == 0 {
			continue
		}
		if !ok {
			minH, maxH, ok = h, h, true
			continue
		}
		if h < minH {
			minH = h
		}
		if h > maxH {
			maxH = h
		}
	}
	return minH, maxH, ok
}
