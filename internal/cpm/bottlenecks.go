package cpm

import (
	"fmt"

	"github.com/mwhitfield/gantry/internal/domain"
)

// Bottleneck flags one critical-path task that threatens the schedule.
type Bottleneck struct {
	TaskID      string
	Reason      string
	ImpactHours float64
}

// RiskFactor is a project-level risk entry synthesized from the graph.
type RiskFactor struct {
	Description string
	Probability float64
	ImpactHours float64
}

// Bottleneck thresholds and impact weights.
const (
	longTaskHours      = 40.0
	highRiskImpactPct  = 0.40
	complexImpactPct   = 0.30
	fanOutThreshold    = 3
	fanOutImpactPerDep = 4.0
	longPathThreshold  = 10
)

// detectBottlenecks applies the heuristic flags to critical-path tasks
// only. A task may carry several flags.
func detectBottlenecks(g *Graph, criticalIDs []string) []Bottleneck {
	var out []Bottleneck
	for _, id := range criticalIDs {
		n := g.Nodes[id]
		if n.EstimatedHours > longTaskHours {
			out = append(out, Bottleneck{
				TaskID:      id,
				Reason:      fmt.Sprintf("estimated effort %.0fh exceeds one work week", n.EstimatedHours),
				ImpactHours: n.EstimatedHours - longTaskHours,
			})
		}
		if n.Risk == domain.RiskHigh {
			out = append(out, Bottleneck{
				TaskID:      id,
				Reason:      "task is explicitly marked high risk",
				ImpactHours: n.EstimatedHours * highRiskImpactPct,
			})
		}
		if n.Complexity == domain.ComplexityComplex || n.Complexity == domain.ComplexityEpic {
			out = append(out, Bottleneck{
				TaskID:      id,
				Reason:      fmt.Sprintf("%s complexity on the critical path", n.Complexity),
				ImpactHours: n.EstimatedHours * complexImpactPct,
			})
		}
		if len(n.Dependents) > fanOutThreshold {
			out = append(out, Bottleneck{
				TaskID:      id,
				Reason:      fmt.Sprintf("%d tasks are blocked on this one", len(n.Dependents)),
				ImpactHours: fanOutImpactPerDep * float64(len(n.Dependents)),
			})
		}
	}
	return out
}

// synthesizeRiskFactors aggregates graph-wide risk entries: heavy
// complexity, integration-keyword tasks, a long critical path, and
// explicitly high-risk tasks each become one factor with a fixed
// probability and an impact computed from the matching tasks.
func synthesizeRiskFactors(g *Graph, criticalIDs []string, classifier Classifier) []RiskFactor {
	var complexCount, integrationCount, highRiskCount int
	var complexHours, integrationHours, highRiskHours float64
	for _, id := range g.Order {
		n := g.Nodes[id]
		if n.Complexity == domain.ComplexityComplex || n.Complexity == domain.ComplexityEpic {
			complexCount++
			complexHours += n.EstimatedHours
		}
		if classifier.Matches(n.Title+" "+n.Description, SignalIntegration) {
			integrationCount++
			integrationHours += n.EstimatedHours
		}
		if n.Risk == domain.RiskHigh {
			highRiskCount++
			highRiskHours += n.EstimatedHours
		}
	}

	var out []RiskFactor
	if complexCount > 0 {
		out = append(out, RiskFactor{
			Description: fmt.Sprintf("%d complex or epic tasks may exceed their estimates", complexCount),
			Probability: 0.4,
			ImpactHours: complexHours * complexImpactPct,
		})
	}
	if integrationCount > 0 {
		out = append(out, RiskFactor{
			Description: fmt.Sprintf("%d tasks touch integration points (APIs, databases)", integrationCount),
			Probability: 0.5,
			ImpactHours: integrationHours * highRiskImpactPct,
		})
	}
	if len(criticalIDs) > longPathThreshold {
		out = append(out, RiskFactor{
			Description: fmt.Sprintf("critical path spans %d tasks; any slip delays the release", len(criticalIDs)),
			Probability: 0.3,
			ImpactHours: fanOutImpactPerDep * float64(len(criticalIDs)),
		})
	}
	if highRiskCount > 0 {
		out = append(out, RiskFactor{
			Description: fmt.Sprintf("%d tasks are explicitly marked high risk", highRiskCount),
			Probability: 0.6,
			ImpactHours: highRiskHours * highRiskImpactPct,
		})
	}
	return out
}
