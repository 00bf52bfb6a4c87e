package formatter

import (
	"fmt"
	"strings"

	"github.com/mwhitfield/gantry/internal/contract"
)

// FormatAnalysis renders a dependency analysis: schedule table, critical
// path, parallel tracks and optimization suggestions.
func FormatAnalysis(a *contract.DependencyAnalysis) string {
	var b strings.Builder

	b.WriteString(Header("Schedule") + "\n")
	rows := make([][]string, 0, len(a.Nodes))
	for _, n := range a.Nodes {
		marker := ""
		if n.OnCriticalPath {
			marker = StyleRed.Render("●")
		}
		rows = append(rows, []string{
			n.TaskID,
			n.Title,
			Hours(n.EstimatedHours),
			fmt.Sprintf("%.0f–%.0f", n.EarliestStart, n.EarliestFinish),
			Hours(n.Slack),
			marker,
		})
	}
	b.WriteString(RenderTable([]string{"ID", "Title", "Effort", "Window", "Slack", "CP"}, rows))

	b.WriteString("\n" + Header("Critical path") + "\n")
	b.WriteString(fmt.Sprintf("%s  (%s, %.1f days)\n",
		StyleBold.Render(strings.Join(a.CriticalPath.TaskIDs, " → ")),
		Hours(a.CriticalPath.DurationHours),
		a.CriticalPath.DurationDays))

	for _, bn := range a.CriticalPath.Bottlenecks {
		b.WriteString(fmt.Sprintf("  %s %s: %s (%s at risk)\n",
			StyleYellow.Render("⚠"), bn.TaskID, bn.Reason, Hours(bn.ImpactHours)))
	}
	for _, rf := range a.CriticalPath.RiskFactors {
		b.WriteString(fmt.Sprintf("  %s %s (p=%.1f, %s)\n",
			StyleRed.Render("!"), rf.Description, rf.Probability, Hours(rf.ImpactHours)))
	}

	if len(a.Tracks) > 1 {
		b.WriteString("\n" + Header("Parallel tracks") + "\n")
		for _, t := range a.Tracks {
			b.WriteString(fmt.Sprintf("  %d. %s: %s (%s)\n",
				t.Number, t.Description, strings.Join(t.TaskIDs, " → "), Hours(t.DurationHours)))
		}
	}

	if len(a.Suggestions) > 0 {
		b.WriteString("\n" + Header("Suggestions") + "\n")
		for _, s := range a.Suggestions {
			b.WriteString(fmt.Sprintf("  %s %s — saves ~%s\n",
				StyleGreen.Render(string(s.Kind)), s.Description, Hours(s.ExpectedSavingHours)))
		}
	}

	if a.DroppedEdges > 0 {
		b.WriteString("\n" + Dim(fmt.Sprintf("%d dependency edges referenced unknown tasks and were dropped", a.DroppedEdges)) + "\n")
	}

	return b.String()
}

// FormatCycleError renders the fatal cycle list for correction.
func FormatCycleError(err *contract.CycleError) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render("Dependency cycles detected — fix these before planning:") + "\n")
	for _, c := range err.Cycles {
		b.WriteString("  " + strings.Join(c, " → ") + "\n")
	}
	return b.String()
}
