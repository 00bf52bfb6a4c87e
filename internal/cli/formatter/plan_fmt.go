package formatter

import (
	"fmt"
	"strings"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
)

const dateLayout = "2006-01-02"

// FormatSprintPlan renders the full plan: sprints, milestones, release
// timeline, capacity figures and recommendations.
func FormatSprintPlan(p *contract.SprintPlan) string {
	var b strings.Builder

	b.WriteString(Header("Sprints") + "\n")
	rows := make([][]string, 0, len(p.Sprints))
	for _, sp := range p.Sprints {
		load := Hours(sp.Velocity.PlannedHours)
		if sp.Overflow {
			load = StyleRed.Render(load + " (overflow)")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", sp.Number),
			sp.StartDate.Format(dateLayout),
			sp.EndDate.Format(dateLayout),
			fmt.Sprintf("%d", sp.Velocity.PlannedTasks),
			load,
			Hours(sp.Capacity.AvailableHours),
		})
	}
	b.WriteString(RenderTable([]string{"#", "Start", "End", "Tasks", "Planned", "Budget"}, rows))

	for _, sp := range p.Sprints {
		if len(sp.Risks) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s sprint %d: %s\n",
			StyleYellow.Render("⚠"), sp.Number, strings.Join(sp.Risks, "; ")))
	}

	b.WriteString("\n" + Header("Milestones") + "\n")
	for _, m := range p.Milestones {
		b.WriteString(fmt.Sprintf("  %s %s — %s (sprints %s)\n",
			PriorityColor(m.Priority).Render("◆"),
			StyleBold.Render(m.Name),
			m.TargetDate.Format(dateLayout),
			intsJoin(m.DependentSprints)))
	}

	b.WriteString("\n" + Header("Timeline") + "\n")
	for _, ph := range p.Timeline {
		b.WriteString(fmt.Sprintf("  %-18s sprints %d–%d  %s → %s\n",
			ph.Name, ph.StartSprint, ph.EndSprint,
			ph.StartDate.Format(dateLayout), ph.EndDate.Format(dateLayout)))
	}

	b.WriteString("\n" + Header("Capacity") + "\n")
	risk := RiskColor(p.Capacity.OverallocationRisk).Render(strings.ToUpper(string(p.Capacity.OverallocationRisk)))
	b.WriteString(fmt.Sprintf("  %d sprints, %s total, %s planned, %s buffer — utilization %s (%s)\n",
		p.Capacity.SprintCount,
		Hours(p.Capacity.TotalHours),
		Hours(p.Capacity.PlannedHours),
		Hours(p.Capacity.BufferHours),
		Pct(p.Capacity.UtilizationPct),
		risk))

	if len(p.Recommendations) > 0 {
		b.WriteString("\n" + Header("Recommendations") + "\n")
		for _, r := range p.Recommendations {
			b.WriteString(fmt.Sprintf("  %s [%s] %s\n",
				PriorityColor(r.Priority).Render("▶"), r.Category, r.Message))
		}
	}

	return b.String()
}

func intsJoin(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ",")
}

// FormatAssignments renders the per-task placement detail.
func FormatAssignments(assignments []contract.Assignment, tasks map[string]domain.Task) string {
	var b strings.Builder
	b.WriteString(Header("Assignments") + "\n")
	rows := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		title := a.TaskID
		if t, ok := tasks[a.TaskID]; ok {
			title = t.Title
		}
		met := StyleGreen.Render("yes")
		if !a.DependenciesMet {
			met = StyleYellow.Render("no")
		}
		rows = append(rows, []string{
			a.TaskID,
			title,
			fmt.Sprintf("%d", a.Sprint),
			Hours(a.Hours),
			fmt.Sprintf("%.2f", a.Confidence),
			met,
		})
	}
	b.WriteString(RenderTable([]string{"ID", "Title", "Sprint", "Hours", "Conf", "Deps met"}, rows))
	return b.String()
}
