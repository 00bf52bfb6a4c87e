package importer

import (
	"fmt"
	"time"

	"github.com/mwhitfield/gantry/internal/domain"
)

// ValidateSnapshot checks the snapshot before conversion and returns
// every error found, not just the first. Dependency references to unknown
// task IDs come back as warnings rather than errors: the engine drops
// such edges non-fatally, and the importer mirrors that behavior.
func ValidateSnapshot(snap *Snapshot) (errs []error, warnings []string) {
	if len(snap.Tasks) == 0 {
		errs = append(errs, fmt.Errorf("snapshot contains no tasks"))
	}

	ids := make(map[string]bool, len(snap.Tasks))
	for i, t := range snap.Tasks {
		where := fmt.Sprintf("tasks[%d]", i)
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}
		if t.EstimatedHours <= 0 {
			errs = append(errs, fmt.Errorf("%s: estimated_hours must be positive, got %g", where, t.EstimatedHours))
		}
		if t.Priority != "" && !domain.ValidPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("%s: invalid priority %q", where, t.Priority))
		}
		if t.Complexity != "" && !domain.ValidComplexities[t.Complexity] {
			errs = append(errs, fmt.Errorf("%s: invalid complexity %q", where, t.Complexity))
		}
		if t.ID != "" {
			if ids[t.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate task id %q", where, t.ID))
			}
			ids[t.ID] = true
		}
	}

	for i, d := range snap.Dependencies {
		where := fmt.Sprintf("dependencies[%d]", i)
		if d.TaskID == "" || d.DependsOnID == "" {
			errs = append(errs, fmt.Errorf("%s: task_id and depends_on_id are required", where))
			continue
		}
		if d.Kind != "" && !domain.ValidRelationKinds[d.Kind] {
			errs = append(errs, fmt.Errorf("%s: invalid kind %q", where, d.Kind))
		}
		if d.Strength < 0 || d.Strength > 1 {
			errs = append(errs, fmt.Errorf("%s: strength must be within [0, 1], got %g", where, d.Strength))
		}
		if !ids[d.TaskID] {
			warnings = append(warnings, fmt.Sprintf("%s: unknown task_id %q; edge will be dropped", where, d.TaskID))
		}
		if !ids[d.DependsOnID] {
			warnings = append(warnings, fmt.Sprintf("%s: unknown depends_on_id %q; edge will be dropped", where, d.DependsOnID))
		}
	}

	if c := snap.Constraints; c != nil {
		if c.TeamSize <= 0 {
			errs = append(errs, fmt.Errorf("constraints.team_size must be positive"))
		}
		if c.SprintLengthWeeks <= 0 {
			errs = append(errs, fmt.Errorf("constraints.sprint_length_weeks must be positive"))
		}
		if c.HoursPerWeekPerPerson <= 0 {
			errs = append(errs, fmt.Errorf("constraints.hours_per_week_per_person must be positive"))
		}
		if c.StartDate != "" {
			if _, err := time.Parse("2006-01-02", c.StartDate); err != nil {
				errs = append(errs, fmt.Errorf("constraints.start_date: invalid date %q (expected YYYY-MM-DD)", c.StartDate))
			}
		}
	}

	return errs, warnings
}
