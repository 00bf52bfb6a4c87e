package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
)

// SQLitePlanRepo persists generated plans with their sprints, assignments
// and milestones. A plan is written in one transaction.
type SQLitePlanRepo struct {
	db *sql.DB
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, p *SavedPlan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting plan save: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `INSERT INTO plans (id, created_at, team_size,
		sprint_length_weeks, hours_per_week, start_date, velocity_factor,
		buffer_pct, sprint_count, utilization_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		time.Now().UTC().Format(time.RFC3339),
		p.Constraints.TeamSize,
		p.Constraints.SprintLengthWeeks,
		p.Constraints.HoursPerWeekPerPerson,
		p.Constraints.StartDate.Format(dateLayout),
		p.Constraints.Velocity(),
		p.Constraints.Buffer(),
		len(p.Sprints),
		p.Utilization,
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for _, sp := range p.Sprints {
		_, err = tx.ExecContext(ctx, `INSERT INTO plan_sprints (plan_id, number,
			start_date, end_date, total_hours, available_hours, planned_hours, overflow)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID,
			sp.Number,
			sp.StartDate.Format(dateLayout),
			sp.EndDate.Format(dateLayout),
			sp.Capacity.TotalHours,
			sp.Capacity.AvailableHours,
			sp.Velocity.PlannedHours,
			boolToInt(sp.Overflow),
		)
		if err != nil {
			return fmt.Errorf("inserting sprint %d: %w", sp.Number, err)
		}
	}

	for _, a := range p.Assignments {
		_, err = tx.ExecContext(ctx, `INSERT INTO plan_assignments (plan_id, task_id,
			sprint, hours, reason, confidence, dependencies_met, overflow)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID,
			a.TaskID,
			a.Sprint,
			a.Hours,
			a.Reason,
			a.Confidence,
			boolToInt(a.DependenciesMet),
			boolToInt(a.Overflow),
		)
		if err != nil {
			return fmt.Errorf("inserting assignment for %s: %w", a.TaskID, err)
		}
	}

	for _, m := range p.Milestones {
		_, err = tx.ExecContext(ctx, `INSERT INTO plan_milestones (plan_id, name,
			description, target_date, priority, dependent_sprints, progress_pct)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID,
			m.Name,
			m.Description,
			m.TargetDate.Format(dateLayout),
			string(m.Priority),
			intsToCSV(m.DependentSprints),
			m.ProgressPct,
		)
		if err != nil {
			return fmt.Errorf("inserting milestone %q: %w", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing plan save: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*SavedPlan, error) {
	p := &SavedPlan{ID: id}
	var startDate string
	err := r.db.QueryRowContext(ctx, `SELECT team_size, sprint_length_weeks,
		hours_per_week, start_date, velocity_factor, buffer_pct, utilization_pct
		FROM plans WHERE id = ?`, id).Scan(
		&p.Constraints.TeamSize,
		&p.Constraints.SprintLengthWeeks,
		&p.Constraints.HoursPerWeekPerPerson,
		&startDate,
		&p.Constraints.VelocityFactor,
		&p.Constraints.BufferPct,
		&p.Utilization,
	)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	p.Constraints.StartDate = parseDate(startDate)

	if p.Sprints, err = r.loadSprints(ctx, id); err != nil {
		return nil, err
	}
	if p.Assignments, err = r.loadAssignments(ctx, id); err != nil {
		return nil, err
	}
	if p.Milestones, err = r.loadMilestones(ctx, id); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM plans ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return ids, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) loadSprints(ctx context.Context, planID string) ([]domain.Sprint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT number, start_date, end_date,
		total_hours, available_hours, planned_hours, overflow
		FROM plan_sprints WHERE plan_id = ? ORDER BY number`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading sprints: %w", err)
	}
	defer rows.Close()

	var sprints []domain.Sprint
	for rows.Next() {
		var sp domain.Sprint
		var start, end string
		var overflow int
		if err := rows.Scan(&sp.Number, &start, &end, &sp.Capacity.TotalHours,
			&sp.Capacity.AvailableHours, &sp.Velocity.PlannedHours, &overflow); err != nil {
			return nil, fmt.Errorf("scanning sprint: %w", err)
		}
		sp.StartDate = parseDate(start)
		sp.EndDate = parseDate(end)
		sp.Overflow = overflow != 0
		sp.Status = domain.SprintPlanned
		sprints = append(sprints, sp)
	}
	return sprints, rows.Err()
}

func (r *SQLitePlanRepo) loadAssignments(ctx context.Context, planID string) ([]contract.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT task_id, sprint, hours, reason,
		confidence, dependencies_met, overflow
		FROM plan_assignments WHERE plan_id = ? ORDER BY sprint, task_id`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}
	defer rows.Close()

	var out []contract.Assignment
	for rows.Next() {
		var a contract.Assignment
		var met, overflow int
		if err := rows.Scan(&a.TaskID, &a.Sprint, &a.Hours, &a.Reason, &a.Confidence, &met, &overflow); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		a.DependenciesMet = met != 0
		a.Overflow = overflow != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLitePlanRepo) loadMilestones(ctx context.Context, planID string) ([]domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, description, target_date,
		priority, dependent_sprints, progress_pct
		FROM plan_milestones WHERE plan_id = ? ORDER BY target_date, name`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading milestones: %w", err)
	}
	defer rows.Close()

	var out []domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		var target, priority, deps string
		if err := rows.Scan(&m.Name, &m.Description, &target, &priority, &deps, &m.ProgressPct); err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}
		m.TargetDate = parseDate(target)
		m.Priority = domain.Priority(priority)
		m.DependentSprints = csvToInts(deps)
		out = append(out, m)
	}
	return out, rows.Err()
}
