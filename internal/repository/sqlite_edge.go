package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwhitfield/gantry/internal/domain"
)

const edgeColumns = `task_id, depends_on_id, kind, strength, reason, risk_level`

// SQLiteEdgeRepo implements EdgeRepo using a SQLite database.
type SQLiteEdgeRepo struct {
	db *sql.DB
}

// NewSQLiteEdgeRepo creates a new SQLiteEdgeRepo.
func NewSQLiteEdgeRepo(db *sql.DB) *SQLiteEdgeRepo {
	return &SQLiteEdgeRepo{db: db}
}

func (r *SQLiteEdgeRepo) Create(ctx context.Context, e *domain.DependencyEdge) error {
	query := `INSERT OR REPLACE INTO dependency_edges (task_id, depends_on_id, kind, strength, reason, risk_level)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.TaskID,
		e.DependsOnID,
		string(e.Kind),
		e.Strength,
		e.Reason,
		string(e.Risk),
	)
	if err != nil {
		return fmt.Errorf("inserting dependency edge: %w", err)
	}
	return nil
}

func (r *SQLiteEdgeRepo) Delete(ctx context.Context, taskID, dependsOnID string) error {
	query := `DELETE FROM dependency_edges WHERE task_id = ? AND depends_on_id = ?`
	if _, err := r.db.ExecContext(ctx, query, taskID, dependsOnID); err != nil {
		return fmt.Errorf("deleting dependency edge: %w", err)
	}
	return nil
}

func (r *SQLiteEdgeRepo) List(ctx context.Context) ([]domain.DependencyEdge, error) {
	query := `SELECT ` + edgeColumns + ` FROM dependency_edges ORDER BY task_id, depends_on_id, kind`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dependency edges: %w", err)
	}
	defer rows.Close()
	return r.scanEdges(rows)
}

func (r *SQLiteEdgeRepo) ListForTask(ctx context.Context, taskID string) ([]domain.DependencyEdge, error) {
	query := `SELECT ` + edgeColumns + ` FROM dependency_edges
		WHERE task_id = ? OR depends_on_id = ?
		ORDER BY task_id, depends_on_id, kind`
	rows, err := r.db.QueryContext(ctx, query, taskID, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing edges for task: %w", err)
	}
	defer rows.Close()
	return r.scanEdges(rows)
}

func (r *SQLiteEdgeRepo) scanEdges(rows *sql.Rows) ([]domain.DependencyEdge, error) {
	var edges []domain.DependencyEdge
	for rows.Next() {
		var e domain.DependencyEdge
		var kind, risk string
		if err := rows.Scan(&e.TaskID, &e.DependsOnID, &kind, &e.Strength, &e.Reason, &risk); err != nil {
			return nil, fmt.Errorf("scanning dependency edge: %w", err)
		}
		e.Kind = domain.RelationKind(kind)
		e.Risk = domain.RiskLevel(risk)
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependency edges: %w", err)
	}
	return edges, nil
}
