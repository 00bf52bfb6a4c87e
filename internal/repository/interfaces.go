package repository

import (
	"context"

	"github.com/mwhitfield/gantry/internal/contract"
	"github.com/mwhitfield/gantry/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type EdgeRepo interface {
	Create(ctx context.Context, e *domain.DependencyEdge) error
	Delete(ctx context.Context, taskID, dependsOnID string) error
	List(ctx context.Context) ([]domain.DependencyEdge, error)
	ListForTask(ctx context.Context, taskID string) ([]domain.DependencyEdge, error)
}

// SavedPlan is one persisted planning run.
type SavedPlan struct {
	ID          string
	Constraints contract.PlanConstraints
	Sprints     []domain.Sprint
	Assignments []contract.Assignment
	Milestones  []domain.Milestone
	Utilization float64
}

type PlanRepo interface {
	Save(ctx context.Context, p *SavedPlan) error
	GetByID(ctx context.Context, id string) (*SavedPlan, error)
	ListIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}
