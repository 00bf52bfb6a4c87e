package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// PlanEvent captures lightweight execution telemetry for one engine
// invocation.
type PlanEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// PlanObserver receives engine execution events.
type PlanObserver interface {
	ObservePlan(ctx context.Context, event PlanEvent)
}

// NoopPlanObserver ignores all events.
type NoopPlanObserver struct{}

func (NoopPlanObserver) ObservePlan(context.Context, PlanEvent) {}

type logPlanObserver struct {
	logger *slog.Logger
}

// NewLogPlanObserver writes engine events to the provided writer.
func NewLogPlanObserver(w io.Writer) PlanObserver {
	if w == nil {
		return NoopPlanObserver{}
	}
	return &logPlanObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logPlanObserver) ObservePlan(ctx context.Context, event PlanEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"operation", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "plan_operation", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "plan_operation", attrs...)
}
