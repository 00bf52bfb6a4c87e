package domain

import "time"

// SprintCapacity is the capacity snapshot taken when a sprint is
// materialized. AvailableHours is TotalHours discounted by the velocity
// factor and buffer percentage.
type SprintCapacity struct {
	TotalHours     float64
	AvailableHours float64
	TeamSize       int
}

// Velocity records planned versus completed work for a sprint. Completed
// figures are zero at planning time and filled in by the consumer.
type Velocity struct {
	PlannedHours   float64
	CompletedHours float64
	PlannedTasks   int
	CompletedTasks int
}

// Sprint is one fixed-length planning window. Numbers are 1-based and
// contiguous across a plan.
type Sprint struct {
	Number    int
	StartDate time.Time
	EndDate   time.Time
	Status    SprintStatus
	Capacity  SprintCapacity
	TaskIDs   []string
	Velocity  Velocity
	Goals     []string
	Risks     []string
	// Overflow marks a sprint holding a single task whose effort alone
	// exceeds the available hours. The task is placed anyway, never split.
	Overflow bool
}
