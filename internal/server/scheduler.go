package server

import (
	"context"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/scheduler"
)

// Scheduler is the daily delivery loop as seen by the server.
type Scheduler interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() scheduler.Status
	RunOnce(ctx context.Context) error
}
