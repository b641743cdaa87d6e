package netlog

import (
	"context"

	"github.com/seclens/insight-backend-go/internal/pkg/task"
)

// NetlogService defines the two-level log aggregation pipeline.
type NetlogService interface {
	// GetParallelData loads the three input collections and folds them into
	// parallel-coordinate rows, synchronously.
	GetParallelData(ctx context.Context) (*ParallelResponse, error)

	// SubmitParallelData runs the same aggregation on a background goroutine
	// and returns a handle the caller can await. Large inputs stay off the
	// request path this way.
	SubmitParallelData(ctx context.Context) *task.Task[*ParallelResponse]
}
