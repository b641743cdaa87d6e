// Package task is a minimal submit/await boundary for offloading a
// deterministic computation to a background goroutine. The computation itself
// stays a plain synchronous function; the task only moves it off the caller's
// goroutine and delivers exactly one terminal result or error. There is no
// cancellation of a running computation and no retry: callers that stop
// waiting simply abandon the task.
package task

import (
	"context"
	"fmt"
)

// Task is a handle to one submitted computation.
type Task[T any] struct {
	done   chan struct{}
	result T
	err    error
}

// Submit starts fn on its own goroutine and returns immediately. A panic
// inside fn is reported as the task's terminal error rather than crashing the
// process.
func Submit[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = fmt.Errorf("task panicked: %v", r)
			}
		}()
		t.result, t.err = fn(ctx)
	}()
	return t
}

// Await blocks until the task finishes or ctx is done. Abandoning a task via
// ctx does not stop the underlying computation.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the task has finished.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}
