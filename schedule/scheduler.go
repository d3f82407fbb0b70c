// Package schedule provides timer scheduling behind an interface so that
// timed choreography can run against the wall clock in production and a
// manually advanced clock in tests. Every scheduled task returns a Handle,
// even though current callers never cancel; this keeps a path open for
// teardown cancellation without changing observed behavior.
package schedule

import "time"

// Handle refers to a scheduled task.
type Handle interface {
	// Stop cancels the task if it has not run yet.
	// Returns true if the task was cancelled.
	Stop() bool
}

// Scheduler schedules one-shot tasks and provides the current time.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Handle
	Now() time.Time
}

// Wall is the production scheduler backed by the system clock.
type Wall struct{}

// NewWall creates a wall-clock scheduler.
func NewWall() *Wall {
	return &Wall{}
}

// Now returns the current time with monotonic clock reading.
func (w *Wall) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn to run on its own goroutine after d.
func (w *Wall) AfterFunc(d time.Duration, fn func()) Handle {
	return wallHandle{timer: time.AfterFunc(d, fn)}
}

type wallHandle struct {
	timer *time.Timer
}

func (h wallHandle) Stop() bool {
	return h.timer.Stop()
}
