package schedule

import (
	"sync"
	"time"
)

// Manual is a controllable scheduler for testing. Tasks run synchronously
// inside Advance, in deadline order; ties run in schedule order.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	owner    *Manual
	deadline time.Time
	seq      int
	fn       func()
	done     bool
}

// NewManual creates a manual scheduler starting at the given time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current mocked time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers fn to run when the clock advances past d.
// A zero or negative d fires on the next Advance call.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTask{
		owner:    m,
		deadline: m.now.Add(d),
		seq:      m.seq,
		fn:       fn,
	}
	m.seq++
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every due task in deadline
// order. Tasks scheduled by running tasks are picked up within the same
// Advance if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	if target.After(m.now) {
		m.now = target
	}
	m.mu.Unlock()
}

// Pending returns the number of scheduled tasks that have not yet run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// popDue removes and returns the earliest task at or before target,
// advancing the clock to its deadline. Returns nil when none are due.
func (m *Manual) popDue(target time.Time) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	best := -1
	for i, t := range m.tasks {
		if t.deadline.After(target) {
			continue
		}
		if best == -1 ||
			t.deadline.Before(m.tasks[best].deadline) ||
			(t.deadline.Equal(m.tasks[best].deadline) && t.seq < m.tasks[best].seq) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}

	t := m.tasks[best]
	m.tasks = append(m.tasks[:best], m.tasks[best+1:]...)
	t.done = true
	if t.deadline.After(m.now) {
		m.now = t.deadline
	}
	return t
}

// Stop cancels the task if it has not run yet.
func (t *manualTask) Stop() bool {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.done {
		return false
	}
	for i, pending := range m.tasks {
		if pending == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			t.done = true
			return true
		}
	}
	return false
}
