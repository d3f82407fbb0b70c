package store

import (
	"strconv"
	"sync"
	"time"
)

// Memory is an in-process Store used by tests and as a fallback when the
// database cannot be opened.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *Memory) Name() (string, bool) {
	v, ok := m.get(keyName)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (m *Memory) SetName(name string) { m.set(keyName, name) }

func (m *Memory) EffectPreference() bool {
	v, ok := m.get(keyEffect)
	if !ok {
		return true
	}
	return v != "false"
}

func (m *Memory) SetEffectPreference(confetti bool) {
	if confetti {
		m.set(keyEffect, "true")
	} else {
		m.set(keyEffect, "false")
	}
}

func (m *Memory) VisitCount() int {
	v, ok := m.get(keyVisitCount)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (m *Memory) IncrementVisits() int {
	n := m.VisitCount() + 1
	m.set(keyVisitCount, strconv.Itoa(n))
	return n
}

func (m *Memory) LastVisit() (time.Time, bool) {
	v, ok := m.get(keyLastVisit)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (m *Memory) SetLastVisit(t time.Time) {
	m.set(keyLastVisit, t.Format(time.RFC3339))
}

func (m *Memory) Close() error { return nil }
