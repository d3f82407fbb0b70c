// Package store persists the user's preference mirror: name, effect
// preference, visit count, and last-visit timestamp. Reads return typed
// defaults when a value is absent or corrupt; write failures are logged
// and ignored, so the flow never sees a storage error.
package store

import "time"

// Store is the preference persistence collaborator.
type Store interface {
	// Name returns the stored name; false when none is stored.
	Name() (string, bool)
	SetName(name string)

	// EffectPreference reports whether confetti is preferred (the
	// default) over fireworks.
	EffectPreference() bool
	SetEffectPreference(confetti bool)

	// VisitCount returns the stored visit count; 0 when absent or corrupt.
	VisitCount() int
	// IncrementVisits bumps the count and returns the new value.
	IncrementVisits() int

	// LastVisit returns the stored timestamp; false when absent or corrupt.
	LastVisit() (time.Time, bool)
	SetLastVisit(t time.Time)

	Close() error
}

// Storage keys shared by implementations.
const (
	keyName       = "name"
	keyEffect     = "effect_confetti"
	keyVisitCount = "visit_count"
	keyLastVisit  = "last_visit"
)
