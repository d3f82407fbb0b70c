package constant

import "time"

// Orchestrated flow timing
const (
	SelfDestructArmDelay = 2 * time.Second // Post-render delay before arming
	FlowCooldown         = 9 * time.Second // Re-invocation blocked after flow start
)

// Time-of-day greeting boundaries (local hour)
const (
	MorningEndHour   = 12
	AfternoonEndHour = 18
)

// MaxNameLength caps name input length in the frontend.
const MaxNameLength = 40

// A stored visit count above this (read before the current run's increment)
// marks the user as a returning visitor.
const ReturningVisitThreshold = 1
