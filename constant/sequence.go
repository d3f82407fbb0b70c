package constant

import "time"

// Self-destruct sequence
const (
	SelfDestructSeconds      = 5 // Countdown starts at this value and runs to 0
	SelfDestructTickInterval = 1 * time.Second
	SelfDestructClearDelay   = 2 * time.Second // Destroyed state to cleared

	DestructionMarker = "*** MESSAGE DESTROYED ***"
	CountdownFormat   = "This message will self-destruct in %d..."
)
