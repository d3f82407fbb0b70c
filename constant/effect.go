package constant

import "time"

// Confetti burst parameters
const (
	ConfettiCount      = 150             // Pieces per burst
	ConfettiMaxDelay   = 3 * time.Second // Random per-piece animation start delay (0..max)
	ConfettiFallTime   = 4 * time.Second // Time for one piece to cross the stage
	ConfettiClearDelay = 6 * time.Second // Hard container clear after burst start
)

// Fireworks burst parameters
const (
	FireworkShellCount    = 15
	FireworkShellStagger  = 100 * time.Millisecond // Launch spacing between shells
	FireworkFuseDelay     = 225 * time.Millisecond // Launch to explosion
	FireworkShellLifetime = 1500 * time.Millisecond

	FireworkPrimaryCount   = 25
	FireworkPrimaryMinDist = 80.0  // px
	FireworkPrimaryMaxDist = 280.0 // px
	FireworkPrimaryLife    = 1500 * time.Millisecond
	FireworkAngleJitter    = 0.3 // Radians of random deviation from the radial pattern

	FireworkSecondaryDelay   = 200 * time.Millisecond // After primary burst
	FireworkSecondaryCount   = 15
	FireworkSecondaryMinDist = 40.0  // px
	FireworkSecondaryMaxDist = 160.0 // px
	FireworkSecondaryLife    = 1200 * time.Millisecond

	// Hard container clear measured from burst start. The last shell's
	// secondary sparks naturally live to ~3.0s; the clear still fires at a
	// fixed delay to bound resource usage.
	FireworkClearDelay = 4 * time.Second
)

// Explosion altitude band as a fraction of stage height from the top
const (
	FireworkBurstMinY = 0.20
	FireworkBurstMaxY = 0.55
)
