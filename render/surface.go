// Package render defines the rendered surface the choreography writes to: a
// single message region plus named particle containers. The engine owns
// element lifecycles; how live particles are animated on screen is the
// renderer's concern.
package render

import "time"

// MessageState is the visual state of the message region.
type MessageState uint8

const (
	StateNeutral MessageState = iota
	StateDestroyed
)

// MessageRegion is the single region whose content and visual state are
// fully owned and overwritten by the choreography.
type MessageRegion interface {
	SetMessage(content string)
	Message() string
	SetState(state MessageState)
	State() MessageState
	// Clear wipes content and resets the state to neutral.
	Clear()
}

// NoticeRegion carries short validation and error notices without
// disturbing the message region.
type NoticeRegion interface {
	SetNotice(text string)
	Notice() string
	ClearNotice()
}

// ParticleKind selects the animation family of a particle.
type ParticleKind uint8

const (
	KindConfetti ParticleKind = iota
	KindShell
	KindPrimarySpark
	KindSecondarySpark
)

// Particle is pure visual data. Positions are normalized to the stage
// (0..1); Distance is in px and scaled by the renderer.
type Particle struct {
	Kind     ParticleKind
	OriginX  float64
	OriginY  float64
	Color    uint32 // 0xRRGGBB
	Delay    time.Duration
	Angle    float64 // Radians; spark travel direction
	Distance float64
	Lifetime time.Duration
	Spin     float64 // Revolutions per second; confetti tumble
	Born     time.Time
}

// Element is a handle to a spawned particle. Remove is safe to call after
// the containing burst has been cleared.
type Element interface {
	Remove()
}

// Container holds the live particles of one effect family.
type Container interface {
	Spawn(p Particle) Element
	Clear()
	Count() int
}

// Stage provides named containers, created on first use and reused across
// bursts.
type Stage interface {
	Container(name string) Container
}
