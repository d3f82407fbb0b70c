package audio

// SoundType identifies a one-shot synthesized sound.
type SoundType uint8

const (
	SoundPop SoundType = iota
	SoundRustle
	SoundExplosion
	SoundCrackle
	SoundDestruction
	soundTypeCount
)

// String returns the sound name for logging.
func (st SoundType) String() string {
	switch st {
	case SoundPop:
		return "pop"
	case SoundRustle:
		return "rustle"
	case SoundExplosion:
		return "explosion"
	case SoundCrackle:
		return "crackle"
	case SoundDestruction:
		return "destruction"
	default:
		return "unknown"
	}
}

// Player is the minimal audio interface used by the effect and sequence
// packages. Play reports whether a sound was actually queued; callers
// never treat false as an error.
type Player interface {
	Play(st SoundType) bool
}
