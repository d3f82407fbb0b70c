package constant

import "time"

// Audio output
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
)

// Pop sound (confetti burst accent)
const (
	PopSoundDuration = 100 * time.Millisecond
	PopStartFreq     = 880.0
	PopEndFreq       = 440.0
	PopAttack        = 5 * time.Millisecond
	PopPeakGain      = 0.3
)

// Rustle sound (confetti noise bed, played together with Pop)
const (
	RustleSoundDuration = 300 * time.Millisecond
	RustleAttack        = 20 * time.Millisecond
	RustlePeakGain      = 0.2
)

// Explosion sound: sawtooth sweep through a closing low-pass filter
const (
	ExplosionSoundDuration = 500 * time.Millisecond
	ExplosionSweepDuration = 300 * time.Millisecond
	ExplosionStartFreq     = 150.0
	ExplosionEndFreq       = 30.0
	ExplosionFilterStart   = 800.0
	ExplosionFilterEnd     = 100.0
	ExplosionAttack        = 10 * time.Millisecond
	ExplosionPeakGain      = 0.3
	ExplosionDecayFloor    = 0.001
)

// Crackle sound (secondary spark sputter)
const (
	CrackleSoundDuration = 400 * time.Millisecond
	CrackleGateMin       = 5 * time.Millisecond
	CrackleGateMax       = 15 * time.Millisecond
	CrackleGateChance    = 0.6
	CracklePeakGain      = 0.25
	CrackleDecayFloor    = 0.001
)

// Destruction sound: deeper, longer sweep with higher peak gain
const (
	DestructionSoundDuration = 1000 * time.Millisecond
	DestructionSweepDuration = 800 * time.Millisecond
	DestructionStartFreq     = 200.0
	DestructionEndFreq       = 20.0
	DestructionFilterStart   = 1000.0
	DestructionFilterEnd     = 50.0
	DestructionAttack        = 10 * time.Millisecond
	DestructionPeakGain      = 0.4
	DestructionDecayFloor    = 0.001
)
