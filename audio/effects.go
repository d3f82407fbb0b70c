package audio

import "github.com/lixenwraith/greetburst/constant"

// --- Sound Generators ---
// Each generator builds an independent buffer with the effect's gain
// envelope baked in; user volume multipliers are applied at playback.

// generatePopSound is a short sine blip falling an octave
func generatePopSound() floatBuffer {
	samples := durationToSamples(constant.PopSoundDuration.Seconds())
	buf := sweepOscillator(waveSine, constant.PopStartFreq, constant.PopEndFreq, samples, samples)
	applyAttackDecay(buf, constant.PopAttack.Seconds(), constant.PopPeakGain, 0.01)
	return buf
}

// generateRustleSound is a soft noise bed, played together with Pop as the
// confetti composite
func generateRustleSound() floatBuffer {
	samples := durationToSamples(constant.RustleSoundDuration.Seconds())
	buf := oscillator(waveNoise, 0, samples)
	applyAttackDecay(buf, constant.RustleAttack.Seconds(), constant.RustlePeakGain, 0.01)
	return buf
}

// generateExplosionSound sweeps a sawtooth 150->30 Hz over 0.3s through a
// low-pass closing 800->100 Hz, with a 10ms attack to 0.3 and an
// exponential decay to ~0.001 by 0.5s
func generateExplosionSound() floatBuffer {
	total := durationToSamples(constant.ExplosionSoundDuration.Seconds())
	sweep := durationToSamples(constant.ExplosionSweepDuration.Seconds())

	buf := sweepOscillator(waveSaw, constant.ExplosionStartFreq, constant.ExplosionEndFreq, sweep, total)
	applyLowPassSweep(buf, constant.ExplosionFilterStart, constant.ExplosionFilterEnd)
	applyAttackDecay(buf, constant.ExplosionAttack.Seconds(), constant.ExplosionPeakGain, constant.ExplosionDecayFloor)
	return buf
}

// generateCrackleSound gates noise into random sputters
func generateCrackleSound() floatBuffer {
	samples := durationToSamples(constant.CrackleSoundDuration.Seconds())
	buf := oscillator(waveNoise, 0, samples)
	applySputterGate(buf)
	applyAttackDecay(buf, constant.PopAttack.Seconds(), constant.CracklePeakGain, constant.CrackleDecayFloor)
	return buf
}

// generateDestructionSound is the deeper variant of the explosion: a
// 200->20 Hz sweep over 0.8s with peak gain 0.4
func generateDestructionSound() floatBuffer {
	total := durationToSamples(constant.DestructionSoundDuration.Seconds())
	sweep := durationToSamples(constant.DestructionSweepDuration.Seconds())

	buf := sweepOscillator(waveSaw, constant.DestructionStartFreq, constant.DestructionEndFreq, sweep, total)
	applyLowPassSweep(buf, constant.DestructionFilterStart, constant.DestructionFilterEnd)
	applyAttackDecay(buf, constant.DestructionAttack.Seconds(), constant.DestructionPeakGain, constant.DestructionDecayFloor)
	return buf
}

// generateSound dispatches to the specific generator
func generateSound(st SoundType) floatBuffer {
	switch st {
	case SoundPop:
		return generatePopSound()
	case SoundRustle:
		return generateRustleSound()
	case SoundExplosion:
		return generateExplosionSound()
	case SoundCrackle:
		return generateCrackleSound()
	case SoundDestruction:
		return generateDestructionSound()
	default:
		return nil
	}
}
