package audio

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/greetburst/constant"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples at a fixed frequency
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	return sweepOscillator(waveType, freq, freq, samples, samples)
}

// sweepOscillator generates samples with the frequency swept linearly from
// startFreq to endFreq over sweepSamples, holding endFreq afterwards
func sweepOscillator(waveType int, startFreq, endFreq float64, sweepSamples, totalSamples int) floatBuffer {
	buf := make(floatBuffer, totalSamples)
	phase := 0.0

	for i := 0; i < totalSamples; i++ {
		freq := endFreq
		if sweepSamples > 0 && i < sweepSamples {
			freq = startFreq + (endFreq-startFreq)*float64(i)/float64(sweepSamples)
		}

		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += freq / float64(constant.AudioSampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyAttackDecay shapes the buffer with a linear attack from 0 to peak
// followed by an exponential decay reaching floor at the buffer end
func applyAttackDecay(buf floatBuffer, attackSec, peak, floor float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(constant.AudioSampleRate))
	if attackSamples > total {
		attackSamples = total
	}
	decaySamples := total - attackSamples

	// Guard the exponential ratio; a zero floor would silence everything
	if floor <= 0 {
		floor = 1e-4
	}
	ratio := floor / peak

	for i := 0; i < total; i++ {
		var gain float64
		if i < attackSamples {
			gain = peak * float64(i) / float64(attackSamples)
		} else if decaySamples > 0 {
			t := float64(i-attackSamples) / float64(decaySamples)
			gain = peak * math.Pow(ratio, t)
		} else {
			gain = peak
		}
		buf[i] *= gain
	}
}

// applyLowPassSweep runs a one-pole low-pass filter over the buffer with
// the cutoff swept linearly from startHz to endHz
func applyLowPassSweep(buf floatBuffer, startHz, endHz float64) {
	total := len(buf)
	if total == 0 {
		return
	}
	dt := 1.0 / float64(constant.AudioSampleRate)
	prev := 0.0

	for i := 0; i < total; i++ {
		cutoff := startHz + (endHz-startHz)*float64(i)/float64(total)
		rc := 1.0 / (2 * math.Pi * cutoff)
		alpha := dt / (rc + dt)
		prev += alpha * (buf[i] - prev)
		buf[i] = prev
	}
}

// applySputterGate chops the buffer into random short segments and mutes a
// random share of them, turning steady noise into crackle
func applySputterGate(buf floatBuffer) {
	minLen := durationToSamples(constant.CrackleGateMin.Seconds())
	maxLen := durationToSamples(constant.CrackleGateMax.Seconds())

	for i := 0; i < len(buf); {
		segment := minLen + rand.Intn(maxLen-minLen+1)
		muted := rand.Float64() > constant.CrackleGateChance
		for j := 0; j < segment && i < len(buf); j++ {
			if muted {
				buf[i] = 0
			}
			i++
		}
	}
}

// durationToSamples converts duration in seconds to sample count
func durationToSamples(d float64) int {
	return int(d * float64(constant.AudioSampleRate))
}
