package audio

import "github.com/lixenwraith/greetburst/constant"

// Config holds synthesizer output settings. Envelope shapes live in the
// constant package; these are user-level multipliers on top of them.
type Config struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns enabled audio at the standard sample rate with
// unity per-effect volumes.
func DefaultConfig() *Config {
	vols := make(map[SoundType]float64, soundTypeCount)
	for st := SoundType(0); st < soundTypeCount; st++ {
		vols[st] = 1.0
	}
	return &Config{
		Enabled:       true,
		SampleRate:    constant.AudioSampleRate,
		MasterVolume:  0.8,
		EffectVolumes: vols,
	}
}
