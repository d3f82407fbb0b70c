package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/greetburst/constant"
)

// outputFn opens the audio output once and returns a play function that
// queues a streamer. Injectable so tests run without an audio device.
type outputFn func(rate beep.SampleRate, bufLen int) (func(beep.Streamer), error)

// Synthesizer builds and plays one-shot sounds. The output device is
// acquired lazily on the first trigger, at most once per process; if that
// fails the synthesizer flips to silent mode and every later trigger is a
// logged no-op. Play never returns an error to callers.
type Synthesizer struct {
	mu          sync.Mutex
	cfg         *Config
	log         zerolog.Logger
	output      outputFn
	play        func(beep.Streamer)
	initialized bool
	failed      bool
}

// NewSynthesizer creates a synthesizer; the speaker is not touched until
// the first Play.
func NewSynthesizer(cfg *Config, log zerolog.Logger) *Synthesizer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Synthesizer{
		cfg:    cfg,
		log:    log,
		output: speakerOutput,
	}
}

// speakerOutput initializes the beep speaker and returns a mixer feed.
func speakerOutput(rate beep.SampleRate, bufLen int) (func(beep.Streamer), error) {
	if err := speaker.Init(rate, bufLen); err != nil {
		return nil, err
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	}, nil
}

// Play synthesizes a fresh graph for the sound and queues it. Returns
// false when audio is disabled, unavailable, or the type is unknown.
func (s *Synthesizer) Play(st SoundType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.Enabled || s.failed {
		return false
	}
	if !s.initialized {
		rate := beep.SampleRate(s.cfg.SampleRate)
		play, err := s.output(rate, rate.N(constant.AudioBufferDuration))
		if err != nil {
			s.failed = true
			s.log.Warn().Err(err).Msg("audio output unavailable, continuing silently")
			return false
		}
		s.play = play
		s.initialized = true
		s.log.Debug().Int("sample_rate", s.cfg.SampleRate).Msg("audio output initialized")
	}

	buf := generateSound(st)
	if len(buf) == 0 {
		return false
	}

	vol := s.cfg.MasterVolume * s.cfg.EffectVolumes[st]
	s.play(&bufferStreamer{buf: buf, vol: vol})
	return true
}

// Silent reports whether the synthesizer has degraded to silent mode.
func (s *Synthesizer) Silent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed || !s.cfg.Enabled
}

// bufferStreamer streams a mono buffer as stereo with a fixed volume.
// One instance per Play call; graphs are never reused.
type bufferStreamer struct {
	buf floatBuffer
	pos int
	vol float64
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= len(b.buf) {
			return i, i > 0
		}
		v := b.buf[b.pos] * b.vol
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *bufferStreamer) Err() error { return nil }

// Duration reports the buffer length, mostly for tests and logging.
func (b *bufferStreamer) Duration() time.Duration {
	return time.Duration(float64(len(b.buf)) / float64(constant.AudioSampleRate) * float64(time.Second))
}
