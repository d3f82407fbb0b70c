package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

// stubOutput captures queued streamers without touching a device.
type stubOutput struct {
	initCalls int
	queued    []beep.Streamer
	initErr   error
}

func (o *stubOutput) fn(rate beep.SampleRate, bufLen int) (func(beep.Streamer), error) {
	o.initCalls++
	if o.initErr != nil {
		return nil, o.initErr
	}
	return func(s beep.Streamer) {
		o.queued = append(o.queued, s)
	}, nil
}

func newTestSynth(out *stubOutput) *Synthesizer {
	s := NewSynthesizer(DefaultConfig(), zerolog.Nop())
	s.output = out.fn
	return s
}

func TestSynthesizerLazyInitOnce(t *testing.T) {
	out := &stubOutput{}
	s := newTestSynth(out)

	if out.initCalls != 0 {
		t.Error("Output must not be opened before the first trigger")
	}

	s.Play(SoundPop)
	s.Play(SoundExplosion)
	s.Play(SoundDestruction)

	if out.initCalls != 1 {
		t.Errorf("Expected exactly one output init, got %d", out.initCalls)
	}
	if len(out.queued) != 3 {
		t.Errorf("Expected 3 queued graphs, got %d", len(out.queued))
	}
}

func TestSynthesizerFreshGraphPerTrigger(t *testing.T) {
	out := &stubOutput{}
	s := newTestSynth(out)

	s.Play(SoundPop)
	s.Play(SoundPop)

	if len(out.queued) != 2 {
		t.Fatalf("Expected 2 queued graphs, got %d", len(out.queued))
	}
	if out.queued[0] == out.queued[1] {
		t.Error("Synthesis graphs must not be reused across calls")
	}
}

func TestSynthesizerSilentModeOnFailure(t *testing.T) {
	out := &stubOutput{initErr: errors.New("no device")}
	s := newTestSynth(out)

	for i := 0; i < 5; i++ {
		if s.Play(SoundCrackle) {
			t.Fatal("Play must report false when the output is unavailable")
		}
	}
	// Failed init is remembered; no retry per trigger
	if out.initCalls != 1 {
		t.Errorf("Expected a single init attempt, got %d", out.initCalls)
	}
	if !s.Silent() {
		t.Error("Expected synthesizer to report silent mode")
	}
}

func TestSynthesizerDisabledConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	out := &stubOutput{}
	s := NewSynthesizer(cfg, zerolog.Nop())
	s.output = out.fn

	if s.Play(SoundPop) {
		t.Error("Play must report false when audio is disabled")
	}
	if out.initCalls != 0 {
		t.Error("Disabled audio must not open the output")
	}
}

func TestBufferStreamerAppliesVolumeAndEnds(t *testing.T) {
	bs := &bufferStreamer{buf: floatBuffer{1, 1, 1}, vol: 0.5}

	samples := make([][2]float64, 2)
	n, ok := bs.Stream(samples)
	if n != 2 || !ok {
		t.Fatalf("Expected full first read, got n=%d ok=%v", n, ok)
	}
	if samples[0][0] != 0.5 || samples[0][1] != 0.5 {
		t.Errorf("Expected volume 0.5 applied to both channels, got %v", samples[0])
	}

	n, ok = bs.Stream(samples)
	if n != 1 || !ok {
		t.Fatalf("Expected final partial read n=1 ok=true, got n=%d ok=%v", n, ok)
	}

	n, ok = bs.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected drained streamer, got n=%d ok=%v", n, ok)
	}
}

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()
	r.Play(SoundPop)
	r.Play(SoundRustle)
	r.Play(SoundPop)

	if got := r.CountOf(SoundPop); got != 2 {
		t.Errorf("Expected 2 pops, got %d", got)
	}
	if got := len(r.Played()); got != 3 {
		t.Errorf("Expected 3 triggers, got %d", got)
	}
}
