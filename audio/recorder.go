package audio

import "sync"

// Recorder is a Player that records triggers instead of producing sound.
// Used by tests and the headless mode.
type Recorder struct {
	mu     sync.Mutex
	played []SoundType
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Play records the sound type and always reports success.
func (r *Recorder) Play(st SoundType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, st)
	return true
}

// Played returns the recorded triggers in order.
func (r *Recorder) Played() []SoundType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]SoundType, len(r.played))
	copy(out, r.played)
	return out
}

// CountOf returns how many times one sound type was triggered.
func (r *Recorder) CountOf(st SoundType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.played {
		if p == st {
			n++
		}
	}
	return n
}
