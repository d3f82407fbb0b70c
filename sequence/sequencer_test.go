package sequence

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/greetburst/audio"
	"github.com/lixenwraith/greetburst/constant"
	"github.com/lixenwraith/greetburst/render"
	"github.com/lixenwraith/greetburst/schedule"
)

func newTestSequencer() (*Sequencer, *render.MemoryMessage, *audio.Recorder, *schedule.Manual) {
	msg := render.NewMemoryMessage()
	player := audio.NewRecorder()
	sched := schedule.NewManual(time.Unix(0, 0))
	seq := NewSequencer(msg, player, sched, zerolog.Nop())
	return seq, msg, player, sched
}

func TestCountdownFrameSequence(t *testing.T) {
	seq, msg, _, sched := newTestSequencer()
	msg.SetMessage("Good morning, Ada!")

	seq.Arm()
	sched.Advance(10 * time.Second)

	history := msg.History()
	// Initial render, 6 countdown frames (5..0), marker, wipe
	var frames []string
	for _, h := range history {
		if strings.Contains(h, "self-destruct in") {
			frames = append(frames, h)
		}
	}
	if len(frames) != 6 {
		t.Fatalf("Expected exactly 6 countdown frames, got %d: %q", len(frames), frames)
	}
	for i, frame := range frames {
		want := fmt.Sprintf(constant.CountdownFormat, 5-i)
		if !strings.Contains(frame, want) {
			t.Errorf("Frame %d: expected %q in %q", i, want, frame)
		}
		if !strings.HasPrefix(frame, "Good morning, Ada!") {
			t.Errorf("Frame %d lost the original message: %q", i, frame)
		}
	}

	last := history[len(history)-1]
	secondLast := history[len(history)-2]
	if secondLast != constant.DestructionMarker {
		t.Errorf("Expected destruction marker render, got %q", secondLast)
	}
	if last != "" {
		t.Errorf("Expected final wipe render, got %q", last)
	}
}

func TestCountdownFrameSpacing(t *testing.T) {
	seq, msg, _, sched := newTestSequencer()
	msg.SetMessage("hi")

	seq.Arm()
	if got := msg.Message(); !strings.Contains(got, fmt.Sprintf(constant.CountdownFormat, 5)) {
		t.Fatalf("Expected first frame at arm time, got %q", got)
	}

	for n := 4; n >= 0; n-- {
		sched.Advance(constant.SelfDestructTickInterval)
		want := fmt.Sprintf(constant.CountdownFormat, n)
		if got := msg.Message(); !strings.Contains(got, want) {
			t.Fatalf("After 1s advance expected %q, got %q", want, got)
		}
	}
}

func TestDestroyedStateAndSound(t *testing.T) {
	seq, msg, player, sched := newTestSequencer()
	msg.SetMessage("hi")
	seq.Arm()

	// Through the full countdown to destruction
	sched.Advance(6 * time.Second)

	if seq.State() != StateDestroyed {
		t.Errorf("Expected destroyed state, got %v", seq.State())
	}
	if msg.Message() != constant.DestructionMarker {
		t.Errorf("Expected destruction marker, got %q", msg.Message())
	}
	if msg.State() != render.StateDestroyed {
		t.Errorf("Expected destroyed visual state, got %v", msg.State())
	}
	if got := player.CountOf(audio.SoundDestruction); got != 1 {
		t.Errorf("Expected exactly 1 destruction sound, got %d", got)
	}
}

func TestClearAfterDestroyed(t *testing.T) {
	seq, msg, _, sched := newTestSequencer()
	msg.SetMessage("hi")
	seq.Arm()

	sched.Advance(6 * time.Second)
	// Not yet cleared before the clear delay elapses
	sched.Advance(constant.SelfDestructClearDelay - time.Millisecond)
	if msg.Message() != constant.DestructionMarker {
		t.Error("Message cleared before the clear delay")
	}

	sched.Advance(time.Millisecond)
	if msg.Message() != "" {
		t.Errorf("Expected wiped message, got %q", msg.Message())
	}
	if msg.State() != render.StateNeutral {
		t.Errorf("Expected neutral state after wipe, got %v", msg.State())
	}
	if seq.State() != StateCleared {
		t.Errorf("Expected cleared state, got %v", seq.State())
	}
}

func TestArmWhileActiveIgnored(t *testing.T) {
	seq, msg, _, sched := newTestSequencer()
	msg.SetMessage("first")
	seq.Arm()

	sched.Advance(2 * time.Second)
	msg.SetMessage("second") // Simulates outside interference
	seq.Arm()                // Must not restart the countdown

	sched.Advance(time.Second)
	if got := msg.Message(); !strings.HasPrefix(got, "first") {
		t.Errorf("Re-arm restarted the countdown with new content: %q", got)
	}
}

func TestSequencerReusableAfterClear(t *testing.T) {
	seq, msg, player, sched := newTestSequencer()
	msg.SetMessage("one")
	seq.Arm()
	sched.Advance(10 * time.Second)

	msg.SetMessage("two")
	seq.Arm()
	sched.Advance(10 * time.Second)

	if got := player.CountOf(audio.SoundDestruction); got != 2 {
		t.Errorf("Expected 2 destruction sounds over 2 runs, got %d", got)
	}
	if msg.Message() != "" {
		t.Errorf("Expected wiped message after second run, got %q", msg.Message())
	}
}
