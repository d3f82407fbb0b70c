// Package sequence implements the self-destruct countdown: a timer-driven
// state machine that appends a live countdown to the displayed message,
// replaces it with a destruction marker, and finally wipes it.
package sequence

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/greetburst/audio"
	"github.com/lixenwraith/greetburst/constant"
	"github.com/lixenwraith/greetburst/render"
	"github.com/lixenwraith/greetburst/schedule"
)

// State is the sequencer's lifecycle state.
type State uint8

const (
	StateIdle State = iota
	StateArmed
	StateCounting
	StateDestroyed
	StateCleared
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateCounting:
		return "counting"
	case StateDestroyed:
		return "destroyed"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Sequencer runs the countdown against the message region. Once armed, the
// sequence always runs to completion; there is no cancellation.
type Sequencer struct {
	mu        sync.Mutex
	state     State
	remaining int
	original  string

	msg    render.MessageRegion
	player audio.Player
	sched  schedule.Scheduler
	log    zerolog.Logger
}

// NewSequencer creates an idle sequencer.
func NewSequencer(msg render.MessageRegion, player audio.Player, sched schedule.Scheduler, log zerolog.Logger) *Sequencer {
	return &Sequencer{
		state:  StateIdle,
		msg:    msg,
		player: player,
		sched:  sched,
		log:    log,
	}
}

// State returns the current lifecycle state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Arm captures the currently rendered message verbatim and starts the
// countdown at its full duration. Arming while a sequence is active is
// ignored.
func (s *Sequencer) Arm() {
	s.mu.Lock()
	if s.state != StateIdle && s.state != StateCleared {
		s.log.Debug().Stringer("state", s.state).Msg("self-destruct already active, arm ignored")
		s.mu.Unlock()
		return
	}
	s.state = StateArmed
	s.original = s.msg.Message()
	s.remaining = constant.SelfDestructSeconds

	// Armed is transient: counting begins immediately with the first frame.
	s.state = StateCounting
	s.renderFrameLocked()
	s.mu.Unlock()

	s.log.Debug().Int("seconds", constant.SelfDestructSeconds).Msg("self-destruct armed")
	s.sched.AfterFunc(constant.SelfDestructTickInterval, s.tick)
}

// tick advances the countdown by one second.
func (s *Sequencer) tick() {
	s.mu.Lock()
	if s.state != StateCounting {
		s.mu.Unlock()
		return
	}
	s.remaining--
	if s.remaining >= 0 {
		s.renderFrameLocked()
		s.mu.Unlock()
		s.sched.AfterFunc(constant.SelfDestructTickInterval, s.tick)
		return
	}
	s.state = StateDestroyed
	s.mu.Unlock()

	s.msg.SetMessage(constant.DestructionMarker)
	s.msg.SetState(render.StateDestroyed)
	if s.player != nil {
		s.player.Play(audio.SoundDestruction)
	}
	s.sched.AfterFunc(constant.SelfDestructClearDelay, s.clear)
}

// clear wipes the message back to neutral.
func (s *Sequencer) clear() {
	s.mu.Lock()
	s.state = StateCleared
	s.mu.Unlock()

	s.msg.Clear()
	s.log.Debug().Msg("self-destruct sequence complete")
}

// renderFrameLocked re-renders the preserved message with the countdown
// line appended. Caller holds the mutex.
func (s *Sequencer) renderFrameLocked() {
	s.msg.SetMessage(s.original + "\n" + fmt.Sprintf(constant.CountdownFormat, s.remaining))
}
