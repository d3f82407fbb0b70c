// Package flow orchestrates a full greeting run: input validation, the
// processing lock, preference persistence, the concurrent quote and
// translation lookups, message composition, the particle burst, and the
// delayed self-destruct arm. One run owns the lock from start until the
// cooldown timer releases it.
package flow

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/greetburst/constant"
	"github.com/lixenwraith/greetburst/greeting"
	"github.com/lixenwraith/greetburst/quote"
	"github.com/lixenwraith/greetburst/render"
	"github.com/lixenwraith/greetburst/schedule"
	"github.com/lixenwraith/greetburst/store"
)

// QuoteFetcher supplies the enrichment quote for a run.
type QuoteFetcher interface {
	Fetch(ctx context.Context) quote.Quote
}

// EffectTrigger fires one particle burst family.
type EffectTrigger interface {
	TriggerConfetti()
	TriggerFireworks()
}

// Armer starts the self-destruct countdown.
type Armer interface {
	Arm()
}

// User-facing notices.
const (
	NoticeEmptyName = "Please enter your name first."
	NoticeBusy      = "Hold on, the previous greeting is still running."
	NoticeFailure   = "Something went wrong. Please try again."
)

// Orchestrator runs the greeting flow. All collaborators are injected; the
// orchestrator owns only the processing lock and the random source.
type Orchestrator struct {
	msg     render.MessageRegion
	notice  render.NoticeRegion
	prefs   store.Store
	quotes  QuoteFetcher
	effects EffectTrigger
	seq     Armer
	sched   schedule.Scheduler
	log     zerolog.Logger

	// The lock is generation-tagged so a stale cooldown timer from a
	// panicked run cannot release a later run's lock.
	mu      sync.Mutex
	busy    bool
	gen     uint64
	started time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewOrchestrator wires a flow orchestrator.
func NewOrchestrator(
	msg render.MessageRegion,
	notice render.NoticeRegion,
	prefs store.Store,
	quotes QuoteFetcher,
	effects EffectTrigger,
	seq Armer,
	sched schedule.Scheduler,
	log zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		msg:     msg,
		notice:  notice,
		prefs:   prefs,
		quotes:  quotes,
		effects: effects,
		seq:     seq,
		sched:   sched,
		log:     log,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Busy reports whether a run currently holds the processing lock.
func (o *Orchestrator) Busy() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.busy
}

// Run executes one greeting flow. The name is trimmed and validated before
// any state changes; a run that fails validation or finds the lock held
// only posts a notice. A panic anywhere in the flow posts a generic
// failure notice and releases the lock immediately.
func (o *Orchestrator) Run(ctx context.Context, rawName string, confetti bool) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		o.notice.SetNotice(NoticeEmptyName)
		return
	}

	token, ok := o.acquire()
	if !ok {
		o.notice.SetNotice(NoticeBusy)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			o.log.Error().Interface("panic", r).Msg("greeting flow panicked")
			o.notice.SetNotice(NoticeFailure)
			o.release(token)
		}
	}()

	o.notice.ClearNotice()

	// Returning status is judged on the count as stored before this run.
	returning := o.prefs.VisitCount() > constant.ReturningVisitThreshold

	o.prefs.SetName(name)
	o.prefs.SetEffectPreference(confetti)
	visits := o.prefs.IncrementVisits()
	o.prefs.SetLastVisit(o.sched.Now())

	var (
		q  quote.Quote
		tr greeting.Translation
	)
	// errgroup does not carry goroutine panics back to Wait, so each branch
	// converts its own panic into an error to reach the failure path.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("quote fetch panicked: %v", r)
			}
		}()
		q = o.quotes.Fetch(gctx)
		return nil
	})
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("translation pick panicked: %v", r)
			}
		}()
		tr = o.pickTranslation()
		return nil
	})
	if err := g.Wait(); err != nil {
		o.log.Error().Err(err).Msg("greeting lookup failed")
		o.notice.SetNotice(NoticeFailure)
		o.release(token)
		return
	}

	var line string
	if returning {
		line = o.welcomeBack(name, tr)
	} else {
		line = greeting.FirstVisit(o.sched.Now().Hour(), name, tr)
	}

	o.msg.SetState(render.StateNeutral)
	o.msg.SetMessage(line + "\n" + fmt.Sprintf("%q - %s", q.Text, q.Author))

	if confetti {
		o.effects.TriggerConfetti()
	} else {
		o.effects.TriggerFireworks()
	}

	o.sched.AfterFunc(constant.SelfDestructArmDelay, o.seq.Arm)
	o.sched.AfterFunc(constant.FlowCooldown, func() { o.release(token) })

	o.log.Info().
		Str("name", name).
		Bool("returning", returning).
		Int("visits", visits).
		Bool("confetti", confetti).
		Msg("greeting delivered")
}

// acquire takes the processing lock, returning its generation token.
func (o *Orchestrator) acquire() (uint64, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.busy {
		return 0, false
	}
	o.busy = true
	o.gen++
	o.started = o.sched.Now()
	return o.gen, true
}

// release drops the lock if token still identifies the active run.
func (o *Orchestrator) release(token uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.busy || o.gen != token {
		return
	}
	o.busy = false
	o.log.Debug().Dur("held", o.sched.Now().Sub(o.started)).Msg("flow lock released")
}

func (o *Orchestrator) pickTranslation() greeting.Translation {
	o.rngMu.Lock()
	defer o.rngMu.Unlock()
	return greeting.PickTranslation(o.rng)
}

func (o *Orchestrator) welcomeBack(name string, tr greeting.Translation) string {
	o.rngMu.Lock()
	defer o.rngMu.Unlock()
	return greeting.WelcomeBack(o.rng, name, tr)
}
