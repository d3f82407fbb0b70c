// Package effect creates and retires the two particle burst families:
// confetti (single wave) and fireworks (staggered multi-burst with
// secondary sparks). Bursts are fire-and-forget: every element and timer
// is scheduled at trigger time and the burst's container is hard-cleared
// on a fixed delay regardless of individual particle state.
package effect

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/greetburst/audio"
	"github.com/lixenwraith/greetburst/constant"
	"github.com/lixenwraith/greetburst/render"
	"github.com/lixenwraith/greetburst/schedule"
)

// Container names, one per effect family. Containers persist across bursts.
const (
	ContainerConfetti  = "confetti"
	ContainerFireworks = "fireworks"
)

// Generator triggers particle bursts onto a stage.
type Generator struct {
	stage  render.Stage
	player audio.Player
	sched  schedule.Scheduler
	log    zerolog.Logger

	// Shell and spark parameters are randomized from timer goroutines.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a burst generator.
func NewGenerator(stage render.Stage, player audio.Player, sched schedule.Scheduler, log zerolog.Logger) *Generator {
	return &Generator{
		stage:  stage,
		player: player,
		sched:  sched,
		log:    log,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// TriggerConfetti spawns one confetti wave: a single batch of pieces with
// randomized positions, delays, colors and tumbles, one composite sound at
// burst start, and a hard container clear after a fixed delay.
func (g *Generator) TriggerConfetti() {
	c := g.stage.Container(ContainerConfetti)
	now := g.sched.Now()

	for i := 0; i < constant.ConfettiCount; i++ {
		c.Spawn(render.Particle{
			Kind:     render.KindConfetti,
			OriginX:  g.unit(),
			Color:    g.color(),
			Delay:    g.durationUpTo(constant.ConfettiMaxDelay),
			Spin:     g.between(0.5, 3.0),
			Lifetime: constant.ConfettiFallTime,
			Born:     now,
		})
	}

	// Composite burst sound: tone plus noise rustle, once per wave
	g.playSound(audio.SoundPop)
	g.playSound(audio.SoundRustle)

	g.sched.AfterFunc(constant.ConfettiClearDelay, c.Clear)
	g.log.Debug().Int("pieces", constant.ConfettiCount).Msg("confetti burst")
}

// TriggerFireworks launches the shell salvo with a fixed stagger and
// schedules the hard container clear from burst start. The clear delay is
// fixed even though some spark lifetimes could outlive it.
func (g *Generator) TriggerFireworks() {
	c := g.stage.Container(ContainerFireworks)

	for i := 0; i < constant.FireworkShellCount; i++ {
		g.sched.AfterFunc(time.Duration(i)*constant.FireworkShellStagger, func() {
			g.launchShell(c)
		})
	}

	g.sched.AfterFunc(constant.FireworkClearDelay, c.Clear)
	g.log.Debug().Int("shells", constant.FireworkShellCount).Msg("fireworks burst")
}

// launchShell spawns one shell at a random position and fuses its
// explosion.
func (g *Generator) launchShell(c render.Container) {
	x := g.unit()
	burstY := g.between(constant.FireworkBurstMinY, constant.FireworkBurstMaxY)

	el := c.Spawn(render.Particle{
		Kind:     render.KindShell,
		OriginX:  x,
		OriginY:  burstY,
		Color:    g.color(),
		Lifetime: constant.FireworkShellLifetime,
		Born:     g.sched.Now(),
	})

	g.sched.AfterFunc(constant.FireworkFuseDelay, func() {
		g.explodeShell(c, x, burstY)
	})
	g.sched.AfterFunc(constant.FireworkShellLifetime, el.Remove)
}

// explodeShell produces the primary radial spark pattern and fuses the
// secondary burst.
func (g *Generator) explodeShell(c render.Container, x, y float64) {
	g.playSound(audio.SoundExplosion)
	now := g.sched.Now()

	for i := 0; i < constant.FireworkPrimaryCount; i++ {
		angle := float64(i)/constant.FireworkPrimaryCount*2*math.Pi +
			g.between(-constant.FireworkAngleJitter/2, constant.FireworkAngleJitter/2)

		el := c.Spawn(render.Particle{
			Kind:     render.KindPrimarySpark,
			OriginX:  x,
			OriginY:  y,
			Color:    g.color(),
			Angle:    angle,
			Distance: g.between(constant.FireworkPrimaryMinDist, constant.FireworkPrimaryMaxDist),
			Lifetime: constant.FireworkPrimaryLife,
			Born:     now,
		})
		g.sched.AfterFunc(constant.FireworkPrimaryLife, el.Remove)
	}

	g.sched.AfterFunc(constant.FireworkSecondaryDelay, func() {
		g.secondaryBurst(c, x, y)
	})
}

// secondaryBurst produces the smaller, fully random follow-up sparks.
func (g *Generator) secondaryBurst(c render.Container, x, y float64) {
	g.playSound(audio.SoundCrackle)
	now := g.sched.Now()

	for i := 0; i < constant.FireworkSecondaryCount; i++ {
		el := c.Spawn(render.Particle{
			Kind:     render.KindSecondarySpark,
			OriginX:  x,
			OriginY:  y,
			Color:    g.color(),
			Angle:    g.between(0, 2*math.Pi),
			Distance: g.between(constant.FireworkSecondaryMinDist, constant.FireworkSecondaryMaxDist),
			Lifetime: constant.FireworkSecondaryLife,
			Born:     now,
		})
		g.sched.AfterFunc(constant.FireworkSecondaryLife, el.Remove)
	}
}

func (g *Generator) playSound(st audio.SoundType) {
	if g.player != nil {
		g.player.Play(st)
	}
}

func (g *Generator) unit() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *Generator) between(min, max float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return min + g.rng.Float64()*(max-min)
}

func (g *Generator) durationUpTo(max time.Duration) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return time.Duration(g.rng.Float64() * float64(max))
}

func (g *Generator) color() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return constant.ConfettiPalette[g.rng.Intn(len(constant.ConfettiPalette))]
}
