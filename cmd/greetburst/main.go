// Command greetburst runs the greeting widget in the terminal: type a
// name, press Enter, get a translated greeting with a quote, a particle
// burst, and a self-destructing message.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/greetburst/audio"
	"github.com/lixenwraith/greetburst/config"
	"github.com/lixenwraith/greetburst/constant"
	"github.com/lixenwraith/greetburst/effect"
	"github.com/lixenwraith/greetburst/flow"
	"github.com/lixenwraith/greetburst/quote"
	"github.com/lixenwraith/greetburst/render"
	"github.com/lixenwraith/greetburst/schedule"
	"github.com/lixenwraith/greetburst/sequence"
	"github.com/lixenwraith/greetburst/store"
)

const frameInterval = 33 * time.Millisecond // ~30 FPS

type app struct {
	screen  tcell.Screen
	surface *render.Terminal
	orch    *flow.Orchestrator
	prefs   store.Store
	synth   *audio.Synthesizer
	log     zerolog.Logger

	input    string
	confetti bool
}

func newApp(cfg config.Config, log zerolog.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	prefs, err := store.OpenSQLite(cfg.Store.Path, log)
	var st store.Store = prefs
	if err != nil {
		// Non-fatal, the session runs without persistence
		log.Warn().Err(err).Str("path", cfg.Store.Path).Msg("preference store unavailable, using memory")
		st = store.NewMemory()
	}

	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.MasterVolume = cfg.Audio.MasterVolume
	synth := audio.NewSynthesizer(audioCfg, log)

	sched := schedule.NewWall()
	surface := render.NewTerminal(screen, time.Now)
	quotes := quote.NewClient(cfg.Quote.URL, cfg.Quote.Timeout.Std(), cfg.Quote.PerMinute, log)
	effects := effect.NewGenerator(surface, synth, sched, log)
	seq := sequence.NewSequencer(surface, synth, sched, log)
	orch := flow.NewOrchestrator(surface, surface, st, quotes, effects, seq, sched, log)

	a := &app{
		screen:   screen,
		surface:  surface,
		orch:     orch,
		prefs:    st,
		synth:    synth,
		log:      log,
		confetti: st.EffectPreference(),
	}
	if name, ok := st.Name(); ok {
		a.input = name
	}
	return a, nil
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.surface.Draw(a.input, a.effectLabel())
		}
	}
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			name := a.input
			confetti := a.confetti
			go a.orch.Run(context.Background(), name, confetti)
		case tcell.KeyTab:
			a.confetti = !a.confetti
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if a.input != "" {
				runes := []rune(a.input)
				a.input = string(runes[:len(runes)-1])
			}
		case tcell.KeyRune:
			if len(a.input) < constant.MaxNameLength {
				a.input += string(ev.Rune())
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) effectLabel() string {
	if a.confetti {
		return "confetti"
	}
	return "fireworks"
}

func (a *app) cleanup() {
	if !a.synth.Silent() {
		speaker.Close()
	}
	if err := a.prefs.Close(); err != nil {
		a.log.Warn().Err(err).Msg("store close failed")
	}
	a.screen.Fini()
}

func setupLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	// The screen owns the terminal, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if cfg.File != "" {
		f, ferr := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if ferr == nil {
			out = f
		}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := setupLogger(cfg.Log)

	a, err := newApp(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	// A panic must not leave the terminal in raw mode or the store open;
	// os.Exit skips the deferred cleanup, so run it here first
	defer func() {
		if r := recover(); r != nil {
			a.cleanup()
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", r)
			os.Exit(1)
		}
	}()

	a.run()
}
