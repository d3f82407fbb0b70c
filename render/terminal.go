package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/greetburst/constant"
)

const (
	// Horizontal/vertical scale for spark travel distances (px to cells).
	sparkScaleX = 10.0
	sparkScaleY = 20.0
)

var (
	confettiGlyphs       = []rune{'▪', '▮', '▰', '◆', '●', '▬'}
	primarySparkGlyphs   = []rune{'✺', '*', '+', '·'}
	secondarySparkGlyphs = []rune{'*', '·'}
)

// Terminal renders the message region, notices and live particles to a
// tcell screen. State mutation goes through the embedded memory surface;
// Draw is called by the frontend frame loop.
type Terminal struct {
	*MemoryMessage
	*MemoryStage

	screen tcell.Screen
	clock  func() time.Time
}

// NewTerminal creates a terminal surface over an initialized screen.
func NewTerminal(screen tcell.Screen, clock func() time.Time) *Terminal {
	return &Terminal{
		MemoryMessage: NewMemoryMessage(),
		MemoryStage:   NewMemoryStage(),
		screen:        screen,
		clock:         clock,
	}
}

// Draw renders one frame: particles, message, notice, and the input prompt.
func (t *Terminal) Draw(input, effectLabel string) {
	t.screen.Clear()
	w, h := t.screen.Size()
	if w < 1 || h < 1 {
		return
	}
	now := t.clock()

	for _, c := range t.All() {
		for _, p := range c.Particles() {
			t.drawParticle(p, now, w, h)
		}
	}

	t.drawMessage(w, h)
	t.drawPrompt(input, effectLabel, w, h)
	t.screen.Show()
}

func (t *Terminal) drawParticle(p Particle, now time.Time, w, h int) {
	switch p.Kind {
	case KindConfetti:
		t.drawConfetti(p, now, w, h)
	case KindShell:
		t.drawShell(p, now, w, h)
	case KindPrimarySpark, KindSecondarySpark:
		t.drawSpark(p, now, w, h)
	}
}

func (t *Terminal) drawConfetti(p Particle, now time.Time, w, h int) {
	age := now.Sub(p.Born) - p.Delay
	if age < 0 {
		return
	}
	progress := float64(age) / float64(constant.ConfettiFallTime)
	if progress > 1 {
		return
	}

	x := int(p.OriginX * float64(w-1))
	y := int(progress * float64(h-1))
	tumble := int(age.Seconds()*p.Spin*float64(len(confettiGlyphs))) % len(confettiGlyphs)

	style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(p.Color)))
	t.screen.SetContent(x, y, confettiGlyphs[tumble], nil, style)
}

func (t *Terminal) drawShell(p Particle, now time.Time, w, h int) {
	age := now.Sub(p.Born)
	if age >= constant.FireworkFuseDelay {
		// Exploded; the element lingers until its removal timer but is no
		// longer drawn.
		return
	}
	progress := float64(age) / float64(constant.FireworkFuseDelay)

	x := int(p.OriginX * float64(w-1))
	bottom := float64(h - 1)
	burstY := p.OriginY * float64(h-1)
	y := int(bottom - progress*(bottom-burstY))

	style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(p.Color))).Bold(true)
	t.screen.SetContent(x, y, '|', nil, style)
}

func (t *Terminal) drawSpark(p Particle, now time.Time, w, h int) {
	age := now.Sub(p.Born)
	if age < 0 {
		return
	}
	progress := float64(age) / float64(p.Lifetime)
	if progress > 1 {
		return
	}

	glyphs := primarySparkGlyphs
	dim := false
	if p.Kind == KindSecondarySpark {
		glyphs = secondarySparkGlyphs
		dim = true
	}

	dx := math.Cos(p.Angle) * p.Distance * progress / sparkScaleX
	dy := math.Sin(p.Angle) * p.Distance * progress / sparkScaleY
	x := int(p.OriginX*float64(w-1) + dx)
	y := int(p.OriginY*float64(h-1) + dy)
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}

	g := glyphs[int(progress*float64(len(glyphs)-1)+0.5)]
	style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(p.Color))).Dim(dim)
	t.screen.SetContent(x, y, g, nil, style)
}

func (t *Terminal) drawMessage(w, h int) {
	content := t.Message()
	state := t.State()
	if content == "" && t.Notice() == "" {
		return
	}

	style := tcell.StyleDefault.Bold(true)
	if state == StateDestroyed {
		style = style.Foreground(tcell.ColorRed).Blink(true)
	} else {
		style = style.Foreground(tcell.ColorWhite)
	}

	lines := splitLines(content)
	top := h/3 - len(lines)/2
	if top < 1 {
		top = 1
	}
	for i, line := range lines {
		drawCentered(t.screen, line, top+i, w, style)
	}

	if notice := t.Notice(); notice != "" {
		noticeStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		drawCentered(t.screen, notice, h-4, w, noticeStyle)
	}
}

func (t *Terminal) drawPrompt(input, effectLabel string, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	hint := "[Enter] greet  [Tab] effect: " + effectLabel + "  [Esc] quit"
	drawText(t.screen, hint, 1, h-1, style.Dim(true))
	drawText(t.screen, "Name: "+input+"▏", 1, h-2, style)
}

func drawCentered(s tcell.Screen, text string, y, w int, style tcell.Style) {
	runes := []rune(text)
	x := (w - len(runes)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range runes {
		if x+i >= w {
			break
		}
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawText(s tcell.Screen, text string, x, y int, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	return append(lines, content[start:])
}
