package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Flash is a one-shot color effect: Trigger snaps it to the accent
// color and it eases back to the base over the duration. While idle it
// sits on the base, so callers can use Color unconditionally.
type Flash struct {
	base     colorful.Color
	accent   colorful.Color
	duration float32
	tween    *gween.Tween
	t        float32 // blend position, 0 = accent, 1 = base
}

func NewFlash(accent, base tcell.Color, duration float32) *Flash {
	return &Flash{
		base:     toColorful(base),
		accent:   toColorful(accent),
		duration: duration,
		t:        1,
	}
}

func (f *Flash) Trigger() {
	f.tween = gween.New(0, 1, f.duration, ease.OutQuad)
	f.t = 0
}

func (f *Flash) Update(dt float64) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(float32(dt))
	f.t = v
	if done {
		f.tween = nil
		f.t = 1
	}
}

func (f *Flash) Active() bool {
	return f.tween != nil
}

func (f *Flash) Color() tcell.Color {
	return toTcell(f.accent.BlendRgb(f.base, float64(f.t)))
}

// Pulse swings between two colors forever, easing at both ends. It
// drives the "press X" prompts.
type Pulse struct {
	from    colorful.Color
	to      colorful.Color
	period  float32
	tween   *gween.Tween
	forward bool
	t       float32
}

func NewPulse(from, to tcell.Color, period float32) *Pulse {
	return &Pulse{
		from:    toColorful(from),
		to:      toColorful(to),
		period:  period,
		tween:   gween.New(0, 1, period/2, ease.InOutSine),
		forward: true,
	}
}

func (p *Pulse) Update(dt float64) {
	v, done := p.tween.Update(float32(dt))
	p.t = v
	if done {
		p.forward = !p.forward
		p.t = 0
		p.tween = gween.New(0, 1, p.period/2, ease.InOutSine)
	}
}

func (p *Pulse) Color() tcell.Color {
	t := p.t
	if !p.forward {
		t = 1 - t
	}
	return toTcell(p.from.BlendRgb(p.to, float64(t)))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	c = c.Clamped()
	return tcell.NewRGBColor(int32(c.R*255+0.5), int32(c.G*255+0.5), int32(c.B*255+0.5))
}
