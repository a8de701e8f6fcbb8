package game

import "github.com/diegok/termpong/internal/geom"

// Player is one paddle and its score. Two instances exist for the
// session's lifetime and are mutated in place.
type Player struct {
	Rect  geom.Rect
	Score int
}

// NewPlayer creates a paddle at the given x, vertically centered on
// the field.
func NewPlayer(x, fieldH float64) *Player {
	return &Player{
		Rect: geom.NewRect(x, (fieldH-PaddleHeight)/2, PaddleWidth, PaddleHeight),
	}
}

// Move shifts the paddle vertically by dy. A move that would push any
// part of the paddle outside the field is rejected whole; there is no
// partial clamp.
func (p *Player) Move(dy, fieldH float64) {
	y := p.Rect.Y + dy
	if y < 0 || y+p.Rect.H > fieldH {
		return
	}
	p.Rect.Y = y
}
