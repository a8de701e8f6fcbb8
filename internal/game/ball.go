package game

import (
	"math"

	"github.com/diegok/termpong/internal/geom"
)

// Ball is the moving piece: a square bounding box plus a velocity in
// field units per second. A session holds exactly one and replaces it
// wholesale on every serve.
type Ball struct {
	Rect geom.Rect
	Vel  geom.Vec2
}

// NewBall returns a serve-ready ball: centered on the field and moving
// straight at the left paddle.
func NewBall(fieldW, fieldH float64) *Ball {
	return &Ball{
		Rect: geom.NewRect((fieldW-BallSize)/2, (fieldH-BallSize)/2, BallSize, BallSize),
		Vel:  geom.Vec2{X: -BallSpeed},
	}
}

// Advance moves the ball along its velocity for dt seconds.
func (b *Ball) Advance(dt float64) {
	d := b.Vel.Scale(dt)
	b.Rect.X += d.X
	b.Rect.Y += d.Y
}

// BounceVertical reverses vertical direction (wall bounce).
func (b *Ball) BounceVertical() {
	b.Vel.Y = -b.Vel.Y
}

// BounceOffPaddle recomputes the velocity from where the ball struck
// the paddle: a dead-center hit leaves horizontally, a hit at either
// end leaves at the full bounce angle limit, and everything between
// scales linearly. Speed is preserved and the horizontal direction
// always flips away from the struck paddle.
func (b *Ball) BounceOffPaddle(paddle geom.Rect) {
	diff := b.Rect.Y - paddle.Y
	offset := diff + b.Rect.H/2 - paddle.H/2
	norm := offset / (b.Rect.H/2 + paddle.H/2)

	angle := norm * (math.Pi / 2) * BounceAngleLimit
	speed := b.Vel.Len()

	vx := speed * math.Cos(angle)
	if b.Vel.X > 0 {
		vx = -vx
	}
	b.Vel = geom.Vec2{X: vx, Y: speed * math.Sin(angle)}
}
