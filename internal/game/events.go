package game

import "math"

// Event identifies what the ball ran into during a frame step. Score
// events name the player who won the point, not the edge the ball
// crossed.
type Event int

const (
	EventWallTop Event = iota
	EventWallBottom
	EventPaddleLeft
	EventPaddleRight
	EventScoreLeft
	EventScoreRight
)

// IsScore reports whether the event ended the rally.
func (e Event) IsScore() bool {
	return e == EventScoreLeft || e == EventScoreRight
}

// Scorer returns the player a scoring event credits.
func (e Event) Scorer() Side {
	if e == EventScoreLeft {
		return SideLeft
	}
	return SideRight
}

// eventKind is a collision class, declared in tie-break order:
// simultaneous events resolve as score, then wall, then paddle. A ball
// that reaches a corner exactly scores rather than bouncing, and a
// ball that grazes a paddle face exactly at a wall bounces off the
// wall first and then reads the paddle as already passed.
type eventKind int

const (
	kindScore eventKind = iota
	kindWall
	kindPaddle
)

// nextEvent computes the time until each collision class and returns
// the earliest, breaking ties in eventKind order. Times are seconds at
// the ball's constant current velocity; classes that cannot happen on
// the current trajectory report +Inf.
func (s *Session) nextEvent() (eventKind, float64) {
	score := s.scoreTime()
	wall := s.wallTime()
	paddle := s.paddleTime()

	if score <= wall && score <= paddle {
		return kindScore, score
	}
	if wall <= paddle {
		return kindWall, wall
	}
	return kindPaddle, paddle
}

// scoreTime returns the seconds until the ball's leading edge reaches
// the field edge it is moving toward, or +Inf while it has no
// horizontal motion.
func (s *Session) scoreTime() float64 {
	switch {
	case s.Ball.Vel.X > 0:
		return math.Max(0, (s.FieldW-s.Ball.Rect.Right())/s.Ball.Vel.X)
	case s.Ball.Vel.X < 0:
		return math.Max(0, s.Ball.Rect.X/-s.Ball.Vel.X)
	}
	return math.Inf(1)
}

// wallTime returns the seconds until the ball's leading edge touches
// the top or bottom boundary, or +Inf while it is moving level.
func (s *Session) wallTime() float64 {
	switch {
	case s.Ball.Vel.Y < 0:
		return math.Max(0, s.Ball.Rect.Y/-s.Ball.Vel.Y)
	case s.Ball.Vel.Y > 0:
		return math.Max(0, (s.FieldH-s.Ball.Rect.Bottom())/s.Ball.Vel.Y)
	}
	return math.Inf(1)
}

// paddleTime returns the seconds until the ball's leading edge reaches
// the face of the paddle it is moving toward. It reports +Inf when the
// ball is moving away from (or already past) that face, and +Inf when
// the ball's vertical span, projected forward to the moment of impact,
// misses the paddle's span; that miss is what lets the ball fly on to
// the scoring edge. The overlap check is inclusive at the span edges,
// so an exact graze still counts as a hit and the bounce offset stays
// within [-1, 1].
func (s *Session) paddleTime() float64 {
	var dist, t float64
	var paddle *Player

	switch {
	case s.Ball.Vel.X > 0:
		paddle = s.Right
		dist = paddle.Rect.X - s.Ball.Rect.Right()
		t = dist / s.Ball.Vel.X
	case s.Ball.Vel.X < 0:
		paddle = s.Left
		dist = s.Ball.Rect.X - paddle.Rect.Right()
		t = dist / -s.Ball.Vel.X
	default:
		return math.Inf(1)
	}

	if dist <= 0 {
		return math.Inf(1)
	}

	yAtImpact := s.Ball.Rect.Y + s.Ball.Vel.Y*t
	if yAtImpact > paddle.Rect.Bottom() || yAtImpact+s.Ball.Rect.H < paddle.Rect.Y {
		return math.Inf(1)
	}
	return t
}
