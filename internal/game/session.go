package game

// Constants fixing the shape of a match. The simulation runs in a
// fixed 800x600 unit space regardless of terminal size; the renderer
// scales on the way out.
const (
	FieldWidth  = 800.0
	FieldHeight = 600.0

	PaddleWidth  = 5.0
	PaddleHeight = 40.0
	PaddleOffset = 20.0 // gap between a paddle and its field edge
	PaddleSpeed  = 420.0

	BallSize  = 10.0
	BallSpeed = 500.0

	// BounceAngleLimit caps how far from horizontal a paddle hit can
	// deflect the ball, as a fraction of a right angle. 2/3 keeps the
	// steepest return at 60 degrees.
	BounceAngleLimit = 2.0 / 3.0
)

// Session owns one match worth of mutable state: both paddles, the
// ball, the scores and the state machine. Nothing is process-global,
// so sessions can run side by side and tests stay deterministic.
type Session struct {
	FieldW, FieldH float64

	Left  *Player
	Right *Player
	Ball  *Ball

	State      State
	WinScore   int // points needed to take the match, 0 for endless
	LastScorer Side
}

// NewSession creates a session on the standard field, idle on the
// title screen. winScore is the points needed to win; 0 plays an
// endless match.
func NewSession(winScore int) *Session {
	s := &Session{
		FieldW:   FieldWidth,
		FieldH:   FieldHeight,
		WinScore: winScore,
	}
	s.Left = NewPlayer(PaddleOffset, s.FieldH)
	s.Right = NewPlayer(s.FieldW-PaddleOffset-PaddleWidth, s.FieldH)
	s.Ball = NewBall(s.FieldW, s.FieldH)
	s.State = StateTitle
	return s
}

// Update advances the session by one frame: dt seconds of elapsed time
// plus one snapshot of the player keys. It returns the ball events the
// frame produced so the caller can map them to sounds and effects.
func (s *Session) Update(dt float64, in Input) []Event {
	if in.Reset {
		s.Reset()
		return nil
	}

	switch s.State {
	case StateTitle, StateServe:
		if in.Serve {
			s.serve()
		}
	case StateOver:
		if in.Serve {
			s.Left.Score = 0
			s.Right.Score = 0
			s.serve()
		}
	case StatePaused:
		if in.Pause {
			s.State = StatePlaying
		}
	case StatePlaying:
		if in.Pause {
			s.State = StatePaused
			return nil
		}
		s.movePaddles(dt, in)
		events, _ := s.stepBall(dt)
		return events
	}
	return nil
}

// movePaddles applies the held movement keys. Opposite keys cancel and
// the net move is all-or-nothing against the field bounds.
func (s *Session) movePaddles(dt float64, in Input) {
	var left, right float64
	if in.LeftUp {
		left -= PaddleSpeed * dt
	}
	if in.LeftDown {
		left += PaddleSpeed * dt
	}
	if in.RightUp {
		right -= PaddleSpeed * dt
	}
	if in.RightDown {
		right += PaddleSpeed * dt
	}
	if left != 0 {
		s.Left.Move(left, s.FieldH)
	}
	if right != 0 {
		s.Right.Move(right, s.FieldH)
	}
}

// serve returns the paddles to their posts and launches a fresh ball.
func (s *Session) serve() {
	s.resetPositions()
	s.resetBall()
	s.State = StatePlaying
}

// resetPositions re-centers both paddles vertically at their fixed
// horizontal posts.
func (s *Session) resetPositions() {
	s.Left.Rect.Y = (s.FieldH - s.Left.Rect.H) / 2
	s.Right.Rect.Y = (s.FieldH - s.Right.Rect.H) / 2
}

// resetBall replaces the ball: centered, moving toward the left paddle.
func (s *Session) resetBall() {
	s.Ball = NewBall(s.FieldW, s.FieldH)
}

// Reset wipes the session back to the title screen: scores zeroed,
// paddles and ball repositioned.
func (s *Session) Reset() {
	s.Left.Score = 0
	s.Right.Score = 0
	s.resetPositions()
	s.resetBall()
	s.State = StateTitle
}

// Winner names the side that took the match. Only meaningful in
// StateOver.
func (s *Session) Winner() Side {
	if s.Left.Score > s.Right.Score {
		return SideLeft
	}
	return SideRight
}

func (s *Session) player(side Side) *Player {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}
