package game

// maxFrameEvents bounds the resolve loop within a single frame. A ball
// can legitimately bounce several times in one frame at high speed or
// after a stall, but past this many events something is wrong and the
// frame bails out rather than spin.
const maxFrameEvents = 16

// stepBall advances the ball through one frame of budget seconds,
// resolving collision events in time order until the budget is spent.
// Each iteration asks for the earliest upcoming event: if it lands
// beyond the remaining budget the ball coasts to the frame boundary,
// otherwise the ball advances exactly to the event, the event is
// resolved with the new velocity, and the loop continues on the
// remaining time. A score ends the frame immediately.
//
// It returns the resolved events in order plus any unspent budget, so
// callers and tests can check that time is conserved.
func (s *Session) stepBall(budget float64) ([]Event, float64) {
	var events []Event
	for i := 0; i < maxFrameEvents; i++ {
		kind, t := s.nextEvent()
		if t > budget {
			s.Ball.Advance(budget)
			return events, 0
		}
		s.Ball.Advance(t)
		budget -= t

		ev := s.resolve(kind)
		events = append(events, ev)
		if ev.IsScore() {
			s.onScore(ev.Scorer())
			return events, budget
		}
	}
	return events, budget
}

// resolve applies the outcome of an event the ball has just reached.
// The ball is snapped exactly onto the boundary it hit before the
// bounce, so accumulated float error cannot leave it embedded in a
// wall or paddle.
func (s *Session) resolve(kind eventKind) Event {
	switch kind {
	case kindScore:
		return s.resolveScore()
	case kindWall:
		return s.resolveWall()
	default:
		return s.resolvePaddle()
	}
}

func (s *Session) resolveWall() Event {
	if s.Ball.Vel.Y < 0 {
		s.Ball.Rect.Y = 0
		s.Ball.BounceVertical()
		return EventWallTop
	}
	s.Ball.Rect.Y = s.FieldH - s.Ball.Rect.H
	s.Ball.BounceVertical()
	return EventWallBottom
}

func (s *Session) resolvePaddle() Event {
	if s.Ball.Vel.X < 0 {
		s.Ball.Rect.X = s.Left.Rect.Right()
		s.Ball.BounceOffPaddle(s.Left.Rect)
		return EventPaddleLeft
	}
	s.Ball.Rect.X = s.Right.Rect.X - s.Ball.Rect.W
	s.Ball.BounceOffPaddle(s.Right.Rect)
	return EventPaddleRight
}

func (s *Session) resolveScore() Event {
	if s.Ball.Vel.X > 0 {
		s.Ball.Rect.X = s.FieldW - s.Ball.Rect.W
		return EventScoreLeft
	}
	s.Ball.Rect.X = 0
	return EventScoreRight
}

// onScore credits the point and decides what comes next: the win
// screen once a side reaches WinScore, otherwise a fresh serve. The
// paddles re-center but the dead ball stays visible at the edge until
// the serve replaces it.
func (s *Session) onScore(scorer Side) {
	p := s.player(scorer)
	p.Score++
	s.LastScorer = scorer
	s.resetPositions()
	if s.WinScore > 0 && p.Score >= s.WinScore {
		s.State = StateOver
		return
	}
	s.State = StateServe
}
