package game

import (
	"math"
	"testing"

	"github.com/diegok/termpong/internal/geom"
)

func TestBall_Advance(t *testing.T) {
	ball := NewBall(800.0, 600.0)
	ball.Rect.X = 100.0
	ball.Rect.Y = 200.0
	ball.Vel = geom.Vec2{X: 50.0, Y: -20.0}

	ball.Advance(0.5)

	if ball.Rect.X != 125.0 {
		t.Errorf("expected X=125.0, got %f", ball.Rect.X)
	}
	if ball.Rect.Y != 190.0 {
		t.Errorf("expected Y=190.0, got %f", ball.Rect.Y)
	}
}

func TestBall_Advance_ZeroTime(t *testing.T) {
	ball := NewBall(800.0, 600.0)
	x, y := ball.Rect.X, ball.Rect.Y

	ball.Advance(0)

	if ball.Rect.X != x || ball.Rect.Y != y {
		t.Errorf("expected position unchanged at (%f, %f), got (%f, %f)", x, y, ball.Rect.X, ball.Rect.Y)
	}
}

func TestBall_BounceVertical(t *testing.T) {
	ball := NewBall(800.0, 600.0)
	ball.Vel = geom.Vec2{X: 300.0, Y: 120.0}

	ball.BounceVertical()

	if ball.Vel.X != 300.0 {
		t.Errorf("expected VX=300.0 (unchanged), got %f", ball.Vel.X)
	}
	if ball.Vel.Y != -120.0 {
		t.Errorf("expected VY=-120.0, got %f", ball.Vel.Y)
	}
}

func TestBall_BounceOffPaddle_Center(t *testing.T) {
	// Ball dead-centered on the paddle bounces straight back.
	ball := NewBall(800.0, 600.0)
	paddle := geom.NewRect(20.0, 280.0, PaddleWidth, PaddleHeight)
	ball.Rect.X = paddle.Right()
	ball.Rect.Y = paddle.CenterY() - ball.Rect.H/2
	ball.Vel = geom.Vec2{X: -BallSpeed, Y: 0.0}

	ball.BounceOffPaddle(paddle)

	if ball.Vel.X <= 0 {
		t.Errorf("expected VX > 0 after left paddle hit, got %f", ball.Vel.X)
	}
	if math.Abs(ball.Vel.Y) > 1e-9 {
		t.Errorf("expected VY=0 for center hit, got %f", ball.Vel.Y)
	}
	if math.Abs(ball.Vel.Len()-BallSpeed) > 1e-9 {
		t.Errorf("expected speed preserved at %f, got %f", BallSpeed, ball.Vel.Len())
	}
}

func TestBall_BounceOffPaddle_TopEdge(t *testing.T) {
	// Grazing the top of the paddle sends the ball sharply upward.
	ball := NewBall(800.0, 600.0)
	paddle := geom.NewRect(20.0, 280.0, PaddleWidth, PaddleHeight)
	ball.Rect.X = paddle.Right()
	ball.Rect.Y = paddle.Y - ball.Rect.H // bottom edge of ball touches paddle top
	ball.Vel = geom.Vec2{X: -BallSpeed, Y: 0.0}

	ball.BounceOffPaddle(paddle)

	if ball.Vel.X <= 0 {
		t.Errorf("expected VX > 0 after left paddle hit, got %f", ball.Vel.X)
	}
	if ball.Vel.Y >= 0 {
		t.Errorf("expected VY < 0 for top edge hit, got %f", ball.Vel.Y)
	}

	// norm is -1 at the extreme, so the angle is the full 60 degree limit.
	wantVY := -BallSpeed * math.Sin(math.Pi/2*BounceAngleLimit)
	if math.Abs(ball.Vel.Y-wantVY) > 1e-9 {
		t.Errorf("expected VY=%f at max deflection, got %f", wantVY, ball.Vel.Y)
	}
}

func TestBall_BounceOffPaddle_BottomEdge(t *testing.T) {
	ball := NewBall(800.0, 600.0)
	paddle := geom.NewRect(775.0, 280.0, PaddleWidth, PaddleHeight)
	ball.Rect.X = paddle.X - ball.Rect.W
	ball.Rect.Y = paddle.Bottom() // top edge of ball touches paddle bottom
	ball.Vel = geom.Vec2{X: BallSpeed, Y: 0.0}

	ball.BounceOffPaddle(paddle)

	if ball.Vel.X >= 0 {
		t.Errorf("expected VX < 0 after right paddle hit, got %f", ball.Vel.X)
	}
	if ball.Vel.Y <= 0 {
		t.Errorf("expected VY > 0 for bottom edge hit, got %f", ball.Vel.Y)
	}
	if math.Abs(ball.Vel.Len()-BallSpeed) > 1e-9 {
		t.Errorf("expected speed preserved at %f, got %f", BallSpeed, ball.Vel.Len())
	}
}

func TestBall_BounceOffPaddle_AngleGrowsFromCenter(t *testing.T) {
	// The farther from paddle center the contact sits, the steeper the
	// deflection. Hits symmetric around the center deflect up vs down.
	paddle := geom.NewRect(20.0, 280.0, PaddleWidth, PaddleHeight)

	deflection := func(ballY float64) float64 {
		ball := NewBall(800.0, 600.0)
		ball.Rect.X = paddle.Right()
		ball.Rect.Y = ballY
		ball.Vel = geom.Vec2{X: -BallSpeed, Y: 0.0}
		ball.BounceOffPaddle(paddle)
		return ball.Vel.Y
	}

	center := paddle.CenterY() - BallSize/2
	prev := math.Abs(deflection(center))
	for _, off := range []float64{5.0, 10.0, 15.0, 20.0} {
		up := deflection(center - off)
		down := deflection(center + off)
		if up >= 0 {
			t.Errorf("offset -%f: expected upward VY, got %f", off, up)
		}
		if down <= 0 {
			t.Errorf("offset +%f: expected downward VY, got %f", off, down)
		}
		if math.Abs(up+down) > 1e-9 {
			t.Errorf("offset %f: expected symmetric deflection, got %f and %f", off, up, down)
		}
		if math.Abs(down) <= prev {
			t.Errorf("offset %f: expected deflection to grow, was %f now %f", off, prev, math.Abs(down))
		}
		prev = math.Abs(down)
	}
}

func TestBall_BounceOffPaddle_AlwaysReverses(t *testing.T) {
	// Horizontal direction flips no matter where the ball strikes,
	// even at the extreme edges where cos(angle) is smallest.
	paddle := geom.NewRect(20.0, 280.0, PaddleWidth, PaddleHeight)
	for _, ballY := range []float64{paddle.Y - BallSize, paddle.Y, paddle.CenterY(), paddle.Bottom() - BallSize, paddle.Bottom()} {
		ball := NewBall(800.0, 600.0)
		ball.Rect.X = paddle.Right()
		ball.Rect.Y = ballY
		ball.Vel = geom.Vec2{X: -BallSpeed, Y: 0.0}

		ball.BounceOffPaddle(paddle)

		if ball.Vel.X <= 0 {
			t.Errorf("ballY=%f: expected VX > 0 after bounce, got %f", ballY, ball.Vel.X)
		}
	}
}

func TestNewBall(t *testing.T) {
	ball := NewBall(800.0, 600.0)

	if ball.Rect.CenterX() != 400.0 {
		t.Errorf("expected center X=400.0, got %f", ball.Rect.CenterX())
	}
	if ball.Rect.CenterY() != 300.0 {
		t.Errorf("expected center Y=300.0, got %f", ball.Rect.CenterY())
	}
	if ball.Rect.W != BallSize || ball.Rect.H != BallSize {
		t.Errorf("expected %fx%f ball, got %fx%f", BallSize, BallSize, ball.Rect.W, ball.Rect.H)
	}
	if ball.Vel.X != -BallSpeed {
		t.Errorf("expected serve toward the left at VX=%f, got %f", -BallSpeed, ball.Vel.X)
	}
	if ball.Vel.Y != 0 {
		t.Errorf("expected horizontal serve with VY=0, got %f", ball.Vel.Y)
	}
}
