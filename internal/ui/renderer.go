package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/geom"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	NetChar    = '|'
)

// Renderer draws a session onto the terminal. It owns the visual
// effects (scoreboard flash, prompt pulse) so they survive across
// frames, and maps every session state to its screen.
type Renderer struct {
	screen *Screen
	cfg    *config.Config
	flash  *Flash
	prompt *Pulse
}

// NewRenderer creates a renderer for the given screen and player
// configuration.
func NewRenderer(screen *Screen, cfg *config.Config) *Renderer {
	return &Renderer{
		screen: screen,
		cfg:    cfg,
		flash:  NewFlash(tcell.ColorYellow, tcell.ColorDarkGray, 0.6),
		prompt: NewPulse(tcell.ColorGreen, tcell.ColorDarkGreen, 1.6),
	}
}

// Advance moves the visual effects forward by dt seconds; call once
// per frame before Render.
func (r *Renderer) Advance(dt float64) {
	r.flash.Update(dt)
	r.prompt.Update(dt)
}

// FlashScore lights the scoreboard up; call when a point lands.
func (r *Renderer) FlashScore() {
	r.flash.Trigger()
}

// Render draws the screen for the session's current state.
func (r *Renderer) Render(s *game.Session) {
	r.screen.Clear()

	switch s.State {
	case game.StateTitle:
		r.renderTitle()
	case game.StateServe:
		r.renderCourt(s)
		r.renderCard(fmt.Sprintf("%s SCORES!", r.name(s.LastScorer)), r.sideStyle(s.LastScorer),
			fmt.Sprintf("Press %s to serve", strings.ToUpper(r.cfg.Keys.Serve)))
	case game.StatePlaying:
		r.renderCourt(s)
		r.renderStatusBar(s)
	case game.StatePaused:
		r.renderCourt(s)
		r.renderCard("PAUSED", tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true),
			fmt.Sprintf("Press %s to resume", strings.ToUpper(r.cfg.Keys.Pause)))
	case game.StateOver:
		r.renderOver(s)
	}

	r.screen.Show()
}

// renderTitle displays the title screen
func (r *Renderer) renderTitle() {
	_, screenH := r.screen.Size()

	title := "=== TERMPONG ==="
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	r.drawCentered(screenH/2-6, title, titleStyle)

	matchup := fmt.Sprintf("%s vs %s", r.cfg.LeftName, r.cfg.RightName)
	r.drawCentered(screenH/2-4, matchup, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	k := r.cfg.Keys
	controls := []string{
		fmt.Sprintf("Left paddle:  %s up, %s down", strings.ToUpper(k.LeftUp), strings.ToUpper(k.LeftDown)),
		fmt.Sprintf("Right paddle: %s up, %s down", strings.ToUpper(k.RightUp), strings.ToUpper(k.RightDown)),
		fmt.Sprintf("%s pause, %s reset", strings.ToUpper(k.Pause), strings.ToUpper(k.Reset)),
	}
	controlStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, line := range controls {
		r.drawCentered(screenH/2-1+i, line, controlStyle)
	}

	start := fmt.Sprintf("Press %s to start", strings.ToUpper(k.Serve))
	r.drawCentered(screenH/2+4, start, tcell.StyleDefault.Foreground(r.prompt.Color()))

	quitText := "Press 'q' to quit"
	r.drawCentered(screenH-2, quitText, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// renderCourt draws the scoreboard, net, paddles and ball. The court
// occupies the rows between the scoreboard and the bottom status row,
// scaled from field units to cells.
func (r *Renderer) renderCourt(s *game.Session) {
	screenW, screenH := r.screen.Size()

	scaleX := float64(screenW) / s.FieldW
	scaleY := float64(screenH-2) / s.FieldH

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, NetChar)
	}

	r.renderScoreboard(s, screenW)

	r.drawPaddle(s.Left.Rect, r.sideColor(game.SideLeft), scaleX, scaleY, screenH)
	r.drawPaddle(s.Right.Rect, r.sideColor(game.SideRight), scaleX, scaleY, screenH)

	ballX := int(s.Ball.Rect.CenterX() * scaleX)
	ballY := int(s.Ball.Rect.CenterY()*scaleY) + 1
	if ballX >= 0 && ballX < screenW && ballY >= 1 && ballY < screenH-1 {
		ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		r.screen.SetCell(ballX, ballY, ballStyle, BallChar)
	}
}

// drawPaddle maps a paddle rectangle to a vertical run of cells,
// clipped to the court rows.
func (r *Renderer) drawPaddle(rect geom.Rect, color tcell.Color, scaleX, scaleY float64, screenH int) {
	x := int(rect.CenterX() * scaleX)
	top := int(rect.Y*scaleY) + 1
	height := int(rect.H * scaleY)
	if height < 1 {
		height = 1
	}
	bottom := top + height - 1

	if top < 1 {
		top = 1
	}
	if bottom > screenH-2 {
		bottom = screenH - 2
	}
	if bottom < top {
		return
	}
	style := tcell.StyleDefault.Foreground(color)
	r.screen.DrawVerticalLine(x, top, bottom, style, PaddleChar)
}

// renderScoreboard draws a stadium-style scoreboard at top center. The
// background rides the score flash, so it lights up when a point lands
// and fades back to gray.
func (r *Renderer) renderScoreboard(s *game.Session, screenW int) {
	text := FormatScore(r.cfg.LeftName, r.cfg.RightName, s.Left.Score, s.Right.Score, screenW)
	x := (screenW - MeasureText(text)) / 2
	style := tcell.StyleDefault.Background(r.flash.Color()).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText(x, 0, text, style)
}

// FormatScore renders the scoreboard line, degrading when the terminal
// is too narrow: full names first, bare scores next, a dash when even
// those cannot fit.
func FormatScore(leftName, rightName string, leftScore, rightScore, maxWidth int) string {
	full := fmt.Sprintf("[ %s %d - %d %s ]", leftName, leftScore, rightScore, rightName)
	if MeasureText(full) <= maxWidth {
		return full
	}
	short := fmt.Sprintf("%d - %d", leftScore, rightScore)
	if MeasureText(short) <= maxWidth {
		return short
	}
	return "-"
}

// renderCard draws a boxed message over the court: a headline and a
// pulsing prompt underneath.
func (r *Renderer) renderCard(headline string, headlineStyle tcell.Style, prompt string) {
	screenW, screenH := r.screen.Size()

	boxW := MeasureText(headline) + 8
	if w := MeasureText(prompt) + 8; w > boxW {
		boxW = w
	}
	if boxW < 30 {
		boxW = 30
	}
	boxH := 7
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, fillStyle, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.drawCentered(boxY+2, headline, headlineStyle)

	promptStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(r.prompt.Color())
	r.drawCentered(boxY+4, prompt, promptStyle)
}

// renderOver displays the match result screen
func (r *Renderer) renderOver(s *game.Session) {
	_, screenH := r.screen.Size()

	title := "=== MATCH OVER ==="
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	r.drawCentered(screenH/2-4, title, titleStyle)

	scoreText := fmt.Sprintf("Final score: %d - %d", s.Left.Score, s.Right.Score)
	r.drawCentered(screenH/2-1, scoreText, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	winner := s.Winner()
	winText := fmt.Sprintf("%s WINS!", r.name(winner))
	r.drawCentered(screenH/2+1, winText, r.sideStyle(winner).Background(tcell.ColorDefault))

	rematch := fmt.Sprintf("Press %s for rematch | 'q' to quit", strings.ToUpper(r.cfg.Keys.Serve))
	r.drawCentered(screenH/2+4, rematch, tcell.StyleDefault.Foreground(r.prompt.Color()))
}

// renderStatusBar fills the bottom row with the controls and the goal
// of the match.
func (r *Renderer) renderStatusBar(s *game.Session) {
	screenW, screenH := r.screen.Size()
	statusY := screenH - 1

	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}

	goal := "endless match"
	if s.WinScore > 0 {
		goal = fmt.Sprintf("first to %d wins", s.WinScore)
	}
	k := r.cfg.Keys
	statusText := fmt.Sprintf(" %s/%s and %s/%s move | %s to pause | %s",
		strings.ToUpper(k.LeftUp), strings.ToUpper(k.LeftDown),
		strings.ToUpper(k.RightUp), strings.ToUpper(k.RightDown),
		strings.ToUpper(k.Pause), goal)
	r.screen.DrawText(0, statusY, statusText, statusStyle)
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	screenW, _ := r.screen.Size()
	r.screen.DrawText((screenW-MeasureText(text))/2, y, text, style)
}

func (r *Renderer) name(side game.Side) string {
	if side == game.SideLeft {
		return r.cfg.LeftName
	}
	return r.cfg.RightName
}

func (r *Renderer) sideColor(side game.Side) tcell.Color {
	if side == game.SideLeft {
		return tcell.ColorRed
	}
	return tcell.ColorBlue
}

func (r *Renderer) sideStyle(side game.Side) tcell.Style {
	return tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(r.sideColor(side)).Bold(true)
}
