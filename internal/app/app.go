package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/audio"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/ui"
)

const (
	// frameInterval paces the simulation and rendering at ~60fps.
	frameInterval = 16 * time.Millisecond

	// maxFrameTime caps a frame's simulated seconds, so a suspended or
	// stalled terminal does not come back as one enormous step.
	maxFrameTime = 0.25
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	tracker  *ui.Tracker
	session  *game.Session

	lastTick time.Time

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and runs the
// match until the players quit.
func (a *App) Run() error {
	tracker, err := ui.NewTracker(a.cfg.Keys)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}
	a.tracker = tracker

	// Initialize audio (ignore errors - game works without sound)
	if !a.cfg.Mute {
		_ = audio.Init()
	}

	// Initialize screen
	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, a.cfg)
	a.session = game.NewSession(a.cfg.PointsToWin)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	runErr := a.mainLoop()

	// Cleanup
	a.cleanup()

	return runErr
}

// mainLoop is the main event loop that handles all input and frame updates.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.lastTick = time.Now()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.tick()
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Quit keys always work
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.tracker.Handle(ev, time.Now())

	case *tcell.EventResize:
		// Handle resize by updating screen
		a.screen.Clear()
		a.renderer.Render(a.session)
	}

	return false
}

// tick advances the session by one wall-clock frame and renders it.
func (a *App) tick() {
	now := time.Now()
	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now
	if dt > maxFrameTime {
		dt = maxFrameTime
	}

	events := a.session.Update(dt, a.tracker.Snapshot(now))
	a.applyEvents(events)

	a.renderer.Advance(dt)
	a.renderer.Render(a.session)
}

// applyEvents maps the frame's ball events to sounds and effects. The
// session has already applied the events themselves, so a scoring
// event can ask it whether the point ended the whole match.
func (a *App) applyEvents(events []game.Event) {
	for _, ev := range events {
		switch {
		case ev == game.EventPaddleLeft || ev == game.EventPaddleRight:
			audio.PlayPaddleHit()
		case ev == game.EventWallTop || ev == game.EventWallBottom:
			audio.PlayWallBounce()
		case ev.IsScore():
			a.renderer.FlashScore()
			if a.session.State == game.StateOver {
				audio.PlayWin()
			} else {
				audio.PlayScore()
			}
		}
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	// Close audio
	audio.Close()

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	signal.Stop(a.sigChan)
}
