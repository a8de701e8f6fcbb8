package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
)

// HoldWindow is how long a movement key counts as held after its last
// press. Terminals report presses and autorepeats but never releases,
// so a key whose repeats stop arriving is treated as released once
// this window runs out.
const HoldWindow = 140 * time.Millisecond

type action int

const (
	actLeftUp action = iota
	actLeftDown
	actRightUp
	actRightDown
	actServe
	actPause
	actReset
	actionCount
)

var actionNames = [actionCount]string{
	"left up", "left down", "right up", "right down", "serve", "pause", "reset",
}

// Key identifies a concrete terminal key: a special tcell key, or
// KeyRune plus the rune itself.
type Key struct {
	Key  tcell.Key
	Rune rune
}

// specialKeys resolves binding names for keys that are not runes.
var specialKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
}

// runeAliases names runes that cannot stand alone in a config file.
var runeAliases = map[string]rune{
	"space": ' ',
}

// keyByName resolves a binding name from the config: a special key
// name, a rune alias, or a single character.
func keyByName(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := specialKeys[n]; ok {
		return Key{Key: k}, nil
	}
	if r, ok := runeAliases[n]; ok {
		return Key{Key: tcell.KeyRune, Rune: r}, nil
	}
	if runes := []rune(n); len(runes) == 1 {
		return Key{Key: tcell.KeyRune, Rune: runes[0]}, nil
	}
	return Key{}, fmt.Errorf("unknown key name %q", name)
}

// Tracker turns raw terminal key events into per-frame game input.
// Movement actions are level-triggered through the hold window; serve,
// pause and reset latch on a fresh press and are consumed by the next
// snapshot, so holding a key down does not refire them every repeat.
type Tracker struct {
	bindings  map[Key]action
	heldUntil [actionCount]time.Time
	latched   [actionCount]bool
}

// NewTracker resolves the configured bindings. Unknown key names and
// one key bound to two actions are errors.
func NewTracker(keys config.KeyConfig) (*Tracker, error) {
	named := []struct {
		act  action
		name string
	}{
		{actLeftUp, keys.LeftUp},
		{actLeftDown, keys.LeftDown},
		{actRightUp, keys.RightUp},
		{actRightDown, keys.RightDown},
		{actServe, keys.Serve},
		{actPause, keys.Pause},
		{actReset, keys.Reset},
	}

	t := &Tracker{bindings: make(map[Key]action, len(named))}
	for _, b := range named {
		k, err := keyByName(b.name)
		if err != nil {
			return nil, err
		}
		if prev, dup := t.bindings[k]; dup {
			return nil, fmt.Errorf("key %q bound to both %s and %s", b.name, actionNames[prev], actionNames[b.act])
		}
		t.bindings[k] = b.act
	}
	return t, nil
}

// Handle feeds one key event into the tracker. Rune keys match their
// binding case-insensitively so a stuck shift does not stall a paddle.
func (t *Tracker) Handle(ev *tcell.EventKey, now time.Time) {
	k := Key{Key: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		k.Rune = unicode.ToLower(ev.Rune())
	}
	act, ok := t.bindings[k]
	if !ok {
		return
	}

	switch act {
	case actLeftUp, actLeftDown, actRightUp, actRightDown:
		t.heldUntil[act] = now.Add(HoldWindow)
	default:
		// An event arriving inside the window is the terminal's
		// autorepeat of a key still down, not a new press.
		if !now.Before(t.heldUntil[act]) {
			t.latched[act] = true
		}
		t.heldUntil[act] = now.Add(HoldWindow)
	}
}

// Snapshot reads the input state for one frame. Edge-triggered actions
// are consumed: a single press serves exactly one ball.
func (t *Tracker) Snapshot(now time.Time) game.Input {
	in := game.Input{
		LeftUp:    now.Before(t.heldUntil[actLeftUp]),
		LeftDown:  now.Before(t.heldUntil[actLeftDown]),
		RightUp:   now.Before(t.heldUntil[actRightUp]),
		RightDown: now.Before(t.heldUntil[actRightDown]),
		Serve:     t.latched[actServe],
		Pause:     t.latched[actPause],
		Reset:     t.latched[actReset],
	}
	t.latched[actServe] = false
	t.latched[actPause] = false
	t.latched[actReset] = false
	return in
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
