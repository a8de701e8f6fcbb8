package game

// State is the phase the session is in. Exactly one is active at a
// time and every (state, input) pair has a defined outcome in
// Session.Update.
type State int

const (
	StateTitle   State = iota // initial screen, waiting for the first serve
	StateServe                // point finished, waiting for the next serve
	StatePlaying              // ball in play
	StatePaused               // physics frozen mid-rally
	StateOver                 // match decided, waiting for rematch or reset
)

// Side distinguishes the two players.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Input is one frame's worth of key state. The movement fields are
// level-triggered (true while the key is held); Serve, Pause and Reset
// are edge-triggered and fire once per press.
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
	Serve     bool
	Pause     bool
	Reset     bool
}
