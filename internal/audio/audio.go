package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

var initialized bool

// Init opens the speaker. Callers that want the game silent simply
// never call it; every Play function stays a no-op until Init succeeds.
func Init() error {
	if initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return err
	}
	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// note is a fixed-length oscillator: a square wave for the chip-style
// rally blips or a sine for the softer jingle, with a short linear
// fade at the tail so a note ends without a click.
type note struct {
	phase  float64
	step   float64
	pos    int
	total  int
	fade   int
	square bool
	volume float64
}

func newNote(freq float64, d time.Duration, square bool, volume float64) *note {
	total := sampleRate.N(d)
	fade := sampleRate.N(5 * time.Millisecond)
	if fade > total {
		fade = total
	}
	return &note{
		step:   freq / float64(sampleRate),
		total:  total,
		fade:   fade,
		square: square,
		volume: volume,
	}
}

func (n *note) Stream(samples [][2]float64) (count int, ok bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, false
		}
		var val float64
		if n.square {
			val = n.volume
			if n.phase >= 0.5 {
				val = -val
			}
		} else {
			val = n.volume * math.Sin(2*math.Pi*n.phase)
		}
		if left := n.total - n.pos; left < n.fade {
			val *= float64(left) / float64(n.fade)
		}
		samples[i][0] = val
		samples[i][1] = val
		n.phase += n.step
		if n.phase >= 1 {
			n.phase--
		}
		n.pos++
	}
	return len(samples), true
}

func (n *note) Err() error { return nil }

func blip(freq float64, d time.Duration) beep.Streamer {
	return newNote(freq, d, true, 0.2)
}

func chime(freq float64, d time.Duration) beep.Streamer {
	return newNote(freq, d, false, 0.3)
}

// PlayPaddleHit plays the sound for ball hitting a paddle
func PlayPaddleHit() {
	if !initialized {
		return
	}
	speaker.Play(blip(880, 50*time.Millisecond))
}

// PlayWallBounce plays the sound for ball hitting top/bottom wall
func PlayWallBounce() {
	if !initialized {
		return
	}
	speaker.Play(blip(440, 30*time.Millisecond))
}

// PlayScore plays a descending sting when a point lands.
func PlayScore() {
	if !initialized {
		return
	}
	speaker.Play(beep.Seq(
		blip(660, 100*time.Millisecond),
		blip(440, 100*time.Millisecond),
		blip(330, 150*time.Millisecond),
	))
}

// PlayWin plays the match-over jingle: an ascending arpeggio in sine
// tones, brighter than the square-wave blips of the rally.
func PlayWin() {
	if !initialized {
		return
	}
	speaker.Play(beep.Seq(
		chime(523.25, 120*time.Millisecond), // C5
		chime(659.25, 120*time.Millisecond), // E5
		chime(783.99, 200*time.Millisecond), // G5
	))
}
