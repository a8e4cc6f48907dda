package sound

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

// note is a sine tone; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

const (
	c4 = 261.63
	e4 = 329.63
	g4 = 392.00
	a4 = 440.00
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
	c6 = 1046.50
)

var melodies = map[string][]note{
	INTRO:      {{c4, 90 * time.Millisecond}, {e4, 90 * time.Millisecond}, {g4, 90 * time.Millisecond}, {c5, 180 * time.Millisecond}},
	EAT:        {{e5, 40 * time.Millisecond}, {c6, 60 * time.Millisecond}},
	GAME_OVER:  {{g4, 150 * time.Millisecond}, {0, 30 * time.Millisecond}, {e4, 150 * time.Millisecond}, {0, 30 * time.Millisecond}, {c4, 400 * time.Millisecond}},
	HIGH_SCORE: {{c5, 100 * time.Millisecond}, {e5, 100 * time.Millisecond}, {g5, 100 * time.Millisecond}, {0, 50 * time.Millisecond}, {c6, 300 * time.Millisecond}},
	QUIT:       {{a4, 120 * time.Millisecond}, {e4, 240 * time.Millisecond}},
}

// synthesize renders notes into a buffer of the given format.
func synthesize(format beep.Format, notes []note) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)
	for _, n := range notes {
		freq := n.freq
		silent := freq == 0
		if silent {
			freq = a4 // any valid tone, muted below
		}
		tone, err := generators.SineTone(format.SampleRate, freq)
		if err != nil {
			return nil, err
		}
		buf.Append(&effects.Volume{
			Streamer: beep.Take(format.SampleRate.N(n.dur), tone),
			Base:     2,
			Volume:   -2,
			Silent:   silent,
		})
	}
	return buf, nil
}
