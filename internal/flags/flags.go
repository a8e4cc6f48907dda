// Package flags parses the command line of the game.
package flags

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vinser/snake/internal/world"
)

var ErrInvalid = errors.New("invalid flag value")

// MaxVolume plays samples at their own level; each step below halves the amplitude.
const MaxVolume = 10

// Flags stores the parsed command-line options.
type Flags struct {
	Width  int
	Height int
	Sprite string
	Theme  string
	Seed   int64
	Mute   bool
	Volume int
	Reset  bool
	Debug  bool

	fsv *FlagSetWithVisit
}

// IsSet reports whether the named long flag was given explicitly,
// so it should override the saved setting.
func (f *Flags) IsSet(name string) bool {
	return f.fsv != nil && f.fsv.IsCustom(name)
}

// Parse parses args (without the program name). Usage and errors are written to out.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	f := &Flags{}
	fsv := NewFlagSetWithVisit(name, out)
	fsv.IntVar(&f.Width, "width", "w", world.DefaultWidth, "Board width in cells")
	fsv.IntVar(&f.Height, "height", "g", world.DefaultHeight, "Board height in cells")
	fsv.StringVar(&f.Sprite, "sprite", "s", "medium", "Sprite size: small, medium or large")
	fsv.StringVar(&f.Theme, "theme", "t", "day", "Colour theme: day, night or real")
	fsv.Int64Var(&f.Seed, "seed", "", 0, "Fruit placement seed, 0 picks one from the clock")
	fsv.BoolVar(&f.Mute, "mute", "m", false, "Mute all sounds")
	fsv.IntVar(&f.Volume, "volume", "v", MaxVolume, "Sound volume from 1 to 10")
	fsv.BoolVar(&f.Reset, "reset", "r", false, "Reset saved settings and high scores")
	fsv.BoolVar(&f.Debug, "debug", "d", false, "Write a debug log to snake-debug.log")

	if err := fsv.Parse(args); err != nil {
		return nil, err
	}
	f.fsv = fsv

	if err := f.validate(); err != nil {
		fmt.Fprintln(out, err)
		fsv.Usage()
		return nil, err
	}
	return f, nil
}

func (f *Flags) validate() error {
	f.Sprite = strings.ToLower(f.Sprite)
	switch f.Sprite {
	case "small", "medium", "large":
	default:
		return fmt.Errorf("%w: sprite size %q, use small, medium or large", ErrInvalid, f.Sprite)
	}

	f.Theme = strings.ToLower(f.Theme)
	switch f.Theme {
	case "day", "night", "real":
	default:
		return fmt.Errorf("%w: theme %q, use day, night or real", ErrInvalid, f.Theme)
	}

	if f.Volume < 1 || f.Volume > MaxVolume {
		return fmt.Errorf("%w: volume %d not in [1, %d]", ErrInvalid, f.Volume, MaxVolume)
	}

	if err := f.Board().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Board returns the board configuration requested on the command line.
func (f *Flags) Board() world.Config {
	return world.Config{Width: f.Width, Height: f.Height}
}

// VolumeDB converts the volume level to a master gain in base-2 decibels.
func (f *Flags) VolumeDB() float64 {
	return float64(f.Volume-MaxVolume) / 2
}
