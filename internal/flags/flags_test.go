package flags

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vinser/snake/internal/world"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(*Flags) bool
	}{
		{"defaults", nil, func(f *Flags) bool {
			return f.Width == world.DefaultWidth && f.Height == world.DefaultHeight &&
				f.Sprite == "medium" && f.Theme == "day" && !f.Mute && !f.Reset && !f.Debug && f.Volume == MaxVolume
		}},
		{"long names", []string{"-width=20", "-height", "10", "-theme=night", "-seed=7"}, func(f *Flags) bool {
			return f.Width == 20 && f.Height == 10 && f.Theme == "night" && f.Seed == 7
		}},
		{"short aliases", []string{"-w=8", "-g=9", "-s", "large", "-m", "-r", "-d"}, func(f *Flags) bool {
			return f.Width == 8 && f.Height == 9 && f.Sprite == "large" && f.Mute && f.Reset && f.Debug
		}},
		{"volume", []string{"-v=4"}, func(f *Flags) bool {
			return f.Volume == 4 && f.VolumeDB() == -3
		}},
		{"case folded", []string{"-t=REAL", "-s=Small"}, func(f *Flags) bool {
			return f.Theme == "real" && f.Sprite == "small"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse("snake", tt.args, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("Parse(%v): %v", tt.args, err)
			}
			if !tt.check(f) {
				t.Errorf("Parse(%v) = %+v", tt.args, f)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"sprite", []string{"-sprite=huge"}, ErrInvalid},
		{"theme", []string{"-t=dusk"}, ErrInvalid},
		{"silent volume", []string{"-volume=0"}, ErrInvalid},
		{"loud volume", []string{"-v=11"}, ErrInvalid},
		{"too narrow", []string{"-w=2"}, world.ErrInvalidConfig},
		{"too tall", []string{"-height=100"}, world.ErrInvalidConfig},
		{"unknown flag", []string{"-x"}, nil},
		{"not a number", []string{"-width=wide"}, nil},
		{"positional", []string{"extra"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Parse("snake", tt.args, &out)
			if err == nil {
				t.Fatalf("Parse(%v) succeeded", tt.args)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("got %v, want %v", err, tt.is)
			}
			if tt.is != nil && !strings.Contains(out.String(), "Usage of snake") {
				t.Errorf("no usage printed:\n%s", out.String())
			}
		})
	}
}

func TestIsSet(t *testing.T) {
	f, err := Parse("snake", []string{"-m", "-width=15"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]bool{"mute": true, "width": true, "theme": false, "m": false} {
		if got := f.IsSet(name); got != want {
			t.Errorf("IsSet(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestUsageListsAliases(t *testing.T) {
	var out bytes.Buffer
	fsv := NewFlagSetWithVisit("snake", &out)
	var reset bool
	fsv.BoolVar(&reset, "reset", "r", false, "Reset")
	fsv.Usage()
	if !strings.Contains(out.String(), "-r, -reset") {
		t.Errorf("usage without alias:\n%s", out.String())
	}
}
