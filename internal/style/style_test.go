package style

import "testing"

func TestGenerateHexColor(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{0, 0, 0, "#000000"},
		{232, 247, 238, "#E8F7EE"},
		{300, -5, 16, "#FF0010"},
	}
	for _, tt := range tests {
		if got := GenerateHexColor(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("GenerateHexColor(%d, %d, %d) = %s, want %s", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestBlend(t *testing.T) {
	a, b := RGB{0, 100, 200}, RGB{100, 0, 200}
	tests := []struct {
		t    float64
		want RGB
	}{
		{0, a},
		{1, b},
		{0.5, RGB{50, 50, 200}},
		{-1, a},
		{2, b},
	}
	for _, tt := range tests {
		if got := Blend(a, b, tt.t); got != tt.want {
			t.Errorf("Blend(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestShadeEndpoints(t *testing.T) {
	if Shade(1) != DayPalette {
		t.Error("full daylight is not the day palette")
	}
	if Shade(0) != NightPalette {
		t.Error("darkness is not the night palette")
	}
	if got := DayPalette.DeadSnake.Hex(); got != "#D00000" {
		t.Errorf("dead snake colour %s", got)
	}
}
