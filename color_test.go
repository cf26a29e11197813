package mixrgb

import (
	"errors"
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"short", "fff", RGBA{1, 1, 1, 1}},
		{"short alpha", "f000", RGBA{1, 0, 0, 0}},
		{"long", "#ff0000", RGBA{1, 0, 0, 1}},
		{"long alpha", "00ff0080", RGBA{0, 1, 0, 128.0 / 255}},
		{"upper", "#00FF00", RGBA{0, 1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hex(tt.in)
			if err != nil {
				t.Fatalf("Hex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "ff", "fffff", "#gg0000", "12345z"} {
		if _, err := Hex(in); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("Hex(%q) error = %v, want ErrInvalidHex", in, err)
		}
	}
}

func TestRGBLerp(t *testing.T) {
	a := RGB{0, 0.5, 1}
	b := RGB{1, 0.5, 0}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != (RGB{0.5, 0.5, 0.5}) {
		t.Errorf("Lerp(0.5) = %+v", got)
	}
}

func TestRGBIsGray(t *testing.T) {
	if !Gray(0.3).IsGray() {
		t.Error("Gray(0.3) should be gray")
	}
	if (RGB{0.3, 0.3, 0.31}).IsGray() {
		t.Error("(0.3, 0.3, 0.31) should not be gray")
	}
}

func TestColorConversion(t *testing.T) {
	c := RGBA{R: 2, G: 0.5, B: -1, A: 1}
	n := c.Color().(color.NRGBA64)
	if n.R != 65535 || n.B != 0 || n.A != 65535 {
		t.Errorf("Color() = %+v, want clamped channels", n)
	}
	if n.G != 32768 {
		t.Errorf("Color().G = %d, want 32768", n.G)
	}

	back := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if back != (RGBA{1, 0, 0, 1}) {
		t.Errorf("FromColor = %+v", back)
	}
}

func TestWithAlphaRoundTrip(t *testing.T) {
	c := RGB{0.1, 0.2, 0.3}
	if got := c.WithAlpha(0.4).RGB(); got != c {
		t.Errorf("WithAlpha().RGB() = %+v, want %+v", got, c)
	}
}
