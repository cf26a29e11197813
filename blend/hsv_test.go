package blend

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/mixrgb"
)

func TestToHSV(t *testing.T) {
	tests := []struct {
		name    string
		c       mixrgb.RGB
		h, s, v float32
	}{
		{"black", mixrgb.Black, 0, 0, 0},
		{"white", mixrgb.White, 0, 0, 1},
		{"gray", mixrgb.Gray(0.5), 0, 0, 0.5},
		{"red", mixrgb.Red, 0, 1, 1},
		{"yellow", mixrgb.RGB{R: 1, G: 1, B: 0}, 1.0 / 6, 1, 1},
		{"green", mixrgb.Green, 1.0 / 3, 1, 1},
		{"cyan", mixrgb.RGB{R: 0, G: 1, B: 1}, 0.5, 1, 1},
		{"blue", mixrgb.Blue, 2.0 / 3, 1, 1},
		{"magenta", mixrgb.RGB{R: 1, G: 0, B: 1}, 5.0 / 6, 1, 1},
		{"dark orange", mixrgb.RGB{R: 0.5, G: 0.25, B: 0}, 1.0 / 12, 1, 0.5},
		{"pale red", mixrgb.RGB{R: 1, G: 0.5, B: 0.5}, 0, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := toHSV(tt.c)
			if !floatEqual(h, tt.h, 1e-6) || !floatEqual(s, tt.s, 1e-6) || !floatEqual(v, tt.v, 1e-6) {
				t.Errorf("toHSV(%+v) = (%v, %v, %v), want (%v, %v, %v)", tt.c, h, s, v, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestFromHSV(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float32
		want    mixrgb.RGB
	}{
		{"red", 0, 1, 1, mixrgb.Red},
		{"green", 1.0 / 3, 1, 1, mixrgb.Green},
		{"blue", 2.0 / 3, 1, 1, mixrgb.Blue},
		{"zero saturation", 0.4, 0, 0.3, mixrgb.Gray(0.3)},
		{"half saturation", 0, 0.5, 1, mixrgb.RGB{R: 1, G: 0.5, B: 0.5}},
		{"hdr value", 0, 1, 4, mixrgb.RGB{R: 4, G: 0, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromHSV(tt.h, tt.s, tt.v)
			if !rgbEqual(got, tt.want, 1e-6) {
				t.Errorf("fromHSV(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 10000; i++ {
		c := mixrgb.RGB{R: rng.Float32(), G: rng.Float32(), B: rng.Float32()}
		if c.IsGray() {
			continue
		}
		h, s, v := toHSV(c)
		// Hue rounds up to exactly 1 only when the sector offset is below
		// one ulp; fromHSV maps 1 and 0 to the same color.
		if h < 0 || h > 1 {
			t.Fatalf("toHSV(%+v) hue %v outside [0, 1]", c, h)
		}
		got := fromHSV(h, s, v)
		if !rgbEqual(got, c, 1e-5) {
			t.Fatalf("round trip of %+v = %+v", c, got)
		}
	}
}

func TestGraySaturationIsZero(t *testing.T) {
	for _, v := range []float32{0, 1e-30, 0.5, 1, 100} {
		if _, s, _ := toHSV(mixrgb.Gray(v)); s != 0 {
			t.Errorf("toHSV(Gray(%v)) saturation = %v, want 0", v, s)
		}
	}
}
