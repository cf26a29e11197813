package blend

import "github.com/gogpu/mixrgb"

// hsvEpsilon keeps the hue and saturation divisions finite for black and
// gray inputs without branching.
const hsvEpsilon = 1e-20

// toHSV decomposes c into hue, saturation and value.
//
// Hue is a fraction of a turn in [0, 1). Saturation is chroma/max and is 0
// for gray colors. Value is the largest channel.
func toHSV(c mixrgb.RGB) (h, s, v float32) {
	var r, g, b, k, chroma float32

	// Order the channels so r holds the maximum. k accumulates the hue
	// offset of the sector selected by the swaps.
	if c.G < c.B {
		g, b, k = c.B, c.G, -1
	} else {
		g, b, k = c.G, c.B, 0
	}
	if c.R < g {
		r, g = g, c.R
		k = -2.0/6.0 - k
		chroma = r - min(g, b)
	} else {
		r = c.R
		chroma = r - b
	}

	h = abs(k + (g-b)/(6*chroma+hsvEpsilon))
	s = chroma / (r + hsvEpsilon)
	v = r
	return h, s, v
}

// fromHSV rebuilds a color from hue, saturation and value.
// The pure hue is clamped to [0, 1] per channel before s and v apply.
func fromHSV(h, s, v float32) mixrgb.RGB {
	r := abs(h*6-3) - 1
	g := 2 - abs(h*6-2)
	b := 2 - abs(h*6-4)
	r = clamp01(r)
	g = clamp01(g)
	b = clamp01(b)
	return mixrgb.RGB{
		R: ((r-1)*s + 1) * v,
		G: ((g-1)*s + 1) * v,
		B: ((b-1)*s + 1) * v,
	}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
