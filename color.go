package mixrgb

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned by Hex when the string is not a hex color.
var ErrInvalidHex = errors.New("mixrgb: invalid hex color")

// RGB is a renderer color with red, green and blue channels.
//
// Channels are HDR values and are not confined to [0, 1]. float32 matches
// the channel width of the host renderer so results stay bit-compatible.
type RGB struct {
	R, G, B float32
}

// RGBA is an RGB color with an alpha channel.
type RGBA struct {
	R, G, B, A float32
}

// Gray returns a color with all channels set to v.
func Gray(v float32) RGB {
	return RGB{R: v, G: v, B: v}
}

// WithAlpha extends c with the alpha value a.
func (c RGB) WithAlpha(a float32) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Scale multiplies every channel by s.
func (c RGB) Scale(s float32) RGB {
	return RGB{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Add returns the channel-wise sum of c and o.
func (c RGB) Add(o RGB) RGB {
	return RGB{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Lerp interpolates between c and o as (1-t)*c + t*o.
//
// The weighted-sum form is kept on purpose: it is the form the host uses
// for joint-channel modes and differs from c + (o-c)*t in the last bit.
func (c RGB) Lerp(o RGB, t float32) RGB {
	s := 1 - t
	return RGB{
		R: s*c.R + t*o.R,
		G: s*c.G + t*o.G,
		B: s*c.B + t*o.B,
	}
}

// IsGray reports whether all three channels are exactly equal.
func (c RGB) IsGray() bool {
	return c.R == c.G && c.G == c.B
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Color converts c to a standard color, clamping channels to [0, 1].
func (c RGBA) Color() color.Color {
	return color.NRGBA64{
		R: uint16(clampUnit(c.R)*65535 + 0.5),
		G: uint16(clampUnit(c.G)*65535 + 0.5),
		B: uint16(clampUnit(c.B)*65535 + 0.5),
		A: uint16(clampUnit(c.A)*65535 + 0.5),
	}
}

// FromColor converts a standard color.Color to RGBA.
// The result is unpremultiplied.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float32(n.R) / 65535,
		G: float32(n.G) / 65535,
		B: float32(n.B) / 65535,
		A: float32(n.A) / 65535,
	}
}

// Hex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
func Hex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	}
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return RGBA{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

// parseHex accumulates the hex digits of s into val.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func clampUnit(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
	Red   = RGB{1, 0, 0}
	Green = RGB{0, 1, 0}
	Blue  = RGB{0, 0, 1}
)
