package blend

import (
	"errors"
	"fmt"
)

// ErrInvalidMode is returned when a blend mode name or index does not
// belong to the closed set of modes.
var ErrInvalidMode = errors.New("blend: invalid mode")

// Mode selects the formula used to combine a base color with a blend layer.
//
// The numeric values are the host enumeration indices and must not change.
type Mode uint8

const (
	Mix         Mode = iota // a + (b-a)*f
	Add                     // a + b*f
	Multiply                // a * ((b-1)*f + 1)
	Screen                  // a + (1-a)*b*f
	Overlay                 // multiply below 0.5, screen above
	Subtract                // a - b*f
	Divide                  // a * ((1/b-1)*f + 1), a where b == 0
	Difference              // (1-f)*a + f*|a-b|
	Darken                  // min(a,b)*f + a*(1-f)
	Lighten                 // max(f*b, a)
	Dodge                   // a / (1 - f*b), saturating
	Burn                    // 1 - (1-a) / ((b-1)*f + 1), saturating
	Hue                     // hue of b, saturation and value of a
	Saturation              // saturation interpolated toward b
	Value                   // value interpolated toward b
	Color                   // hue and saturation of b, value of a
	SoftLight               // (1-f)*a + f*((1-a)*b*a + a*screen(a,b))
	LinearLight             // a + 2f*(b-0.5) above 0.5, a + 2f*(b-1) otherwise

	modeCount
)

// modeNames are the identifiers the host uses for the blend enum parameter.
var modeNames = [modeCount]string{
	Mix:         "mix",
	Add:         "add",
	Multiply:    "multiply",
	Screen:      "screen",
	Overlay:     "overlay",
	Subtract:    "subtract",
	Divide:      "divide",
	Difference:  "difference",
	Darken:      "darken",
	Lighten:     "lighten",
	Dodge:       "dodge",
	Burn:        "burn",
	Hue:         "hue",
	Saturation:  "saturation",
	Value:       "value",
	Color:       "color",
	SoftLight:   "soft",
	LinearLight: "linear",
}

// Modes returns every blend mode in enumeration order.
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Separable reports whether m is computed independently per channel.
// Hue, Saturation, Value and Color work on the whole triple in HSV space.
func (m Mode) Separable() bool {
	switch m {
	case Hue, Saturation, Value, Color:
		return false
	default:
		return m.Valid()
	}
}

// String returns the host identifier of the mode.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode resolves a host identifier such as "multiply" or "soft".
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
}

// ModeFromIndex resolves a host enum index.
func ModeFromIndex(i int) (Mode, error) {
	if i < 0 || i >= int(modeCount) {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidMode, i)
	}
	return Mode(i), nil
}
