package blend

import "golang.org/x/exp/constraints"

// Per-channel blend formulas.
//
// Each function combines one channel of the base color a with the same
// channel of the blend layer b, weighted by the factor f. None of them
// range-check their inputs: colors are HDR and f may leave [0, 1].
// Divide, Dodge and Burn guard their divisions with fixed fallbacks.

// MixChannel interpolates linearly: a + (b-a)*f.
func MixChannel[T constraints.Float](a, b, f T) T {
	return a + (b-a)*f
}

// AddChannel adds the weighted layer: a + b*f.
func AddChannel[T constraints.Float](a, b, f T) T {
	return a + b*f
}

// MultiplyChannel computes a * ((1-f) + f*b).
func MultiplyChannel[T constraints.Float](a, b, f T) T {
	return a * ((b-1)*f + 1)
}

// ScreenChannel computes 1 - (1 - b*f) * (1 - a), expanded to a + (1-a)*b*f.
func ScreenChannel[T constraints.Float](a, b, f T) T {
	return a + (1-a)*b*f
}

// OverlayChannel multiplies when a < 0.5 and screens otherwise.
func OverlayChannel[T constraints.Float](a, b, f T) T {
	if a < 0.5 {
		return a * ((2*b-1)*f + 1)
	}
	return a + (a+2*b*(1-a)-1)*f
}

// SubtractChannel subtracts the weighted layer: a - b*f.
func SubtractChannel[T constraints.Float](a, b, f T) T {
	return a - b*f
}

// DivideChannel computes (1 - f + f/b) * a. A zero layer passes a through.
func DivideChannel[T constraints.Float](a, b, f T) T {
	if b != 0 {
		return a * ((1/b-1)*f + 1)
	}
	return a
}

// DifferenceChannel computes (1-f)*a + f*|a-b|.
func DifferenceChannel[T constraints.Float](a, b, f T) T {
	return (1-f)*a + f*abs(a-b)
}

// DarkenChannel computes min(a, b)*f + a*(1-f).
func DarkenChannel[T constraints.Float](a, b, f T) T {
	return min(a, b)*f + a*(1-f)
}

// LightenChannel keeps the larger of a and f*b.
func LightenChannel[T constraints.Float](a, b, f T) T {
	t := f * b
	if t > a {
		return t
	}
	return a
}

// DodgeChannel brightens a by the weighted layer, saturating at 1.
// A zero base channel stays zero.
func DodgeChannel[T constraints.Float](a, b, f T) T {
	if a == 0 {
		return a
	}
	t := 1 - f*b
	if t <= 0 {
		return 1
	}
	t = a / t
	if t > 1 {
		return 1
	}
	return t
}

// BurnChannel darkens a by the weighted layer, clamped to [0, 1].
func BurnChannel[T constraints.Float](a, b, f T) T {
	t := (b-1)*f + 1
	if t <= 0 {
		return 0
	}
	t = 1 - (1-a)/t
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SoftLightChannel computes (1-f)*a + f*((1-a)*b*a + a*s),
// where s = 1 - (1-a)*(1-b) is the screen of a and b.
func SoftLightChannel[T constraints.Float](a, b, f T) T {
	s := 1 - (1-a)*(1-b)
	return (1-f)*a + f*((1-a)*b*a+a*s)
}

// LinearLightChannel adds 2f*(b-0.5) when b > 0.5 and 2f*(b-1) otherwise.
func LinearLightChannel[T constraints.Float](a, b, f T) T {
	if b > 0.5 {
		return a + f*(2*(b-0.5))
	}
	return a + f*(2*(b-1))
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
