package blend

import "github.com/gogpu/mixrgb"

// Non-separable modes.
//
// These modes decompose whole colors into HSV and recombine components of
// both operands, so they cannot be evaluated channel by channel. A gray
// operand has no defined hue; the modes that need one pass a through.

// hue takes the hue of b with the saturation and value of a.
func hue(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	bh, bs, _ := toHSV(b)
	if bs == 0 {
		return a
	}
	_, as, av := toHSV(a)
	return a.Lerp(fromHSV(bh, as, av), f)
}

// saturation moves the saturation of a toward that of b.
func saturation(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	ah, as, av := toHSV(a)
	if as == 0 {
		return a
	}
	_, bs, _ := toHSV(b)
	return fromHSV(ah, (1-f)*as+f*bs, av)
}

// value moves the value of a toward that of b.
func value(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	ah, as, av := toHSV(a)
	_, _, bv := toHSV(b)
	return fromHSV(ah, as, (1-f)*av+f*bv)
}

// colorMode takes the hue and saturation of b with the value of a.
func colorMode(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	bh, bs, _ := toHSV(b)
	if bs == 0 {
		return a
	}
	_, _, av := toHSV(a)
	return a.Lerp(fromHSV(bh, bs, av), f)
}
