// Package blend implements the color blend modes of the MixRGB shader.
//
// A blend combines a base color a with a blend layer b, weighted by a mix
// factor f. Fourteen modes are separable and apply one formula to each
// channel. Hue, Saturation, Value and Color are non-separable and work on
// the whole triple in HSV space.
//
// Every function in this package is pure: it reads only its arguments,
// allocates nothing and is safe for concurrent use. Mode validation happens
// once, when a mode is resolved with GetFunc or ParseMode; a resolved Func
// cannot fail.
//
// References:
//   - Blender texture and material ramp blending (MixRGB node)
//   - https://en.wikipedia.org/wiki/Blend_modes (formulas without factor)
package blend

import (
	"fmt"

	"github.com/gogpu/mixrgb"
)

// Func blends base color a with layer b using factor f.
type Func func(a, b mixrgb.RGB, f float32) mixrgb.RGB

// channelFunc is the per-channel shape of a separable mode.
type channelFunc func(a, b, f float32) float32

var funcs = [modeCount]Func{
	Mix:         mixRGB,
	Add:         addRGB,
	Multiply:    multiplyRGB,
	Screen:      screenRGB,
	Overlay:     overlayRGB,
	Subtract:    subtractRGB,
	Divide:      divideRGB,
	Difference:  differenceRGB,
	Darken:      darkenRGB,
	Lighten:     lightenRGB,
	Dodge:       dodgeRGB,
	Burn:        burnRGB,
	Hue:         hue,
	Saturation:  saturation,
	Value:       value,
	Color:       colorMode,
	SoftLight:   softLightRGB,
	LinearLight: linearLightRGB,
}

// channelFuncs is nil for the non-separable modes.
var channelFuncs = [modeCount]channelFunc{
	Mix:         MixChannel[float32],
	Add:         AddChannel[float32],
	Multiply:    MultiplyChannel[float32],
	Screen:      ScreenChannel[float32],
	Overlay:     OverlayChannel[float32],
	Subtract:    SubtractChannel[float32],
	Divide:      DivideChannel[float32],
	Difference:  DifferenceChannel[float32],
	Darken:      DarkenChannel[float32],
	Lighten:     LightenChannel[float32],
	Dodge:       DodgeChannel[float32],
	Burn:        BurnChannel[float32],
	SoftLight:   SoftLightChannel[float32],
	LinearLight: LinearLightChannel[float32],
}

// GetFunc resolves mode to its blend function.
// It returns ErrInvalidMode for values outside the enumeration.
func GetFunc(mode Mode) (Func, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(mode))
	}
	return funcs[mode], nil
}

// Evaluate blends a and b with factor f using mode.
func Evaluate(a, b mixrgb.RGB, f float32, mode Mode) (mixrgb.RGB, error) {
	switch mode {
	case Mix:
		return mixRGB(a, b, f), nil
	case Add:
		return addRGB(a, b, f), nil
	case Multiply:
		return multiplyRGB(a, b, f), nil
	case Screen:
		return screenRGB(a, b, f), nil
	case Overlay:
		return overlayRGB(a, b, f), nil
	case Subtract:
		return subtractRGB(a, b, f), nil
	case Divide:
		return divideRGB(a, b, f), nil
	case Difference:
		return differenceRGB(a, b, f), nil
	case Darken:
		return darkenRGB(a, b, f), nil
	case Lighten:
		return lightenRGB(a, b, f), nil
	case Dodge:
		return dodgeRGB(a, b, f), nil
	case Burn:
		return burnRGB(a, b, f), nil
	case Hue:
		return hue(a, b, f), nil
	case Saturation:
		return saturation(a, b, f), nil
	case Value:
		return value(a, b, f), nil
	case Color:
		return colorMode(a, b, f), nil
	case SoftLight:
		return softLightRGB(a, b, f), nil
	case LinearLight:
		return linearLightRGB(a, b, f), nil
	default:
		return mixrgb.RGB{}, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(mode))
	}
}

// EvaluateRGBA blends colors with alpha.
//
// Separable modes apply their channel formula to alpha as well. The HSV
// modes blend the color triple jointly and keep the alpha of a.
func EvaluateRGBA(a, b mixrgb.RGBA, f float32, mode Mode) (mixrgb.RGBA, error) {
	rgb, err := Evaluate(a.RGB(), b.RGB(), f, mode)
	if err != nil {
		return mixrgb.RGBA{}, err
	}
	alpha := a.A
	if ch := channelFuncs[mode]; ch != nil {
		alpha = ch(a.A, b.A, f)
	}
	return rgb.WithAlpha(alpha), nil
}

// Batch blends a[i] with b[i] into dst[i] for every i.
// All three slices must have the same length; dst may alias a or b.
func Batch(dst, a, b []mixrgb.RGB, f float32, mode Mode) error {
	if len(a) != len(dst) || len(b) != len(dst) {
		return fmt.Errorf("blend: batch length mismatch: dst=%d a=%d b=%d", len(dst), len(a), len(b))
	}
	fn, err := GetFunc(mode)
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = fn(a[i], b[i], f)
	}
	return nil
}

func mixRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: MixChannel(a.R, b.R, f), G: MixChannel(a.G, b.G, f), B: MixChannel(a.B, b.B, f)}
}

func addRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: AddChannel(a.R, b.R, f), G: AddChannel(a.G, b.G, f), B: AddChannel(a.B, b.B, f)}
}

func multiplyRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: MultiplyChannel(a.R, b.R, f), G: MultiplyChannel(a.G, b.G, f), B: MultiplyChannel(a.B, b.B, f)}
}

func screenRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: ScreenChannel(a.R, b.R, f), G: ScreenChannel(a.G, b.G, f), B: ScreenChannel(a.B, b.B, f)}
}

func overlayRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: OverlayChannel(a.R, b.R, f), G: OverlayChannel(a.G, b.G, f), B: OverlayChannel(a.B, b.B, f)}
}

func subtractRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: SubtractChannel(a.R, b.R, f), G: SubtractChannel(a.G, b.G, f), B: SubtractChannel(a.B, b.B, f)}
}

func divideRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: DivideChannel(a.R, b.R, f), G: DivideChannel(a.G, b.G, f), B: DivideChannel(a.B, b.B, f)}
}

func differenceRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: DifferenceChannel(a.R, b.R, f), G: DifferenceChannel(a.G, b.G, f), B: DifferenceChannel(a.B, b.B, f)}
}

func darkenRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: DarkenChannel(a.R, b.R, f), G: DarkenChannel(a.G, b.G, f), B: DarkenChannel(a.B, b.B, f)}
}

func lightenRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: LightenChannel(a.R, b.R, f), G: LightenChannel(a.G, b.G, f), B: LightenChannel(a.B, b.B, f)}
}

func dodgeRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: DodgeChannel(a.R, b.R, f), G: DodgeChannel(a.G, b.G, f), B: DodgeChannel(a.B, b.B, f)}
}

func burnRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: BurnChannel(a.R, b.R, f), G: BurnChannel(a.G, b.G, f), B: BurnChannel(a.B, b.B, f)}
}

func softLightRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: SoftLightChannel(a.R, b.R, f), G: SoftLightChannel(a.G, b.G, f), B: SoftLightChannel(a.B, b.B, f)}
}

func linearLightRGB(a, b mixrgb.RGB, f float32) mixrgb.RGB {
	return mixrgb.RGB{R: LinearLightChannel(a.R, b.R, f), G: LinearLightChannel(a.G, b.G, f), B: LinearLightChannel(a.B, b.B, f)}
}
