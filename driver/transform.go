package driver

import (
	"github.com/gogpu/mixrgb"
	"github.com/gogpu/mixrgb/internal/color"
)

// Transform converts a rendered color to the output color space.
// Alpha is never transformed.
type Transform interface {
	Apply(c mixrgb.RGB) mixrgb.RGB
}

// TransformFunc adapts a function to Transform.
type TransformFunc func(c mixrgb.RGB) mixrgb.RGB

// Apply calls f(c).
func (f TransformFunc) Apply(c mixrgb.RGB) mixrgb.RGB {
	return f(c)
}

var (
	// Identity passes colors through unchanged.
	Identity Transform = TransformFunc(func(c mixrgb.RGB) mixrgb.RGB { return c })

	// SRGBTransform encodes linear colors with the sRGB transfer curve.
	SRGBTransform Transform = TransformFunc(func(c mixrgb.RGB) mixrgb.RGB {
		return mixrgb.RGB{
			R: color.LinearToSRGB(c.R),
			G: color.LinearToSRGB(c.G),
			B: color.LinearToSRGB(c.B),
		}
	})
)
