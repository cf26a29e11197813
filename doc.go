// Package mixrgb is a color blending toolkit for renderer plugins.
//
// # Overview
//
// mixrgb implements the 18 color blend modes of a node-based shading
// system (Mix, Add, Multiply, Screen, Overlay, Subtract, Divide,
// Difference, Darken, Lighten, Dodge, Burn, Hue, Saturation, Value, Color,
// Soft Light and Linear Light) together with the shading nodes and output
// drivers a renderer plugin needs around them.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/mixrgb"
//		"github.com/gogpu/mixrgb/blend"
//	)
//
//	a := mixrgb.RGB{R: 0.2, G: 0.4, B: 0.6}
//	out, err := blend.Evaluate(a, mixrgb.White, 0.5, blend.Screen)
//
// # Architecture
//
// The module is organized into:
//   - mixrgb: float color types shared by every package, and logging
//   - blend: the blend engine, per-channel formulas and HSV conversion
//   - shader: the MixRGB and legacy blend nodes with their parameters
//   - driver: display, object-list and TIFF output drivers
//   - gpu: the blend engine as a WGSL compute shader compiled with naga
//   - cmd/mixrgb: a command line blender for colors and images
//
// # Colors
//
// Colors are three or four float32 channels. Values are not clamped: the
// blend engine accepts HDR input and factors outside [0, 1]. Only the
// output drivers quantize.
package mixrgb

// Version information
const (
	// Version is the current version of the module
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
