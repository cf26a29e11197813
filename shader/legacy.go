package shader

import (
	"fmt"

	"github.com/gogpu/mixrgb"
)

// Legacy blend parameter indices.
const (
	LegacyParamColor1 = iota
	LegacyParamColor2
	LegacyParamBlend
	LegacyParamFactor
)

// LegacyBlendName is the name of the first-generation RGBA blend node.
const LegacyBlendName = "barnold:blend"

// LegacyMode selects one of the three blends of the legacy node.
type LegacyMode uint8

const (
	LegacyMix LegacyMode = iota
	LegacyMultiply
	LegacyScreen

	legacyModeCount
)

var legacyModeNames = [legacyModeCount]string{"blend", "multiply", "screen"}

// String returns the host identifier of the mode.
func (m LegacyMode) String() string {
	if m >= legacyModeCount {
		return fmt.Sprintf("LegacyMode(%d)", uint8(m))
	}
	return legacyModeNames[m]
}

var legacyBlendInfo = NodeInfo{
	Name:   LegacyBlendName,
	Output: TypeRGBA,
	Params: []Param{
		LegacyParamColor1: {Name: "color1", Type: TypeRGBA, Default: mixrgb.RGBA{A: 1}},
		LegacyParamColor2: {Name: "color2", Type: TypeRGBA, Default: mixrgb.RGBA{R: 1, G: 1, B: 1, A: 1}},
		LegacyParamBlend:  {Name: "blend", Type: TypeEnum, Default: int(LegacyMix), Enum: legacyModeNames[:]},
		LegacyParamFactor: {Name: "factor", Type: TypeFloat, Default: float32(0.5)},
	},
}

// LegacyBlend is the first-generation three-mode RGBA blend node.
//
// Its formulas weight color1 by the factor, the opposite of MixRGB, and
// apply to alpha like any other channel. Scenes saved against it depend
// on that, so it is kept unchanged next to MixRGB.
type LegacyBlend struct {
	mode LegacyMode
}

// NewLegacyBlend returns a node configured with the default mode.
func NewLegacyBlend() *LegacyBlend {
	return &LegacyBlend{mode: LegacyMix}
}

// Update reads the blend enum. Unknown indices are rejected.
func (n *LegacyBlend) Update(in Inputs) error {
	i := in.Enum(LegacyParamBlend)
	if i < 0 || i >= int(legacyModeCount) {
		return fmt.Errorf("shader: %s: invalid blend index %d", LegacyBlendName, i)
	}
	n.mode = LegacyMode(i)
	mixrgb.Logger().Info("shader: node updated", "node", LegacyBlendName, "mode", n.mode.String())
	return nil
}

// Mode returns the configured mode.
func (n *LegacyBlend) Mode() LegacyMode {
	return n.mode
}

// Evaluate blends the two RGBA parameters for one shading sample.
func (n *LegacyBlend) Evaluate(in Inputs) mixrgb.RGBA {
	c1 := in.RGBA(LegacyParamColor1)
	c2 := in.RGBA(LegacyParamColor2)
	f := in.Float(LegacyParamFactor)

	var ch func(c1, c2, f float32) float32
	switch n.mode {
	case LegacyMultiply:
		ch = legacyMultiply
	case LegacyScreen:
		ch = legacyScreen
	default:
		ch = legacyMix
	}
	return mixrgb.RGBA{
		R: ch(c1.R, c2.R, f),
		G: ch(c1.G, c2.G, f),
		B: ch(c1.B, c2.B, f),
		A: ch(c1.A, c2.A, f),
	}
}

// legacyMix computes c1*f + c2*(1-f).
func legacyMix(c1, c2, f float32) float32 {
	return c1*f + c2*(1-f)
}

// legacyMultiply computes (c1*f + (1-f)) * c2.
func legacyMultiply(c1, c2, f float32) float32 {
	return (c1*f + (1 - f)) * c2
}

// legacyScreen computes 1 - (1 - c1*f) * (1 - c2).
func legacyScreen(c1, c2, f float32) float32 {
	return 1 - (1-c1*f)*(1-c2)
}
