package shader

import (
	"fmt"

	"github.com/gogpu/mixrgb"
	"github.com/gogpu/mixrgb/blend"
)

// MixRGB parameter indices.
const (
	MixRGBParamBlend = iota
	MixRGBParamColor1
	MixRGBParamColor2
	MixRGBParamFactor
)

// MixRGBName is the node name registered with the host.
const MixRGBName = "BArnoldMixRGB"

var mixRGBInfo = NodeInfo{
	Name:   MixRGBName,
	Output: TypeRGB,
	Params: []Param{
		MixRGBParamBlend:  {Name: "blend", Type: TypeEnum, Default: int(blend.Mix), Enum: modeIdentifiers()},
		MixRGBParamColor1: {Name: "color1", Type: TypeRGB, Default: mixrgb.Black},
		MixRGBParamColor2: {Name: "color2", Type: TypeRGB, Default: mixrgb.White},
		MixRGBParamFactor: {Name: "factor", Type: TypeFloat, Default: float32(0.5)},
	},
}

// MixRGB is the 18-mode color blend node.
//
// Update resolves the blend enum once; Evaluate then runs the resolved
// blend function for every shading sample. A MixRGB must be updated before
// it is evaluated. Evaluate is safe for concurrent use; Update is not.
type MixRGB struct {
	mode blend.Mode
	fn   blend.Func
}

// NewMixRGB returns a node configured with the default mode.
func NewMixRGB() *MixRGB {
	fn, _ := blend.GetFunc(blend.Mix)
	return &MixRGB{mode: blend.Mix, fn: fn}
}

// Update reads the blend enum and resolves its function.
// An index outside the enumeration is rejected and leaves the node unchanged.
func (n *MixRGB) Update(in Inputs) error {
	mode, err := blend.ModeFromIndex(in.Enum(MixRGBParamBlend))
	if err != nil {
		return fmt.Errorf("shader: %s: %w", MixRGBName, err)
	}
	fn, err := blend.GetFunc(mode)
	if err != nil {
		return fmt.Errorf("shader: %s: %w", MixRGBName, err)
	}
	n.mode, n.fn = mode, fn
	mixrgb.Logger().Info("shader: node updated", "node", MixRGBName, "mode", DisplayName(mode))
	return nil
}

// Mode returns the resolved blend mode.
func (n *MixRGB) Mode() blend.Mode {
	return n.mode
}

// Evaluate blends color2 onto color1 by factor for one shading sample.
func (n *MixRGB) Evaluate(in Inputs) mixrgb.RGB {
	return n.fn(in.RGB(MixRGBParamColor1), in.RGB(MixRGBParamColor2), in.Float(MixRGBParamFactor))
}
