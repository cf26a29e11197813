// Package gpu provides the blend engine as a WGSL compute shader.
//
// The shader evaluates all 18 blend modes with the same formulas as package
// blend. It reads base and layer colors from storage buffers and writes the
// blended colors to a third:
//
//	@group(0) @binding(0) var<uniform> params: BlendParams;  // mode, factor, count
//	@group(0) @binding(1) var<storage, read> base: array<vec4<f32>>;
//	@group(0) @binding(2) var<storage, read> layer: array<vec4<f32>>;
//	@group(0) @binding(3) var<storage, read_write> result: array<vec4<f32>>;
//
// Source returns the shader with the mode read from params at run time.
// SpecializedSource fixes one mode at compile time. Compile and Cache turn
// either into SPIR-V with naga, ready for any WebGPU or Vulkan host.
package gpu

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/naga"

	"github.com/gogpu/mixrgb"
	"github.com/gogpu/mixrgb/blend"
)

//go:embed shaders/mixrgb.wgsl
var blendShaderWGSL string

// WorkgroupSize is the number of colors one workgroup blends.
const WorkgroupSize = 64

// ErrCompile is returned when the shader fails to compile.
var ErrCompile = errors.New("gpu: shader compile failed")

// fixedModeDecl is the declaration SpecializedSource rewrites.
const fixedModeDecl = "const FIXED_MODE: u32 = 0xffffffffu;"

// Params mirrors BlendParams in the shader's uniform buffer.
type Params struct {
	Mode   uint32
	Factor float32
	Count  uint32
	_      uint32
}

// NewParams returns the uniform values for blending count colors.
// The dynamic shader has no fallback mode, so an invalid mode is an error.
func NewParams(mode blend.Mode, factor float32, count int) (Params, error) {
	if !mode.Valid() {
		return Params{}, fmt.Errorf("gpu: %w: %d", blend.ErrInvalidMode, mode)
	}
	if count < 0 {
		return Params{}, fmt.Errorf("gpu: negative color count %d", count)
	}
	return Params{Mode: uint32(mode), Factor: factor, Count: uint32(count)}, nil
}

// Source returns the WGSL source with the mode taken from Params.
func Source() string {
	return blendShaderWGSL
}

// SpecializedSource returns the WGSL source with mode fixed at compile time.
func SpecializedSource(mode blend.Mode) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("gpu: %w: %d", blend.ErrInvalidMode, mode)
	}
	decl := fmt.Sprintf("const FIXED_MODE: u32 = %du;", uint32(mode))
	return strings.Replace(blendShaderWGSL, fixedModeDecl, decl, 1), nil
}

// Compile compiles the shader for mode to SPIR-V words.
func Compile(mode blend.Mode) ([]uint32, error) {
	src, err := SpecializedSource(mode)
	if err != nil {
		return nil, err
	}
	code, err := compileSPIRV(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, mode, err)
	}
	mixrgb.Logger().Debug("gpu: shader compiled", "mode", mode.String(), "words", len(code))
	return code, nil
}

// CompileDynamic compiles the shader that reads the mode from Params.
func CompileDynamic() ([]uint32, error) {
	code, err := compileSPIRV(blendShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("%w: dynamic: %w", ErrCompile, err)
	}
	mixrgb.Logger().Debug("gpu: shader compiled", "mode", "dynamic", "words", len(code))
	return code, nil
}

// compileSPIRV compiles WGSL with naga and packs the little-endian output
// into 32-bit SPIR-V words.
func compileSPIRV(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, err
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("spir-v length %d is not a multiple of 4", len(spirvBytes))
	}

	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
