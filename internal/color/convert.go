// Package color provides the transfer functions and quantizers used when
// float render output is packed into display buffers.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
//
// Values above 1 follow the curve; HDR input is not clipped here.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// Quantize8 maps v in [0,1] to [0,255].
//
// x, y and ch seed the dither noise; amplitude scales it in units of one
// output step. Zero amplitude rounds to nearest.
func Quantize8(x, y, ch int, v, amplitude float32) uint8 {
	return uint8(quantize(x, y, ch, v, amplitude, 255))
}

// Quantize16 maps v in [0,1] to [0,65535]. See Quantize8.
func Quantize16(x, y, ch int, v, amplitude float32) uint16 {
	return uint16(quantize(x, y, ch, v, amplitude, 65535))
}

func quantize(x, y, ch int, v, amplitude, maxVal float32) uint32 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	q := v*maxVal + 0.5
	if amplitude != 0 {
		q += amplitude * ditherNoise(x, y, ch)
	}
	if q <= 0 {
		return 0
	}
	if q >= maxVal {
		return uint32(maxVal)
	}
	return uint32(q)
}

// ditherNoise returns a deterministic value in [-0.5, 0.5) for a pixel
// channel. The same pixel always dithers the same way, so re-rendered
// buckets are stable.
func ditherNoise(x, y, ch int) float32 {
	h := uint32(x)*0x8da6b343 ^ uint32(y)*0xd8163841 ^ uint32(ch)*0xcb1ab31f
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return float32(h>>8)/(1<<24) - 0.5
}
