package driver

import (
	"fmt"

	"github.com/gogpu/mixrgb"
)

// PixelType identifies the data a bucket carries.
type PixelType uint8

// Pixel types.
const (
	// Float is a single channel shown as gray.
	Float PixelType = iota
	// RGB is a color without alpha, shown opaque.
	RGB
	// RGBA is a color with straight alpha.
	RGBA
	// Pointer is an opaque object reference per pixel.
	Pointer
	// Node is a scene node reference per pixel.
	Node
)

var pixelTypeNames = [...]string{"float", "rgb", "rgba", "pointer", "node"}

// String returns the lowercase name of the pixel type.
func (t PixelType) String() string {
	if int(t) < len(pixelTypeNames) {
		return pixelTypeNames[t]
	}
	return fmt.Sprintf("PixelType(%d)", t)
}

// NamedNode is a scene object referenced from a pointer AOV.
type NamedNode interface {
	Name() string
}

// Bucket is a rectangle of rendered pixels.
//
// Pixels are stored row-major, Width*Height of them, in the slice that
// matches Type. Float uses Float; RGB uses RGB; RGBA uses RGBA; Pointer and
// Node use Nodes.
type Bucket struct {
	X, Y          int
	Width, Height int
	Type          PixelType

	Float []float32
	RGB   []mixrgb.RGB
	RGBA  []mixrgb.RGBA
	Nodes []NamedNode
}

// Len returns the number of pixels in the bucket.
func (b *Bucket) Len() int {
	return b.Width * b.Height
}

// Validate checks that the bucket's data matches its dimensions.
func (b *Bucket) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || b.X < 0 || b.Y < 0 {
		return fmt.Errorf("%w: %dx%d at (%d,%d)", ErrBucketSize, b.Width, b.Height, b.X, b.Y)
	}

	var n int
	switch b.Type {
	case Float:
		n = len(b.Float)
	case RGB:
		n = len(b.RGB)
	case RGBA:
		n = len(b.RGBA)
	case Pointer, Node:
		n = len(b.Nodes)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedPixelType, b.Type)
	}
	if n != b.Len() {
		return fmt.Errorf("%w: %v bucket %dx%d has %d pixels", ErrBucketSize, b.Type, b.Width, b.Height, n)
	}
	return nil
}

// color returns pixel i of a Float, RGB or RGBA bucket as RGBA.
// Float becomes an opaque gray, RGB becomes opaque.
func (b *Bucket) color(i int) mixrgb.RGBA {
	switch b.Type {
	case Float:
		return mixrgb.Gray(b.Float[i]).WithAlpha(1)
	case RGB:
		return b.RGB[i].WithAlpha(1)
	case RGBA:
		return b.RGBA[i]
	}
	return mixrgb.RGBA{}
}

// sourceIndex maps a destination pixel to its index in the bucket data.
// With flipY the rows are read bottom-up.
func (b *Bucket) sourceIndex(x, y int, flipY bool) int {
	if flipY {
		return (b.Height-y-1)*b.Width + x
	}
	return y*b.Width + x
}
