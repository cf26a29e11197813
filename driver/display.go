package driver

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/mixrgb"
	"github.com/gogpu/mixrgb/internal/color"
)

// Sample is the channel type of a display buffer.
type Sample interface {
	uint8 | uint16
}

// Callback receives display buffers.
//
// Before a bucket is rendered the callback is called with a nil buf. After
// it is rendered the callback receives a new buffer of width*height RGBA
// pixels, four samples each, rows top-down. The callback owns buf.
type Callback[T Sample] func(x, y, width, height int, buf []T)

// Display is a driver that quantizes buckets for an interactive viewer.
// Display[uint8] produces 8-bit buffers; Display[uint16] produces 16-bit.
type Display[T Sample] struct {
	cb       Callback[T]
	opts     options
	quantize func(x, y, ch int, v, amplitude float32) T
	closed   atomic.Bool
}

// NewDisplay returns a display driver that sends buffers to cb.
// A nil cb discards the output.
func NewDisplay[T Sample](cb Callback[T], opts ...Option) *Display[T] {
	return &Display[T]{
		cb:       cb,
		opts:     newOptions(opts),
		quantize: quantizer[T](),
	}
}

func quantizer[T Sample]() func(x, y, ch int, v, amplitude float32) T {
	var zero T
	if _, ok := any(zero).(uint8); ok {
		return func(x, y, ch int, v, amplitude float32) T {
			return T(color.Quantize8(x, y, ch, v, amplitude))
		}
	}
	return func(x, y, ch int, v, amplitude float32) T {
		return T(color.Quantize16(x, y, ch, v, amplitude))
	}
}

// SupportsPixelType accepts Float, RGB and RGBA.
func (d *Display[T]) SupportsPixelType(t PixelType) bool {
	switch t {
	case Float, RGB, RGBA:
		return true
	}
	return false
}

// Extensions returns nil: a display driver writes no files.
func (d *Display[T]) Extensions() []string {
	return nil
}

// Prepare signals the callback that bucket b is about to be rendered.
func (d *Display[T]) Prepare(b Bucket) error {
	if d.closed.Load() {
		return ErrClosed
	}
	if d.cb != nil {
		d.cb(b.X, b.Y, b.Width, b.Height, nil)
	}
	return nil
}

// Write converts b to RGBA samples and hands the buffer to the callback.
func (d *Display[T]) Write(b Bucket) error {
	if d.closed.Load() {
		return ErrClosed
	}
	if !d.SupportsPixelType(b.Type) {
		return fmt.Errorf("%w: display driver got %v", ErrUnsupportedPixelType, b.Type)
	}
	if err := b.Validate(); err != nil {
		return err
	}

	buf := make([]T, b.Len()*4)
	for y := range b.Height {
		for x := range b.Width {
			src := b.color(b.sourceIndex(x, y, d.opts.flipY))
			rgb := d.opts.transform.Apply(src.RGB())

			i, j := b.X+x, b.Y+y
			px := buf[(y*b.Width+x)*4:][:4]
			px[0] = d.quantize(i, j, 0, rgb.R, d.opts.dither)
			px[1] = d.quantize(i, j, 1, rgb.G, d.opts.dither)
			px[2] = d.quantize(i, j, 2, rgb.B, d.opts.dither)
			px[3] = d.quantize(i, j, 3, src.A, d.opts.dither)
		}
	}

	mixrgb.Logger().Debug("driver: display bucket", "x", b.X, "y", b.Y, "w", b.Width, "h", b.Height, "type", b.Type)

	if d.cb != nil {
		d.cb(b.X, b.Y, b.Width, b.Height, buf)
	}
	return nil
}

// Close stops the driver. Later calls to Prepare and Write fail.
func (d *Display[T]) Close() error {
	d.closed.Store(true)
	return nil
}
