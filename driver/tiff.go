package driver

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"golang.org/x/image/tiff"

	"github.com/gogpu/mixrgb"
	icolor "github.com/gogpu/mixrgb/internal/color"
)

// DefaultTIFFFilename is the file a TIFF driver writes when no filename is set.
const DefaultTIFFFilename = "output.tif"

// TIFF is a file driver that assembles buckets into one 16-bit RGBA image
// and encodes it as a Deflate-compressed TIFF on Close.
type TIFF struct {
	opts options

	mu     sync.Mutex
	img    *image.NRGBA64
	closed bool
}

// NewTIFF returns a TIFF driver for a width x height image.
// The output path is set with WithFilename.
func NewTIFF(width, height int, opts ...Option) *TIFF {
	o := newOptions(opts)
	if o.filename == "" {
		o.filename = DefaultTIFFFilename
	}
	return &TIFF{
		opts: o,
		img:  image.NewNRGBA64(image.Rect(0, 0, width, height)),
	}
}

// SupportsPixelType accepts Float, RGB and RGBA.
func (d *TIFF) SupportsPixelType(t PixelType) bool {
	switch t {
	case Float, RGB, RGBA:
		return true
	}
	return false
}

// Extensions returns "tif" and "tiff".
func (d *TIFF) Extensions() []string {
	return []string{"tif", "tiff"}
}

// Prepare fails with ErrClosed after Close and otherwise does nothing.
func (d *TIFF) Prepare(Bucket) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	return nil
}

// Write quantizes b into the image.
func (d *TIFF) Write(b Bucket) error {
	if !d.SupportsPixelType(b.Type) {
		return fmt.Errorf("%w: tiff driver got %v", ErrUnsupportedPixelType, b.Type)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	r := image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
	if !r.In(d.img.Rect) {
		return fmt.Errorf("%w: bucket %v outside image %v", ErrBucketSize, r, d.img.Rect)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}

	amp := d.opts.dither
	for y := range b.Height {
		for x := range b.Width {
			src := b.color(b.sourceIndex(x, y, d.opts.flipY))
			rgb := d.opts.transform.Apply(src.RGB())

			i, j := b.X+x, b.Y+y
			d.img.SetNRGBA64(i, j, color.NRGBA64{
				R: icolor.Quantize16(i, j, 0, rgb.R, amp),
				G: icolor.Quantize16(i, j, 1, rgb.G, amp),
				B: icolor.Quantize16(i, j, 2, rgb.B, amp),
				A: icolor.Quantize16(i, j, 3, src.A, amp),
			})
		}
	}
	return nil
}

// Image returns a copy of the image assembled so far. It may be called
// while buckets are still being written.
func (d *TIFF) Image() *image.NRGBA64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	img := image.NewNRGBA64(d.img.Rect)
	copy(img.Pix, d.img.Pix)
	return img
}

// Close encodes the image to the configured file.
// Calling Close again does nothing.
func (d *TIFF) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true

	f, err := os.Create(d.opts.filename)
	if err != nil {
		return fmt.Errorf("driver: tiff: %w", err)
	}
	if err := tiff.Encode(f, d.img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		_ = f.Close()
		return fmt.Errorf("driver: tiff: encode %s: %w", d.opts.filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("driver: tiff: %w", err)
	}

	mixrgb.Logger().Info("driver: image written", "file", d.opts.filename, "size", d.img.Rect.Size())
	return nil
}
