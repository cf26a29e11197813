// Package driver packs rendered buckets into display buffers and files.
//
// A renderer hands a driver one Bucket at a time: a rectangle of float
// pixels at an offset in the output image. Three drivers are provided:
//
//   - Display converts buckets to 8- or 16-bit RGBA and passes each buffer
//     to a callback, for interactive viewers.
//   - AOV collects the names of the objects seen in a pointer AOV and writes
//     them to a text file on Close.
//   - TIFF assembles buckets into a 16-bit image and encodes it on Close.
//
// Drivers are safe for concurrent use, so ProcessAll can feed them from a
// worker pool. A Display driver is only as safe as its callback.
package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/mixrgb"
	"github.com/gogpu/mixrgb/internal/parallel"
)

var (
	// ErrUnsupportedPixelType is returned when a bucket carries a pixel type
	// the driver does not accept.
	ErrUnsupportedPixelType = errors.New("driver: unsupported pixel type")

	// ErrBucketSize is returned when a bucket's data does not match its
	// dimensions or the bucket lies outside the output image.
	ErrBucketSize = errors.New("driver: bucket size mismatch")

	// ErrClosed is returned by Prepare and Write after Close.
	ErrClosed = errors.New("driver: closed")
)

// Driver receives rendered buckets.
type Driver interface {
	// SupportsPixelType reports whether Write accepts buckets of type t.
	SupportsPixelType(t PixelType) bool

	// Extensions lists the file extensions the driver writes, or nil.
	Extensions() []string

	// Prepare announces a bucket before it is rendered.
	Prepare(b Bucket) error

	// Write consumes a rendered bucket.
	Write(b Bucket) error

	// Close flushes the driver's output.
	Close() error
}

// ProcessAll prepares and writes every bucket through d, using a worker
// pool sized by WithWorkers. It returns the first error and stops starting
// new buckets after it, or after ctx is done.
func ProcessAll(ctx context.Context, d Driver, buckets []Bucket, opts ...Option) error {
	o := newOptions(opts)

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	mixrgb.Logger().Debug("driver: processing buckets", "buckets", len(buckets), "workers", pool.Workers())

	return pool.Run(ctx, len(buckets), func(i int) error {
		b := buckets[i]
		if err := d.Prepare(b); err != nil {
			return fmt.Errorf("driver: prepare bucket (%d,%d): %w", b.X, b.Y, err)
		}
		if err := d.Write(b); err != nil {
			return fmt.Errorf("driver: write bucket (%d,%d): %w", b.X, b.Y, err)
		}
		return nil
	})
}
