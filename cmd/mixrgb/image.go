package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Decoders for -base and -layer.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/mixrgb"
	"github.com/gogpu/mixrgb/blend"
	"github.com/gogpu/mixrgb/driver"
	"github.com/gogpu/mixrgb/internal/color"
	"github.com/gogpu/mixrgb/internal/parallel"
)

// imageJob blends a layer image onto a base image of the same size.
type imageJob struct {
	base, layer string
	output      string
	mode        blend.Mode
	factor      float32
	workers     int

	// linear blends in linear light: inputs are decoded from sRGB and the
	// result is encoded back.
	linear bool
}

func (j imageJob) run(ctx context.Context) error {
	a, err := decodeFile(j.base)
	if err != nil {
		return err
	}
	b, err := decodeFile(j.layer)
	if err != nil {
		return err
	}
	if a.Bounds().Size() != b.Bounds().Size() {
		return fmt.Errorf("image sizes differ: %v and %v", a.Bounds().Size(), b.Bounds().Size())
	}

	rows, err := blendRows(ctx, a, b, j.factor, j.mode, j.linear, j.workers)
	if err != nil {
		return err
	}

	opts := []driver.Option{driver.WithDither(0)}
	if j.linear {
		opts = append(opts, driver.WithTransform(driver.SRGBTransform))
	}
	return writeRows(ctx, rows, a.Bounds().Dx(), a.Bounds().Dy(), j.output, j.workers, opts...)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	mixrgb.Logger().Debug("image decoded", "file", path, "format", format, "size", img.Bounds().Size())
	return img, nil
}

// blendRows blends a and b row by row over a worker pool. Each row becomes
// one RGBA bucket, positioned relative to the top-left corner.
func blendRows(ctx context.Context, a, b image.Image, f float32, mode blend.Mode, linear bool, workers int) ([]driver.Bucket, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", blend.ErrInvalidMode, mode)
	}

	ab, bb := a.Bounds(), b.Bounds()
	w, h := ab.Dx(), ab.Dy()
	rows := make([]driver.Bucket, h)

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	err := pool.Run(ctx, h, func(y int) error {
		px := make([]mixrgb.RGBA, w)
		for x := range w {
			ca := mixrgb.FromColor(a.At(ab.Min.X+x, ab.Min.Y+y))
			cb := mixrgb.FromColor(b.At(bb.Min.X+x, bb.Min.Y+y))
			if linear {
				ca, cb = toLinear(ca), toLinear(cb)
			}
			out, err := blend.EvaluateRGBA(ca, cb, f, mode)
			if err != nil {
				return err
			}
			px[x] = out
		}
		rows[y] = driver.Bucket{Y: y, Width: w, Height: 1, Type: driver.RGBA, RGBA: px}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func toLinear(c mixrgb.RGBA) mixrgb.RGBA {
	return mixrgb.RGBA{
		R: color.SRGBToLinear(c.R),
		G: color.SRGBToLinear(c.G),
		B: color.SRGBToLinear(c.B),
		A: c.A,
	}
}

// writeRows quantizes rows to 16 bits and writes them to path. TIFF output
// goes through the TIFF driver; anything else is collected by a display
// driver and encoded as PNG.
func writeRows(ctx context.Context, rows []driver.Bucket, w, h int, path string, workers int, opts ...driver.Option) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		d := driver.NewTIFF(w, h, append(opts, driver.WithFilename(path))...)
		if err := driver.ProcessAll(ctx, d, rows, driver.WithWorkers(workers)); err != nil {
			return err
		}
		return d.Close()
	}

	img := image.NewNRGBA64(image.Rect(0, 0, w, h))
	d := driver.NewDisplay(func(x, y, bw, bh int, buf []uint16) {
		if buf == nil {
			return
		}
		for row := range bh {
			dst := img.Pix[img.PixOffset(x, y+row):]
			for i, v := range buf[row*bw*4 : (row+1)*bw*4] {
				dst[2*i] = uint8(v >> 8)
				dst[2*i+1] = uint8(v)
			}
		}
	}, opts...)
	if err := driver.ProcessAll(ctx, d, rows, driver.WithWorkers(workers)); err != nil {
		return err
	}
	if err := d.Close(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
