// Command mixrgb blends colors and images with the MixRGB blend modes.
//
// Blend two colors:
//
//	mixrgb -mode screen -factor 0.5 -a #336699 -b #ffffff
//
// Blend two images of the same size:
//
//	mixrgb -mode overlay -base photo.png -layer texture.jpg -output out.png
//
// Print the compute shader for a mode, or compile it to SPIR-V:
//
//	mixrgb -mode hue -wgsl
//	mixrgb -mode hue -spirv hue.spv
package main

import (
	"context"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	"github.com/gogpu/mixrgb"
	"github.com/gogpu/mixrgb/blend"
	"github.com/gogpu/mixrgb/gpu"
	"github.com/gogpu/mixrgb/shader"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("mixrgb: %v", err)
	}
}

// run executes the command with args. Errors are returned rather than
// fatal so deferred work, such as stopping the CPU profile, always runs.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mixrgb", flag.ContinueOnError)
	var (
		modeName   = fs.String("mode", "mix", "blend mode")
		factor     = fs.Float64("factor", 0.5, "blend factor")
		colorA     = fs.String("a", "#000000", "base color (hex)")
		colorB     = fs.String("b", "#ffffff", "layer color (hex)")
		base       = fs.String("base", "", "base image")
		layer      = fs.String("layer", "", "layer image")
		output     = fs.String("output", "blend.png", "output image (.png, .tif, .tiff)")
		workers    = fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		linear     = fs.Bool("linear", false, "blend images in linear light instead of sRGB")
		wgsl       = fs.Bool("wgsl", false, "print the compute shader for -mode and exit")
		spirv      = fs.String("spirv", "", "compile the compute shader for -mode to this SPIR-V file and exit")
		dynamic    = fs.Bool("dynamic", false, "with -wgsl or -spirv, use the shader that reads the mode at run time")
		listModes  = fs.Bool("list", false, "list blend modes and exit")
		cpuProfile = fs.String("cpuprofile", "", "write a CPU profile to this directory")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		mixrgb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	if *listModes {
		for _, m := range blend.Modes() {
			fmt.Fprintf(stdout, "%-10s %s\n", m, shader.DisplayName(m))
		}
		return nil
	}

	mode, err := blend.ParseMode(*modeName)
	if err != nil {
		return err
	}

	switch {
	case *wgsl:
		src := gpu.Source()
		if !*dynamic {
			if src, err = gpu.SpecializedSource(mode); err != nil {
				return err
			}
		}
		fmt.Fprint(stdout, src)

	case *spirv != "":
		f, err := os.Create(*spirv)
		if err != nil {
			return err
		}
		if err := writeSPIRV(f, mode, *dynamic); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()

	case *base != "" || *layer != "":
		if *base == "" || *layer == "" {
			return errors.New("-base and -layer must be given together")
		}
		job := imageJob{
			base:    *base,
			layer:   *layer,
			output:  *output,
			mode:    mode,
			factor:  float32(*factor),
			workers: *workers,
			linear:  *linear,
		}
		if err := job.run(context.Background()); err != nil {
			return err
		}
		log.Printf("%s blend of %s and %s saved to %s\n", shader.DisplayName(mode), *base, *layer, *output)

	default:
		out, err := blendHex(*colorA, *colorB, float32(*factor), mode)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
	}
	return nil
}

// writeSPIRV compiles the shader for mode, or the dynamic shader, and
// writes the words to w in little-endian order.
func writeSPIRV(w io.Writer, mode blend.Mode, dynamic bool) error {
	var (
		code []uint32
		err  error
	)
	if dynamic {
		code, err = gpu.CompileDynamic()
	} else {
		code, err = gpu.Compile(mode)
	}
	if err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, code)
}

// blendHex blends two hex colors and formats the result as hex and floats.
func blendHex(a, b string, f float32, mode blend.Mode) (string, error) {
	ca, err := mixrgb.Hex(a)
	if err != nil {
		return "", err
	}
	cb, err := mixrgb.Hex(b)
	if err != nil {
		return "", err
	}
	out, err := blend.EvaluateRGBA(ca, cb, f, mode)
	if err != nil {
		return "", err
	}
	return formatColor(out), nil
}

func formatColor(c mixrgb.RGBA) string {
	return fmt.Sprintf("%s (%.4f, %.4f, %.4f, %.4f)", hexString(c), c.R, c.G, c.B, c.A)
}

func hexString(c mixrgb.RGBA) string {
	to8 := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	if to8(c.A) == 255 {
		return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}
