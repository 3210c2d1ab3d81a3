// Command bezier-demo prints a rational Bézier curve and evenly spaced
// points interpolated along it.
//
// Usage:
//
//	bezier-demo                      # built-in 7-point curve, 50 intervals
//	bezier-demo 10                   # 10 intervals (11 samples)
//	bezier-demo -preset curve.yaml   # curve and weights from a YAML preset
//	bezier-demo -make-preset         # print the built-in preset as YAML
//	bezier-demo -fast 100            # float32 evaluation
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kpango/glg"
	"github.com/spf13/cast"

	bezier "github.com/tphakala/go-bezier"
)

// errBadArgs reports arguments that should print the help text.
var errBadArgs = errors.New("wrong arguments")

// options holds parsed command-line settings.
type options struct {
	samples    int
	presetPath string
	makePreset bool
	fast       bool
	simd       bool
	verbose    bool
}

func main() {
	glg.Get().SetMode(glg.WRITER).SetWriter(os.Stderr)

	err := run(os.Args[1:], os.Stdout)
	switch {
	case errors.Is(err, errBadArgs):
		// An unusable sample count is not fatal; show help and exit cleanly.
		glg.Warnf("%v", err)
		printHelp(os.Stdout)
	case err != nil:
		glg.Fatalf("%v", err)
	}
}

func run(args []string, out io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	p := defaultPreset()
	if opts.presetPath != "" {
		p, err = loadPreset(opts.presetPath)
		if err != nil {
			return err
		}
		if opts.verbose {
			glg.Debugf("Loaded preset %s with %d points", opts.presetPath, len(p.Points))
		}
	}

	if opts.makePreset {
		data, err := p.marshal()
		if err != nil {
			return fmt.Errorf("unable to generate preset: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	samples := opts.samples
	if samples == 0 {
		samples = p.Samples
	}
	if samples == 0 {
		samples = defaultSamples
	}

	cfg := bezier.DefaultConfig()
	cfg.EnableSIMD = opts.simd
	if opts.verbose {
		glg.Debugf("Samples: %d, float32: %v, SIMD: %v (%s)", samples, opts.fast, opts.simd, bezier.SIMDInfo())
	}

	if opts.fast {
		return printCurve[float32](out, p, samples, cfg)
	}
	return printCurve[float64](out, p, samples, cfg)
}

func parseArgs(args []string) (options, error) {
	opts := options{}

	fs := flag.NewFlagSet("bezier-demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.presetPath, "preset", "", "YAML preset file with points, weights and samples")
	fs.BoolVar(&opts.makePreset, "make-preset", false, "print the preset as YAML and exit")
	fs.BoolVar(&opts.fast, "fast", false, "evaluate in float32 precision")
	fs.BoolVar(&opts.simd, "simd", true, "use SIMD kernels for weighted sums")
	fs.BoolVar(&opts.verbose, "v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %w", errBadArgs, err)
	}

	rest := fs.Args()
	if len(rest) > maxArgs {
		return opts, fmt.Errorf("%w: expected at most %d argument, got %d", errBadArgs, maxArgs, len(rest))
	}
	if len(rest) == maxArgs {
		n, err := cast.ToIntE(rest[0])
		if err != nil || n < 1 {
			return opts, fmt.Errorf("%w: invalid sample count %q", errBadArgs, rest[0])
		}
		opts.samples = n
	}

	return opts, nil
}

func printCurve[F bezier.Float](out io.Writer, p preset, samples int, cfg *bezier.Config) error {
	pts, weights := controlPoints[F](p)

	curve, err := bezier.NewRationalCurve(pts, weights, cfg)
	if err != nil {
		return fmt.Errorf("failed to create curve: %w", err)
	}

	fmt.Fprintln(out, "Rational Bezier curve original pts: ")
	for i, pt := range pts {
		fmt.Fprintf(out, "%*s%d%*s%s)%*.*f\n",
			labelWidth, " Index : ", i, fieldWidth, " : pt : (", formatCoords(pt),
			fieldWidth, coordPrecision, weights[i])
	}

	params, err := bezier.Parameters[F](samples)
	if err != nil {
		return err
	}
	values, err := bezier.Sample[F](curve, samples)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nRational Bezier curve interpolated pts :")
	for i, v := range values {
		fmt.Fprintf(out, "%*s%.*f%*s%s)\n",
			labelWidth, " U : ", coordPrecision, params[i], fieldWidth, " : pt : (", formatCoords(v))
	}
	return nil
}

func formatCoords[F bezier.Float](p bezier.Point[F]) string {
	return fmt.Sprintf("%.*f,%.*f,%.*f", coordPrecision, p.X, coordPrecision, p.Y, coordPrecision, p.Z)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "---HELP---")
	fmt.Fprintln(w, "bezier-demo [options] [number of interpolations]")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -preset file.yaml  load points and weights from a preset")
	fmt.Fprintln(w, "  -make-preset       print the preset as YAML")
	fmt.Fprintln(w, "  -fast              float32 evaluation")
	fmt.Fprintln(w, "  -simd=false        disable SIMD kernels")
	fmt.Fprintln(w, "  -v                 verbose output")
}
