package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/output"
	"github.com/willbeason/mandelbrot/pkg/raster"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

const (
	flagWidth       = "width"
	flagHeight      = "height"
	flagLeft        = "left"
	flagRight       = "right"
	flagBottom      = "bottom"
	flagTop         = "top"
	flagScale       = "scale"
	flagColouring   = "colouring"
	flagIterations  = "iterations"
	flagWorkers     = "workers"
	flagMaxFailures = "max-failures"
	flagOverlay     = "overlay"
	flagOut         = "out"
	flagVerbose     = "verbose"
)

// overlayColour is the outline colour of the decorative circle.
var overlayColour = color.RGBA{R: 0xff, A: 0xff}

type options struct {
	width, height            int
	left, right, bottom, top float64
	scale                    float64
	colouring                escape.Colouring
	iterations               int
	workers                  int
	maxFailures              float64
	overlay                  bool
	out                      string
	verbose                  bool
}

func mainCmd() *cobra.Command {
	opts := &options{colouring: escape.Discrete}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render a greyscale Mandelbrot set",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	defaults := render.DefaultConfig()
	flags := cmd.Flags()
	flags.IntVar(&opts.width, flagWidth, defaults.Dimensions.Width, "image width in pixels")
	flags.IntVar(&opts.height, flagHeight, defaults.Dimensions.Height, "image height in pixels")
	flags.Float64Var(&opts.left, flagLeft, defaults.Transform.Left, "left edge of the frame")
	flags.Float64Var(&opts.right, flagRight, defaults.Transform.Right, "right edge of the frame")
	flags.Float64Var(&opts.bottom, flagBottom, defaults.Transform.Bottom, "bottom edge of the frame")
	flags.Float64Var(&opts.top, flagTop, defaults.Transform.Top, "top edge of the frame")
	flags.Float64Var(&opts.scale, flagScale, defaults.Transform.Scale, "plane units per pixel")
	flags.Var(&opts.colouring, flagColouring, "colouring of escaped points: discrete or smooth")
	flags.IntVar(&opts.iterations, flagIterations, 0,
		fmt.Sprintf("iteration cutoff (default %d for discrete, %d for smooth)",
			escape.DefaultDiscreteIterations, escape.DefaultSmoothIterations))
	flags.IntVar(&opts.workers, flagWorkers, defaults.Workers, "pixel evaluation goroutines, 0 for one per CPU")
	flags.Float64Var(&opts.maxFailures, flagMaxFailures, defaults.MaxFailureRatio, "share of pixels allowed to fail")
	flags.BoolVar(&opts.overlay, flagOverlay, false, "draw a circle around the image center")
	flags.StringVarP(&opts.out, flagOut, "o", "test.png", "output file (.png, .bmp, .tif)")
	flags.BoolVarP(&opts.verbose, flagVerbose, "v", false, "log every pixel")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	iterations := opts.iterations
	if !cmd.Flags().Changed(flagIterations) {
		iterations = opts.colouring.DefaultIterations()
	}

	cfg := render.Config{
		Dimensions:      raster.Dimensions{Width: opts.width, Height: opts.height},
		Transform:       transforms.NewAffine(opts.left, opts.right, opts.bottom, opts.top, opts.scale),
		Colouring:       opts.colouring,
		MaxIterations:   iterations,
		Workers:         opts.workers,
		MaxFailureRatio: opts.maxFailures,
		Logger:          logger,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := output.FormatFromPath(opts.out); err != nil {
		return err
	}

	rendered, err := render.Render(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	img := rendered.RGBA()
	if opts.overlay {
		output.CenteredCircle(img.Bounds(), output.DefaultOverlayRadius, overlayColour).Draw(img)
	}

	if err := output.Save(opts.out, img); err != nil {
		return err
	}
	logger.Info("saved", "file", opts.out)

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
