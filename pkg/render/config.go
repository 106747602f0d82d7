package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/raster"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

const (
	DefaultWidth   = 1024
	DefaultHeight  = 768
	DefaultWorkers = 4

	// DefaultMaxFailureRatio is the share of pixels allowed to fail before
	// a render is abandoned.
	DefaultMaxFailureRatio = 0.01
)

var (
	ErrInvalidWorkers      = errors.New("worker count must not be negative")
	ErrInvalidFailureRatio = errors.New("max failure ratio must be in [0, 1]")
)

// DefaultTransform is the default 1024x768 frame at 0.005 plane units per pixel.
var DefaultTransform = transforms.NewAffine(0, DefaultWidth, DefaultHeight, 0, 0.005)

// Config describes one render.
type Config struct {
	Dimensions raster.Dimensions
	Transform  transforms.Affine

	Colouring     escape.Colouring
	MaxIterations int

	// Workers is the number of goroutines evaluating pixels. Zero means
	// GOMAXPROCS and one evaluates every pixel on the calling goroutine.
	Workers int

	// MaxFailureRatio bounds the share of pixels that may fail to evaluate.
	// Failed pixels are left black.
	MaxFailureRatio float64

	// Logger receives progress and per-pixel debug records. Nil is silent.
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Dimensions:      raster.Dimensions{Width: DefaultWidth, Height: DefaultHeight},
		Transform:       DefaultTransform,
		Colouring:       escape.Discrete,
		MaxIterations:   escape.DefaultDiscreteIterations,
		Workers:         DefaultWorkers,
		MaxFailureRatio: DefaultMaxFailureRatio,
	}
}

// Validate checks everything that can be checked before evaluating a pixel.
func (c Config) Validate() error {
	if err := c.Dimensions.Validate(); err != nil {
		return err
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: got %d", escape.ErrInvalidIterations, c.MaxIterations)
	}
	if c.Colouring != escape.Discrete && c.Colouring != escape.Smooth {
		return fmt.Errorf("%w: %v", escape.ErrUnknownColouring, c.Colouring)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if !(c.MaxFailureRatio >= 0 && c.MaxFailureRatio <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidFailureRatio, c.MaxFailureRatio)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return escape.NopLogger()
	}
	return c.Logger
}
