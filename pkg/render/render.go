package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/parallel"
	"github.com/willbeason/mandelbrot/pkg/raster"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

var ErrTooManyFailures = errors.New("too many pixels failed")

// renderer holds the read-only state shared by every row task.
type renderer struct {
	dims      raster.Dimensions
	transform transforms.Affine
	eval      *escape.Evaluator
	logger    *slog.Logger

	pix []escape.Grey

	failures  atomic.Int64
	firstOnce sync.Once
	firstErr  error

	// fatal records a broken pipeline invariant, which fails the whole render.
	fatalOnce sync.Once
	fatal     error
}

// Render evaluates every pixel of cfg and returns the image in linear
// index order. The result does not depend on cfg.Workers.
func Render(ctx context.Context, cfg Config) (*Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.logger()
	eval, err := escape.NewEvaluator(cfg.Colouring, cfg.MaxIterations, escape.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	r := &renderer{
		dims:      cfg.Dimensions,
		transform: cfg.Transform,
		eval:      eval,
		logger:    logger,
		pix:       make([]escape.Grey, cfg.Dimensions.Pixels()),
	}

	pool := parallel.Start(cfg.Workers)
	logger.Info("rendering",
		"dimensions", cfg.Dimensions.String(),
		"colouring", cfg.Colouring.String(),
		"iterations", cfg.MaxIterations,
		"workers", pool.Workers())
	start := time.Now()

	submitted := 0
	for y := range r.dims.Height {
		if ctx.Err() != nil {
			break
		}
		pool.Do(func() {
			r.row(y)
		})
		submitted++
	}
	pool.Wait(true)

	if submitted < r.dims.Height {
		return nil, ctx.Err()
	}
	if r.fatal != nil {
		return nil, r.fatal
	}

	failures := int(r.failures.Load())
	logger.Info("rendered", "elapsed", time.Since(start), "failures", failures)

	allowed := int(cfg.MaxFailureRatio * float64(r.dims.Pixels()))
	if failures > allowed {
		return nil, fmt.Errorf("%w: %d of %d pixels, allowed %d: %w",
			ErrTooManyFailures, failures, r.dims.Pixels(), allowed, r.firstErr)
	}

	return &Image{
		Dimensions: r.dims,
		Pix:        r.pix,
		Failures:   failures,
	}, nil
}

// row evaluates the linear indices of raster row y.
func (r *renderer) row(y int) {
	lo := y * r.dims.Width
	for index := lo; index < lo+r.dims.Width; index++ {
		r.pixel(index)
	}
}

// pixel writes pix[index]. Each index belongs to exactly one row task, so
// writes never overlap. Only evaluation errors are isolated to the pixel.
func (r *renderer) pixel(index int) {
	p, err := raster.IndexToPixel(index, r.dims)
	if err != nil {
		r.fatalOnce.Do(func() {
			r.fatal = fmt.Errorf("render generated index %d: %w", index, err)
			r.logger.Error("invalid pixel index", "index", index, "error", err)
		})
		return
	}

	grey, err := r.eval.Evaluate(r.transform.Point(p))
	if err != nil {
		r.fail(index, fmt.Errorf("pixel (%d, %d): %w", p.X, p.Y, err))
	}
	r.pix[index] = grey
}

func (r *renderer) fail(index int, err error) {
	r.failures.Add(1)
	r.firstOnce.Do(func() {
		r.firstErr = err
		r.logger.Warn("pixel failed", "index", index, "error", err)
	})
}
