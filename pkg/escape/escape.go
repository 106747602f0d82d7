package escape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"

	"github.com/willbeason/mandelbrot/pkg/transforms"
)

const (
	// Radius is the escape bound on |z|.
	Radius = 2.0

	DefaultDiscreteIterations = 50
	DefaultSmoothIterations   = 20
)

var (
	ErrInvalidIterations = errors.New("max iterations must be at least 1")
	ErrUnknownColouring  = errors.New("unknown colouring")
	ErrNonFinite         = errors.New("non-finite point")
)

// Colouring selects how an escaped orbit becomes an intensity.
type Colouring int

const (
	// Discrete uses the raw iteration count at escape.
	Discrete Colouring = iota
	// Smooth refines the count with the escape magnitude to reduce banding.
	Smooth
)

func (c Colouring) String() string {
	switch c {
	case Discrete:
		return "discrete"
	case Smooth:
		return "smooth"
	default:
		return fmt.Sprintf("Colouring(%d)", int(c))
	}
}

// DefaultIterations is the iteration cutoff used when none is configured.
func (c Colouring) DefaultIterations() int {
	if c == Smooth {
		return DefaultSmoothIterations
	}
	return DefaultDiscreteIterations
}

func ParseColouring(s string) (Colouring, error) {
	switch s {
	case "discrete":
		return Discrete, nil
	case "smooth":
		return Smooth, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColouring, s)
}

// Set and Type let a *Colouring be used directly as a command-line flag value.
func (c *Colouring) Set(s string) error {
	parsed, err := ParseColouring(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Colouring) Type() string {
	return "colouring"
}

// Evaluator colours points of the complex plane by escape time.
// An Evaluator is immutable and safe for concurrent use.
type Evaluator struct {
	colouring     Colouring
	maxIterations int

	logger *slog.Logger
	debug  bool
}

type Option func(*Evaluator)

// WithLogger sends per-point "inside"/"outside" records to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

func NewEvaluator(colouring Colouring, maxIterations int, opts ...Option) (*Evaluator, error) {
	if colouring != Discrete && colouring != Smooth {
		return nil, fmt.Errorf("%w: %v", ErrUnknownColouring, colouring)
	}
	if maxIterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIterations)
	}

	e := &Evaluator{
		colouring:     colouring,
		maxIterations: maxIterations,
		logger:        NopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.debug = e.logger.Enabled(context.Background(), slog.LevelDebug)

	return e, nil
}

func (e *Evaluator) Colouring() Colouring { return e.colouring }
func (e *Evaluator) MaxIterations() int   { return e.maxIterations }

// Iterate runs the orbit of 0 under z -> z^2 + c. If |z| exceeds Radius
// the orbit escaped at the returned 0-indexed count and z is the first
// value outside the bound.
func (e *Evaluator) Iterate(c complex128) (count int, z complex128, escaped bool) {
	for count = 0; count < e.maxIterations; count++ {
		z = transforms.Mandelbrot(z, c)
		if cmplx.Abs(z) > Radius {
			return count, z, true
		}
	}
	return e.maxIterations, z, false
}

// Evaluate returns the intensity for c. Bounded orbits are Black.
//
// A non-finite c yields Black and ErrNonFinite; callers rendering many
// points should treat that as a failure of this point alone.
func (e *Evaluator) Evaluate(c complex128) (Grey, error) {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		return Black, fmt.Errorf("%w: %v", ErrNonFinite, c)
	}

	count, z, escaped := e.Iterate(c)
	if !escaped {
		if e.debug {
			e.logger.Debug("inside", "re", real(c), "im", imag(c))
		}
		return Black, nil
	}

	if e.debug {
		e.logger.Debug("outside", "re", real(c), "im", imag(c), "count", count)
	}

	if e.colouring == Smooth {
		return e.smooth(count, z), nil
	}
	return ClampGrey(count), nil
}

// smooth estimates a fractional escape count from the escape magnitude.
// Escaped points never share the colour of bounded ones, so the result is
// at least 1 even when the estimate is negative or not a number.
func (e *Evaluator) smooth(count int, z complex128) Grey {
	abs := cmplx.Abs(z)
	if abs <= 1 {
		// log(log|z|) is undefined here; unreachable while Radius > 1.
		return ClampGrey(1)
	}

	sc := float64(count) + 1 - math.Log(math.Log(abs))/math.Ln2
	v := math.Floor(sc / float64(e.maxIterations) * 255)
	if math.IsNaN(v) || v < 1 {
		return ClampGrey(1)
	}
	if v > 255 {
		return ClampGrey(255)
	}
	return ClampGrey(int(v))
}
