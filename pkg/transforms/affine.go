package transforms

import "github.com/willbeason/mandelbrot/pkg/raster"

// Affine maps pixel space onto the complex plane by scaling and then
// subtracting a precomputed center offset.
//
// The zero value maps every pixel to the origin; use NewAffine.
type Affine struct {
	Left, Right, Bottom, Top float64
	Scale                    float64

	// CenterX and CenterY are derived from the bounds and Scale by NewAffine.
	CenterX, CenterY float64
}

func NewAffine(left, right, bottom, top, scale float64) Affine {
	return Affine{
		Left:    left,
		Right:   right,
		Bottom:  bottom,
		Top:     top,
		Scale:   scale,
		CenterX: scale * (right - left) / 2,
		CenterY: scale * (bottom - top) / 2,
	}
}

// Apply maps the pair (x, y) to (re, im).
func (a Affine) Apply(x, y float64) (float64, float64) {
	return x*a.Scale - a.CenterX, y*a.Scale - a.CenterY
}

// Point returns the parameter c for a pixel. The pixel row is passed as the
// first input, so rows run along the real axis and columns along the
// imaginary axis. This rotates the set a quarter turn relative to the raster.
func (a Affine) Point(p raster.Pixel) complex128 {
	re, im := a.Apply(float64(p.Y), float64(p.X))
	return complex(re, im)
}
