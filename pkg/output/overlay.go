package output

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so four curves approximate a quarter ellipse each.
const kappa = 0.5522847498307936

// DefaultOverlayRadius is the radius of the decorative circle.
const DefaultOverlayRadius = 30

// Ellipse is an unfilled, axis-aligned ellipse outline.
type Ellipse struct {
	CX, CY float64
	RX, RY float64
	// Width is the outline thickness, measured inwards from the radii.
	Width  float64
	Colour color.Color
}

// CenteredCircle returns a one pixel wide circle in the middle of bounds.
func CenteredCircle(bounds image.Rectangle, radius float64, c color.Color) Ellipse {
	return Ellipse{
		CX:     float64(bounds.Min.X) + float64(bounds.Dx())/2,
		CY:     float64(bounds.Min.Y) + float64(bounds.Dy())/2,
		RX:     radius,
		RY:     radius,
		Width:  1,
		Colour: c,
	}
}

// Draw composites the outline over dst. Pixels away from the outline are untouched.
func (e Ellipse) Draw(dst draw.Image) {
	b := dst.Bounds()
	if b.Empty() || e.RX <= 0 || e.RY <= 0 {
		return
	}

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	cx := e.CX - float64(b.Min.X)
	cy := e.CY - float64(b.Min.Y)

	// The inner ellipse winds the other way, cancelling coverage inside the ring.
	ellipsePath(z, cx, cy, e.RX, e.RY, false)
	if irx, iry := e.RX-e.Width, e.RY-e.Width; irx > 0 && iry > 0 {
		ellipsePath(z, cx, cy, irx, iry, true)
	}

	z.Draw(dst, b, image.NewUniform(e.Colour), image.Point{})
}

func ellipsePath(z *vector.Rasterizer, cx, cy, rx, ry float64, reverse bool) {
	kx, ky := kappa*rx, kappa*ry

	f := func(v float64) float32 { return float32(v) }

	z.MoveTo(f(cx+rx), f(cy))
	if !reverse {
		z.CubeTo(f(cx+rx), f(cy+ky), f(cx+kx), f(cy+ry), f(cx), f(cy+ry))
		z.CubeTo(f(cx-kx), f(cy+ry), f(cx-rx), f(cy+ky), f(cx-rx), f(cy))
		z.CubeTo(f(cx-rx), f(cy-ky), f(cx-kx), f(cy-ry), f(cx), f(cy-ry))
		z.CubeTo(f(cx+kx), f(cy-ry), f(cx+rx), f(cy-ky), f(cx+rx), f(cy))
	} else {
		z.CubeTo(f(cx+rx), f(cy-ky), f(cx+kx), f(cy-ry), f(cx), f(cy-ry))
		z.CubeTo(f(cx-kx), f(cy-ry), f(cx-rx), f(cy-ky), f(cx-rx), f(cy))
		z.CubeTo(f(cx-rx), f(cy+ky), f(cx-kx), f(cy+ry), f(cx), f(cy+ry))
		z.CubeTo(f(cx+kx), f(cy+ry), f(cx+rx), f(cy+ky), f(cx+rx), f(cy))
	}
	z.ClosePath()
}
