package transforms

import (
	"math"
	"testing"

	"github.com/willbeason/mandelbrot/pkg/raster"
)

func TestNewAffine_Centers(t *testing.T) {
	a := NewAffine(0, 1024, 768, 0, 0.005)

	if math.Abs(a.CenterX-2.56) > 1e-12 {
		t.Errorf("CenterX = %v, want 2.56", a.CenterX)
	}
	if math.Abs(a.CenterY-1.92) > 1e-12 {
		t.Errorf("CenterY = %v, want 1.92", a.CenterY)
	}
}

func TestAffine_Apply(t *testing.T) {
	a := NewAffine(0, 1, 1, 0, 1.0)

	tests := []struct {
		x, y           float64
		wantRe, wantIm float64
	}{
		{0, 0, -0.5, -0.5},
		{1, 0, 0.5, -0.5},
		{0, 3, -0.5, 2.5},
		{2, 2, 1.5, 1.5},
	}

	for _, tt := range tests {
		re, im := a.Apply(tt.x, tt.y)
		if re != tt.wantRe || im != tt.wantIm {
			t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, re, im, tt.wantRe, tt.wantIm)
		}
	}
}

func TestAffine_PointSwapsAxes(t *testing.T) {
	a := NewAffine(0, 1, 1, 0, 1.0)

	got := a.Point(raster.Pixel{X: 3, Y: 1})
	want := complex(0.5, 2.5)
	if got != want {
		t.Errorf("Point({3, 1}) = %v, want %v", got, want)
	}
}

func TestAffine_Pure(t *testing.T) {
	a := NewAffine(-2, 1, 1, -1, 0.01)
	p := raster.Pixel{X: 17, Y: 42}

	first := a.Point(p)
	for range 10 {
		if got := a.Point(p); got != first {
			t.Fatalf("Point(%v) = %v, previously %v", p, got, first)
		}
	}
}
