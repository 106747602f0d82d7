package raster

import (
	"errors"
	"fmt"
)

// MaxPixels bounds the size of a raster so that a buffer for it can be allocated.
const MaxPixels = 1 << 28

var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrOutOfRange        = errors.New("pixel out of range")
)

// Dimensions is the size of a raster in pixels.
type Dimensions struct {
	Width, Height int
}

// Validate reports whether both sides are positive and the raster has at
// most MaxPixels pixels.
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, d.Width, d.Height)
	}
	// Dividing first keeps the check itself from overflowing.
	if d.Width > MaxPixels/d.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidDimensions, d.Width, d.Height, MaxPixels)
	}
	return nil
}

// Pixels is the total number of pixels, and so one past the largest valid linear index.
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// A Pixel is a raster coordinate with the origin at the top left.
type Pixel struct {
	X, Y int
}

// IndexToPixel decodes a row-major linear index.
func IndexToPixel(index int, d Dimensions) (Pixel, error) {
	if index < 0 || d.Width <= 0 {
		return Pixel{}, fmt.Errorf("%w: index %d for %v", ErrOutOfRange, index, d)
	}

	y, x := index/d.Width, index%d.Width
	if y >= d.Height {
		return Pixel{}, fmt.Errorf("%w: index %d decodes to row %d of %v", ErrOutOfRange, index, y, d)
	}

	return Pixel{X: x, Y: y}, nil
}

// PixelToIndex is the inverse of IndexToPixel.
func PixelToIndex(p Pixel, d Dimensions) (int, error) {
	if p.X < 0 || p.X >= d.Width || p.Y < 0 || p.Y >= d.Height {
		return 0, fmt.Errorf("%w: (%d, %d) for %v", ErrOutOfRange, p.X, p.Y, d)
	}

	return p.Y*d.Width + p.X, nil
}
