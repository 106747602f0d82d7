package escape

import (
	"errors"
	"fmt"
	"image/color"
)

var ErrChannelRange = errors.New("colour channel out of range")

// Grey is an RGB colour with three equal channels.
type Grey struct {
	R, G, B uint8
}

var Black = Grey{}

// NewGrey returns the grey of intensity v, which must be in [0, 255].
func NewGrey(v int) (Grey, error) {
	if v < 0 || v > 255 {
		return Black, fmt.Errorf("%w: %d", ErrChannelRange, v)
	}
	return Grey{R: uint8(v), G: uint8(v), B: uint8(v)}, nil
}

// ClampGrey is NewGrey with v clamped into [0, 255].
func ClampGrey(v int) Grey {
	v = min(max(v, 0), 255)
	return Grey{R: uint8(v), G: uint8(v), B: uint8(v)}
}

// Y is the shared channel value.
func (g Grey) Y() uint8 {
	return g.R
}

func (g Grey) RGBA() (r, gr, b, a uint32) {
	return color.RGBA{R: g.R, G: g.G, B: g.B, A: 0xff}.RGBA()
}

var _ color.Color = Grey{}
