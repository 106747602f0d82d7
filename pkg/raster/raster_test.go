package raster

import (
	"errors"
	"math"
	"testing"
)

func TestDimensions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		d       Dimensions
		wantErr bool
	}{
		{"valid", Dimensions{Width: 4, Height: 4}, false},
		{"single pixel", Dimensions{Width: 1, Height: 1}, false},
		{"zero width", Dimensions{Width: 0, Height: 10}, true},
		{"zero height", Dimensions{Width: 10, Height: 0}, true},
		{"negative", Dimensions{Width: -3, Height: 10}, true},
		{"largest", Dimensions{Width: MaxPixels / 2, Height: 2}, false},
		{"too many pixels", Dimensions{Width: MaxPixels/2 + 1, Height: 2}, true},
		{"product overflows", Dimensions{Width: math.MaxInt/2 + 1, Height: 3}, true},
		{"both sides huge", Dimensions{Width: math.MaxInt, Height: math.MaxInt}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Validate() = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestIndexToPixel(t *testing.T) {
	d := Dimensions{Width: 1024, Height: 768}

	tests := []struct {
		index int
		want  Pixel
	}{
		{0, Pixel{0, 0}},
		{1023, Pixel{1023, 0}},
		{1024, Pixel{0, 1}},
		{1024*767 + 5, Pixel{5, 767}},
		{d.Pixels() - 1, Pixel{1023, 767}},
	}

	for _, tt := range tests {
		got, err := IndexToPixel(tt.index, d)
		if err != nil {
			t.Fatalf("IndexToPixel(%d) error: %v", tt.index, err)
		}
		if got != tt.want {
			t.Errorf("IndexToPixel(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestIndexToPixel_OutOfRange(t *testing.T) {
	d := Dimensions{Width: 7, Height: 3}

	for _, index := range []int{-1, d.Pixels(), d.Pixels() + 1, d.Pixels() * 10} {
		_, err := IndexToPixel(index, d)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("IndexToPixel(%d) = %v, want ErrOutOfRange", index, err)
		}
	}
}

func TestIndexToPixel_RoundTrip(t *testing.T) {
	for _, d := range []Dimensions{{1, 1}, {4, 4}, {7, 3}, {3, 7}, {64, 48}} {
		for i := 0; i < d.Pixels(); i++ {
			p, err := IndexToPixel(i, d)
			if err != nil {
				t.Fatalf("IndexToPixel(%d, %v) error: %v", i, d, err)
			}
			got, err := PixelToIndex(p, d)
			if err != nil {
				t.Fatalf("PixelToIndex(%v, %v) error: %v", p, d, err)
			}
			if got != i {
				t.Errorf("PixelToIndex(IndexToPixel(%d)) = %d for %v", i, got, d)
			}
		}
	}
}

func TestPixelToIndex_AllPixelsValid(t *testing.T) {
	d := Dimensions{Width: 5, Height: 6}
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			i, err := PixelToIndex(Pixel{x, y}, d)
			if err != nil {
				t.Fatalf("PixelToIndex(%d, %d) error: %v", x, y, err)
			}
			if _, err := IndexToPixel(i, d); err != nil {
				t.Errorf("IndexToPixel(%d) error for valid pixel (%d, %d): %v", i, x, y, err)
			}
		}
	}
}

func TestPixelToIndex_OutOfRange(t *testing.T) {
	d := Dimensions{Width: 5, Height: 6}
	for _, p := range []Pixel{{-1, 0}, {0, -1}, {5, 0}, {0, 6}} {
		if _, err := PixelToIndex(p, d); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("PixelToIndex(%v) = %v, want ErrOutOfRange", p, err)
		}
	}
}
