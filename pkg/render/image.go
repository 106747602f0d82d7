package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/raster"
)

// Image is a rendered raster. Pix holds one colour per linear index, so
// pixel (x, y) is Pix[y*Width+x].
type Image struct {
	Dimensions raster.Dimensions
	Pix        []escape.Grey

	// Failures is the number of pixels that could not be evaluated.
	Failures int
}

func (m *Image) ColorModel() color.Model { return color.RGBAModel }

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Dimensions.Width, m.Dimensions.Height)
}

func (m *Image) At(x, y int) color.Color {
	i, err := raster.PixelToIndex(raster.Pixel{X: x, Y: y}, m.Dimensions)
	if err != nil {
		return color.RGBA{}
	}
	return m.Pix[i]
}

// RGBA copies the image into an opaque RGBA buffer that overlays can draw on.
func (m *Image) RGBA() *image.RGBA {
	dst := image.NewRGBA(m.Bounds())
	draw.Draw(dst, dst.Bounds(), m, image.Point{}, draw.Src)
	return dst
}

var _ image.Image = (*Image)(nil)
