package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PixelWriter receives finished pixels. u grows to the right and v grows
// downwards from the top-left corner. Implementations must accept concurrent
// writes to distinct pixels.
type PixelWriter interface {
	WritePixel(u, v int, r, g, b uint8)
}

// ImageWriter adapts an *image.RGBA to PixelWriter
type ImageWriter struct {
	Image *image.RGBA
}

// NewImageWriter creates a writer backed by a new opaque black image
func NewImageWriter(width, height int) *ImageWriter {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return &ImageWriter{Image: img}
}

// WritePixel sets pixel (u, v) to an opaque color
func (w *ImageWriter) WritePixel(u, v int, r, g, b uint8) {
	w.Image.SetRGBA(u, v, color.RGBA{R: r, G: g, B: b, A: 255})
}

// toByte scales a [0,1] channel to [0,255], clamping out-of-range values
func toByte(c float64) uint8 {
	return uint8(math.Max(0, math.Min(255, c*255)))
}

// writeColor converts c to 8-bit channels and writes it to (u, v)
func writeColor(w PixelWriter, u, v int, c core.Vec3) {
	w.WritePixel(u, v, toByte(c.X), toByte(c.Y), toByte(c.Z))
}
