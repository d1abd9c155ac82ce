package loaders

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// createTestImage returns a 2x2 image with white, red, green and blue pixels
func createTestImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func TestSaveImage_LosslessRoundTrip(t *testing.T) {
	for _, ext := range []string{".png", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "out"+ext)
			if err := SaveImage(path, createTestImage()); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			data, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if data.Width != 2 || data.Height != 2 {
				t.Fatalf("Expected 2x2 image, got %dx%d", data.Width, data.Height)
			}

			expected := map[[2]int]core.Vec3{
				{0, 0}: core.NewVec3(1, 1, 1),
				{1, 0}: core.NewVec3(1, 0, 0),
				{0, 1}: core.NewVec3(0, 1, 0),
				{1, 1}: core.NewVec3(0, 0, 1),
			}
			for p, want := range expected {
				if got := data.Pixels[p[1]*data.Width+p[0]]; !got.ApproxEqual(want, 1e-6) {
					t.Errorf("Pixel %v: expected %v, got %v", p, want, got)
				}
			}
		})
	}
}

func TestSaveImage_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpeg")
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for i := range img.Pix {
		img.Pix[i] = 128
	}

	if err := SaveImage(path, img); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if data.Width != 16 || data.Height != 8 {
		t.Errorf("Expected 16x8 image, got %dx%d", data.Width, data.Height)
	}

	// Lossy, but a flat grey survives closely
	if got := data.Pixels[5*data.Width+5]; !got.ApproxEqual(core.NewVec3(0.5, 0.5, 0.5), 0.05) {
		t.Errorf("Expected mid grey, got %v", got)
	}
}

func TestSaveImage_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tiff")
	err := SaveImage(path, createTestImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Expected no file to be written")
	}
}

func TestLoadImage_MissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
