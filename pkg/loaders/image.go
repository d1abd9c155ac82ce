package loaders

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// jpegQuality is used for .jpg/.jpeg output
const jpegQuality = 95

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// SaveImage writes img to path, choosing the encoder from the extension:
// .png, .jpg/.jpeg or .bmp. Missing parent directories are created.
func SaveImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		err = gg.SavePNG(path, img)
	case ".jpg", ".jpeg":
		err = gg.SaveJPG(path, img, jpegQuality)
	case ".bmp":
		err = saveBMP(path, img)
	default:
		return fmt.Errorf("cannot save %s: %w: image extension %q", path, ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

func saveBMP(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := bmp.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// LoadImage loads a PNG, JPEG or BMP image and converts it to Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	// gg.LoadImage uses the registered decoders; bmp registers itself on import
	img, err := gg.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}

	// Convert to Vec3 array
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
