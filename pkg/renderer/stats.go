package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken (one primary ray each)
	AverageSamples float64 // Average samples per pixel
	Hits           int     // Primary rays that hit a surface
	ShadowRays     int     // Shadow rays cast towards lights
	OccludedRays   int     // Shadow rays that were blocked
}

// addRay accounts for one primary ray and the shadow rays it spawned
func (s *RenderStats) addRay(rs integrator.RayStats) {
	s.TotalSamples++
	if rs.Hit {
		s.Hits++
	}
	s.ShadowRays += rs.ShadowRays
	s.OccludedRays += rs.Occluded
}

// Merge adds the counts of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Hits += other.Hits
	s.ShadowRays += other.ShadowRays
	s.OccludedRays += other.OccludedRays
	s.finalize()
}

// finalize recomputes derived statistics
func (s *RenderStats) finalize() {
	if s.TotalPixels == 0 {
		s.AverageSamples = 0
		return
	}
	s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}
	return total / float64(pixels)
}
