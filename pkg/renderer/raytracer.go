package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int     // Number of anti-aliasing rays per pixel
	Height          float64 // Screen height in pixels, <= 0 uses the view plane height
	TileSize        int     // Size of square tiles handed to workers
	NumWorkers      int     // Number of parallel workers, <= 0 uses runtime.NumCPU()
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 32,
		Height:          0,
		TileSize:        32,
		NumWorkers:      0,
	}
}

// Raytracer renders a scene through its camera's screen
type Raytracer struct {
	scene      *scene.Scene
	screen     geometry.Screen
	integrator integrator.Integrator
	config     SamplingConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer shading with the Phong integrator
func NewRaytracer(s *scene.Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	if config.SamplesPerPixel <= 0 {
		config.SamplesPerPixel = DefaultSamplingConfig().SamplesPerPixel
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		scene:      s,
		screen:     geometry.NewScreen(s.Camera, config.Height),
		integrator: integrator.NewPhong(),
		config:     config,
		logger:     logger,
	}
}

// SetIntegrator replaces the integrator used for shading
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// Screen returns the view plane rays are cast through
func (rt *Raytracer) Screen() geometry.Screen {
	return rt.screen
}

// Width returns the image width in pixels
func (rt *Raytracer) Width() int {
	return rt.screen.PixelWidth()
}

// Height returns the image height in pixels
func (rt *Raytracer) Height() int {
	return rt.screen.PixelHeight()
}

// RenderPixel averages SamplesPerPixel rays through pixel (u, v). Each sample
// draws one offset r and aims at (u+r, v+r): the jitter moves along the
// pixel's diagonal only.
func (rt *Raytracer) RenderPixel(u, v int, sampler core.Sampler, stats *RenderStats) core.Vec3 {
	eye := rt.scene.Camera.Position
	colorAccum := core.Vec3{}

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		r := sampler.Get1D()
		target := rt.screen.ToWorld(float64(u)+r, float64(v)+r)

		color, rayStats := rt.integrator.RayColor(core.NewRay(eye, target), rt.scene)
		colorAccum = colorAccum.Add(color)
		stats.addRay(rayStats)
	}

	return colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// RenderBounds renders every pixel inside bounds row by row
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, writer PixelWriter, sampler core.Sampler) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for v := bounds.Min.Y; v < bounds.Max.Y; v++ {
		for u := bounds.Min.X; u < bounds.Max.X; u++ {
			writeColor(writer, u, v, rt.RenderPixel(u, v, sampler, &stats))
		}
	}

	stats.finalize()
	return stats
}

// Render renders the whole image into writer. Tile samplers are seeded from
// seeds in tile order, so a given seed source produces the same image for any
// number of workers. Cancellation is checked between tiles.
func (rt *Raytracer) Render(ctx context.Context, writer PixelWriter, seeds SeedSource) (RenderStats, error) {
	start := time.Now()
	width, height := rt.Width(), rt.Height()
	tiles := NewTileGrid(width, height, rt.config.TileSize, seeds)

	workerPool := NewWorkerPool(rt, writer, rt.config.NumWorkers, len(tiles))
	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, %d primitives, %d lights (%d tiles, %d workers)\n",
		width, height, rt.config.SamplesPerPixel, rt.scene.GetPrimitiveCount(), len(rt.scene.Lights),
		len(tiles), workerPool.GetNumWorkers())

	workerPool.Start(ctx)
	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	workerPool.Stop()

	var stats RenderStats
	var renderErr error
	completed := 0
	for {
		result, ok := workerPool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
		completed++
		logDebug(rt.logger, "Tile %d done (%d/%d)", result.TaskID, completed, len(tiles))
	}

	if renderErr != nil {
		return stats, fmt.Errorf("render stopped after %d of %d tiles: %w", completed, len(tiles), renderErr)
	}

	rt.logger.Printf("Render complete in %v: %d samples, %d hits, %d shadow rays (%d occluded)\n",
		time.Since(start).Round(time.Millisecond), stats.TotalSamples, stats.Hits, stats.ShadowRays, stats.OccludedRays)

	return stats, nil
}

// RenderImage renders into a new RGBA image sized to the screen
func (rt *Raytracer) RenderImage(ctx context.Context, seeds SeedSource) (*image.RGBA, RenderStats, error) {
	writer := NewImageWriter(rt.Width(), rt.Height())
	stats, err := rt.Render(ctx, writer, seeds)
	if err != nil {
		return nil, stats, err
	}
	return writer.Image, stats, nil
}
