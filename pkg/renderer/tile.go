package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SeedSource supplies the per-run random stream that tile samplers are seeded
// from. *rand.Rand and *core.RandomSampler both satisfy it.
type SeedSource interface {
	Int63() int64
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID      int                 // Unique tile identifier, in row-major order
	Bounds  image.Rectangle     // Pixel bounds (x0,y0,x1,y1)
	Sampler *core.RandomSampler // Tile-specific sampler for deterministic results
}

// NewTile creates a new tile with its own seeded sampler
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewRandomSampler(rand.New(rand.NewSource(seed))),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image. Seeds are
// drawn from seeds in tile order, so the same source always yields the same
// samplers no matter how tiles are later scheduled.
func NewTileGrid(width, height, tileSize int, seeds SeedSource) []*Tile {
	if tileSize <= 0 {
		tileSize = max(width, height, 1)
	}

	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			// Calculate tile bounds
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seeds.Int63()))
			tileID++
		}
	}

	return tiles
}
