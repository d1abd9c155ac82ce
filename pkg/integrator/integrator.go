package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// RayStats counts the work done while computing a single ray's color
type RayStats struct {
	Hit        bool // Primary ray hit a surface
	ShadowRays int  // Shadow rays cast towards lights
	Occluded   int  // Shadow rays that were blocked
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray. It must be safe for
	// concurrent use; the scene is never modified.
	RayColor(ray core.Ray, scene *scene.Scene) (core.Vec3, RayStats)
}
