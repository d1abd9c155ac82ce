package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Plane represents an infinite two-sided plane defined by a point and normal
type Plane struct {
	Point    core.Vec3     // A point on the plane
	Normal   core.Vec3     // Unit normal
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Intersect solves dot(n, o + t*d) + d0 = 0 with d0 = -dot(n, p).
// Both sides of the plane are visible; the normal is reported as stored.
func (p *Plane) Intersect(ray *core.Ray) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return
	}

	d := -p.Normal.Dot(p.Point)
	t := -(p.Normal.Dot(ray.Origin) + d) / denominator

	ray.SetHit(t, ray.At(t), p.Normal, p.Material)
}
