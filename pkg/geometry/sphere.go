package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect solves |o + t*d - c|^2 = r^2 for a unit direction (a = 1).
//
// Only the nearer root is proposed, even when it lies behind the origin; the
// ray then rejects it. A ray starting inside the sphere therefore never sees
// the far wall.
func (s *Sphere) Intersect(ray *core.Ray) {
	oc := ray.Origin.Subtract(s.Center)

	const a = 1.0
	b := 2 * oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	t := math.Min(t0, t1)

	hitPoint := ray.At(t)
	ray.SetHit(t, hitPoint, hitPoint.Subtract(s.Center), s.Material)
}
