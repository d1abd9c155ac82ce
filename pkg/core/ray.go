package core

import "math"

// HitRecord holds the closest intersection found so far along a ray.
// It is only ever written through Ray.SetHit.
type HitRecord struct {
	T        float64  // Parameter t along the ray, +Inf until something is hit
	Position Vec3     // Point of intersection in world space
	Normal   Vec3     // Unit surface normal at the intersection
	Material Material // Copy of the surface material

	hit bool
}

// Hit reports whether the record holds a valid intersection
func (h HitRecord) Hit() bool {
	return h.hit
}

// Ray has an origin, a unit direction and the closest hit recorded so far
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Hit       HitRecord
}

// NewRay creates a ray from origin towards target with no hit recorded
func NewRay(origin, target Vec3) Ray {
	return NewRayDirection(origin, target.Subtract(origin))
}

// NewRayDirection creates a ray from origin along direction (normalized here)
func NewRayDirection(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		Hit:       HitRecord{T: math.Inf(1)},
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// SetHit records an intersection if it is in front of the origin and strictly
// closer than the current one. Anything else (including NaN) is ignored, so the
// result never depends on the order in which shapes are tested.
func (r *Ray) SetHit(t float64, position, normal Vec3, material Material) {
	if !(t > 0 && t < r.Hit.T) {
		return
	}

	r.Hit = HitRecord{
		T:        t,
		Position: position,
		Normal:   normal.Normalize(),
		Material: material,
		hit:      true,
	}
}
