package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an infinitesimal light with separate diffuse and specular
// colors. It has no falloff with distance.
type PointLight struct {
	Position core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, diffuse, specular core.Vec3) PointLight {
	return PointLight{
		Position: position,
		Diffuse:  diffuse,
		Specular: specular,
	}
}

// DirectionFrom returns the unit direction from point towards the light
func (l PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}
