package integrator

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultShadowBias offsets shadow ray origins along the surface normal
const DefaultShadowBias = 0.01

// Phong shades the first hit with direct Phong illumination from every
// unoccluded point light. There is no recursion: reflections, refraction and
// indirect light are not traced.
type Phong struct {
	ShadowBias float64
}

// NewPhong creates a Phong integrator with the default shadow bias
func NewPhong() *Phong {
	return &Phong{ShadowBias: DefaultShadowBias}
}

// ClosestHit tests ray against every shape in order. The ray keeps the
// closest hit, so the result does not depend on shape order.
func ClosestHit(ray *core.Ray, shapes []geometry.Shape) {
	for _, shape := range shapes {
		shape.Intersect(ray)
	}
}

// Trace returns the closest hit of ray against the scene's shapes
func (p *Phong) Trace(ray core.Ray, s *scene.Scene) core.HitRecord {
	ClosestHit(&ray, s.Shapes)
	return ray.Hit
}

// RayColor traces ray and shades the hit. Misses are black.
func (p *Phong) RayColor(ray core.Ray, s *scene.Scene) (core.Vec3, RayStats) {
	var stats RayStats

	hit := p.Trace(ray, s)
	if !hit.Hit() {
		return core.Vec3{}, stats
	}
	stats.Hit = true

	color := core.Vec3{}
	for _, light := range s.Lights {
		stats.ShadowRays++
		if p.occluded(hit, light, s.Shapes) {
			stats.Occluded++
			continue
		}
		color = color.Add(Shade(hit, light, s.Camera.Position))
	}

	// Ambient is added once, whatever the number of lights
	return color.Add(hit.Material.Ambient), stats
}

// occluded casts a shadow ray from just above the hit towards light and
// stops at the first shape that records a hit. Hits beyond the light also
// count as occluders.
func (p *Phong) occluded(hit core.HitRecord, light lights.PointLight, shapes []geometry.Shape) bool {
	origin := hit.Position.Add(hit.Normal.Multiply(p.ShadowBias))
	shadowRay := core.NewRay(origin, light.Position)

	for _, shape := range shapes {
		shape.Intersect(&shadowRay)
		if shadowRay.Hit.Hit() {
			return true
		}
	}
	return false
}

// Shade returns the diffuse and specular contribution of light at hit as
// seen from eye. The ambient term is not included.
func Shade(hit core.HitRecord, light lights.PointLight, eye core.Vec3) core.Vec3 {
	m := hit.Material
	n := hit.Normal

	l := light.DirectionFrom(hit.Position)
	diffuse := m.Diffuse.MultiplyVec(light.Diffuse).Multiply(math.Max(l.Dot(n), 0))

	v := eye.Subtract(hit.Position).Normalize()
	r := l.Negate().Reflect(n)
	specular := m.Specular.MultiplyVec(light.Specular).Multiply(math.Pow(math.Max(v.Dot(r), 0), m.Shininess))

	return diffuse.Add(specular)
}
