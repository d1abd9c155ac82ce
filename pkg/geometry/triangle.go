package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

const (
	// parallelEpsilon rejects rays (nearly) in the triangle's plane
	parallelEpsilon = 1e-7
	// minHitDistance rejects grazing and self intersections
	minHitDistance = 1e-6
)

// Vertex is a triangle corner with its shading normal
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3
}

// Triangle is a single front-facing triangle. Winding (V0, V1, V2) decides
// which side is the front.
type Triangle struct {
	Vertices      [3]Vertex
	Material      core.Material
	surfaceNormal core.Vec3 // cross(e1, e2), not normalized
}

// NewTriangle creates a triangle whose vertex normals all equal its face normal
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{Material: material}
	t.Vertices[0].Position = v0
	t.Vertices[1].Position = v1
	t.Vertices[2].Position = v2

	t.surfaceNormal = v1.Subtract(v0).Cross(v2.Subtract(v0))
	for i := range t.Vertices {
		t.Vertices[i].Normal = t.surfaceNormal
	}

	return t
}

// SurfaceNormal returns the non-normalized face normal cross(V1-V0, V2-V0).
// Its length is twice the triangle's area.
func (t *Triangle) SurfaceNormal() core.Vec3 {
	return t.surfaceNormal
}

// Intersect uses the Moller-Trumbore algorithm. Back faces are culled.
func (t *Triangle) Intersect(ray *core.Ray) {
	if ray.Direction.Dot(t.surfaceNormal) > 0 {
		return
	}

	v0 := t.Vertices[0].Position
	e1 := t.Vertices[1].Position.Subtract(v0)
	e2 := t.Vertices[2].Position.Subtract(v0)

	p := ray.Direction.Cross(e2)
	det := p.Dot(e1)
	if math.Abs(det) < parallelEpsilon {
		return
	}

	s := ray.Origin.Subtract(v0)
	alpha := p.Dot(s) / det
	if alpha < 0 || alpha > 1 {
		return
	}

	q := s.Cross(e1)
	beta := ray.Direction.Dot(q) / det
	if beta < 0 || alpha+beta > 1 {
		return
	}

	tHit := e2.Dot(q) / det
	if tHit <= minHitDistance {
		return
	}

	normal := t.Vertices[0].Normal.Multiply(1 - alpha - beta).
		Add(t.Vertices[1].Normal.Multiply(alpha)).
		Add(t.Vertices[2].Normal.Multiply(beta)).
		Normalize()

	ray.SetHit(tHit, ray.At(tHit), normal, t.Material)
}
