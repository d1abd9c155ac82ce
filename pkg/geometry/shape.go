package geometry

import "github.com/df07/go-phong-raytracer/pkg/core"

// Shape is implemented by the closed set of intersectable surfaces:
// *Plane, *Sphere, *Triangle and *TriangleMesh.
//
// Intersect proposes at most one candidate hit to the ray through
// core.Ray.SetHit; the ray itself keeps whichever candidate is closest.
type Shape interface {
	Intersect(ray *core.Ray)

	// sealed restricts implementations to this package
	sealed()
}

func (*Plane) sealed()        {}
func (*Sphere) sealed()       {}
func (*Triangle) sealed()     {}
func (*TriangleMesh) sealed() {}
