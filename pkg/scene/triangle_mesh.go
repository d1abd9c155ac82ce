package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// NewTriangleMeshScene creates a scene showcasing triangle mesh geometry:
// a faceted box, a faceted pyramid and a smoothed icosahedron.
func NewTriangleMeshScene() *Scene {
	s := NewScene(defaultCamera())

	floor := phongMaterial(core.NewVec3(0.6, 0.6, 0.6), 0.15, core.NewVec3(0, 0, 0), 1)
	s.AddShape(geometry.NewPlane(core.NewVec3(0, -100, 0), core.NewVec3(0, 1, 0), floor))

	red := phongMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.1, core.NewVec3(0.8, 0.8, 0.8), 32)
	blue := phongMaterial(core.NewVec3(0.2, 0.3, 0.8), 0.1, core.NewVec3(0.5, 0.5, 0.5), 16)
	gold := phongMaterial(core.NewVec3(0.8, 0.6, 0.2), 0.1, core.NewVec3(1, 0.9, 0.6), 96)

	s.AddShape(
		createBoxMesh(core.NewVec3(-230, -40, -700), core.NewVec3(120, 120, 120), core.NewVec3(0, math.Pi/6, 0), red),
		createPyramidMesh(core.NewVec3(0, -25, -650), 150, 150, core.NewVec3(0, math.Pi/4, 0), blue),
		createIcosahedronMesh(core.NewVec3(230, -20, -700), 80, core.NewVec3(0, math.Pi/3, 0), gold),
	)

	s.AddPointLight(core.NewVec3(100, 400, -200), core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(1, 1, 1))
	s.AddPointLight(core.NewVec3(-400, 150, -100), core.NewVec3(0.25, 0.25, 0.3), core.NewVec3(0.1, 0.1, 0.1))

	return s
}

// Mesh generators wind every face counter-clockwise seen from outside, so
// the back-face culling in Triangle.Intersect hides the inner sides.

// createBoxMesh creates a faceted triangle mesh representing a box
func createBoxMesh(center, size, rotation core.Vec3, material core.Material) *geometry.TriangleMesh {
	// Calculate the 8 corners of the box
	halfSize := size.Multiply(0.5)
	vertices := []core.Vec3{
		center.Add(core.NewVec3(-halfSize.X, -halfSize.Y, -halfSize.Z)), // 0: left-bottom-back
		center.Add(core.NewVec3(+halfSize.X, -halfSize.Y, -halfSize.Z)), // 1: right-bottom-back
		center.Add(core.NewVec3(+halfSize.X, +halfSize.Y, -halfSize.Z)), // 2: right-top-back
		center.Add(core.NewVec3(-halfSize.X, +halfSize.Y, -halfSize.Z)), // 3: left-top-back
		center.Add(core.NewVec3(-halfSize.X, -halfSize.Y, +halfSize.Z)), // 4: left-bottom-front
		center.Add(core.NewVec3(+halfSize.X, -halfSize.Y, +halfSize.Z)), // 5: right-bottom-front
		center.Add(core.NewVec3(+halfSize.X, +halfSize.Y, +halfSize.Z)), // 6: right-top-front
		center.Add(core.NewVec3(-halfSize.X, +halfSize.Y, +halfSize.Z)), // 7: left-top-front
	}

	// 2 triangles per face
	faces := []int{
		0, 2, 1, 0, 3, 2, // back (Z-)
		4, 5, 6, 4, 6, 7, // front (Z+)
		0, 7, 3, 0, 4, 7, // left (X-)
		1, 6, 5, 1, 2, 6, // right (X+)
		0, 5, 4, 0, 1, 5, // bottom (Y-)
		3, 6, 2, 3, 7, 6, // top (Y+)
	}

	return geometry.NewTriangleMesh(vertices, faces, material, &geometry.TriangleMeshOptions{
		Rotation: &rotation,
		Center:   &center,
		Faceted:  true,
	})
}

// createPyramidMesh creates a faceted square pyramid
func createPyramidMesh(center core.Vec3, baseSize, height float64, rotation core.Vec3, material core.Material) *geometry.TriangleMesh {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		center.Add(core.NewVec3(-halfBase, -halfHeight, -halfBase)), // 0: left-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, -halfBase)), // 1: right-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, +halfBase)), // 2: right-front
		center.Add(core.NewVec3(-halfBase, -halfHeight, +halfBase)), // 3: left-front
		center.Add(core.NewVec3(0, +halfHeight, 0)),                 // 4: apex
	}

	faces := []int{
		0, 1, 2, 0, 2, 3, // base
		0, 4, 1, // back
		1, 4, 2, // right
		2, 4, 3, // front
		3, 4, 0, // left
	}

	return geometry.NewTriangleMesh(vertices, faces, material, &geometry.TriangleMeshOptions{
		Rotation: &rotation,
		Center:   &center,
		Faceted:  true,
	})
}

// createIcosahedronMesh creates a smoothed icosahedron inscribed in a sphere of radius
func createIcosahedronMesh(center core.Vec3, radius float64, rotation core.Vec3, material core.Material) *geometry.TriangleMesh {
	phi := (1.0 + math.Sqrt(5)) / 2.0

	corners := []core.Vec3{
		{X: -1, Y: phi, Z: 0}, {X: 1, Y: phi, Z: 0}, {X: -1, Y: -phi, Z: 0}, {X: 1, Y: -phi, Z: 0},
		{X: 0, Y: -1, Z: phi}, {X: 0, Y: 1, Z: phi}, {X: 0, Y: -1, Z: -phi}, {X: 0, Y: 1, Z: -phi},
		{X: phi, Y: 0, Z: -1}, {X: phi, Y: 0, Z: 1}, {X: -phi, Y: 0, Z: -1}, {X: -phi, Y: 0, Z: 1},
	}
	vertices := make([]core.Vec3, len(corners))
	for i, c := range corners {
		vertices[i] = center.Add(c.Normalize().Multiply(radius))
	}

	// 20 triangular faces
	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return geometry.NewTriangleMesh(vertices, faces, material, &geometry.TriangleMeshOptions{
		Rotation: &rotation,
		Center:   &center,
	})
}
