package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// smoothingEpsilon is the per-component tolerance used both to match shared
// vertex positions and to detect an already summed face normal.
const smoothingEpsilon = 1e-6

// TriangleMesh owns a collection of triangles sharing one material.
// Intersection is a linear scan over every triangle.
type TriangleMesh struct {
	triangles []Triangle
	material  core.Material
	bbox      core.AABB
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Rotation *core.Vec3 // Optional rotation (radians, applied X then Y then Z)
	Center   *core.Vec3 // Optional center point for rotation
	Offset   *core.Vec3 // Optional translation applied after rotation
	Faceted  bool       // Keep flat face normals instead of smoothing
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// material: material for all triangles
// options: optional parameters (can be nil for a smoothed, untransformed mesh)
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material, options *TriangleMeshOptions) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}

	positions := make([]core.Vec3, len(faces))
	for i, index := range faces {
		if index < 0 || index >= len(vertices) {
			panic("Face index out of bounds")
		}
		positions[i] = vertices[index]
	}

	return NewTriangleMeshFromPositions(positions, material, options)
}

// NewTriangleMeshFromPositions creates a mesh from a flat list of triangle
// corners, three per face, as produced by the mesh loaders.
func NewTriangleMeshFromPositions(positions []core.Vec3, material core.Material, options *TriangleMeshOptions) *TriangleMesh {
	if len(positions)%3 != 0 {
		panic("Triangle positions must be a multiple of 3")
	}

	workingPositions := positions
	if options != nil && (options.Rotation != nil || options.Offset != nil) {
		workingPositions = make([]core.Vec3, len(positions))
		for i, vertex := range positions {
			workingPositions[i] = transformVertex(vertex, options)
		}
	}

	numTriangles := len(workingPositions) / 3
	triangles := make([]Triangle, numTriangles)
	for i := 0; i < numTriangles; i++ {
		triangles[i] = *NewTriangle(workingPositions[i*3], workingPositions[i*3+1], workingPositions[i*3+2], material)
	}

	mesh := &TriangleMesh{
		triangles: triangles,
		material:  material,
		bbox:      core.NewAABBFromPoints(workingPositions...),
	}

	if options == nil || !options.Faceted {
		mesh.smoothNormals()
	}

	return mesh
}

// Intersect tests the ray against every triangle in the mesh
func (tm *TriangleMesh) Intersect(ray *core.Ray) {
	for i := range tm.triangles {
		tm.triangles[i].Intersect(ray)
	}
}

// smoothNormals replaces each vertex normal with the normalized sum of the
// face normals of every triangle touching that position. Face normals are
// area weighted since they are not normalized. A face normal equal to one
// already summed for the vertex (coplanar neighbours) is counted once.
//
// This is quadratic in the triangle count; it runs once per mesh.
func (tm *TriangleMesh) smoothNormals() {
	smoothed := make([][3]core.Vec3, len(tm.triangles))

	for i := range tm.triangles {
		own := tm.triangles[i].surfaceNormal
		for j := 0; j < 3; j++ {
			position := tm.triangles[i].Vertices[j].Position
			sum := own
			summed := []core.Vec3{own}

			for k := range tm.triangles {
				if k == i {
					continue
				}
				other := &tm.triangles[k]
				for l := 0; l < 3; l++ {
					if !other.Vertices[l].Position.ApproxEqual(position, smoothingEpsilon) {
						continue
					}
					if !containsNormal(summed, other.surfaceNormal) {
						sum = sum.Add(other.surfaceNormal)
						summed = append(summed, other.surfaceNormal)
					}
					break
				}
			}

			// Opposing faces can cancel out completely
			if sum.IsZero() {
				sum = own
			}
			smoothed[i][j] = sum.Normalize()
		}
	}

	for i := range tm.triangles {
		for j := 0; j < 3; j++ {
			tm.triangles[i].Vertices[j].Normal = smoothed[i][j]
		}
	}
}

func containsNormal(normals []core.Vec3, normal core.Vec3) bool {
	for _, n := range normals {
		if n.ApproxEqual(normal, smoothingEpsilon) {
			return true
		}
	}
	return false
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}

// Material returns the material shared by every triangle
func (tm *TriangleMesh) Material() core.Material {
	return tm.material
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// GetTriangles returns the individual triangles (for debugging or special operations)
func (tm *TriangleMesh) GetTriangles() []Triangle {
	return tm.triangles
}

// transformVertex rotates about the optional center, then applies the offset
func transformVertex(vertex core.Vec3, options *TriangleMeshOptions) core.Vec3 {
	if options.Rotation != nil {
		if options.Center != nil {
			vertex = vertex.Subtract(*options.Center)
		}
		vertex = rotateVertex(vertex, *options.Rotation)
		if options.Center != nil {
			vertex = vertex.Add(*options.Center)
		}
	}
	if options.Offset != nil {
		vertex = vertex.Add(*options.Offset)
	}
	return vertex
}

// rotateVertex applies rotation around X, Y, Z axes (in that order)
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	if rotation.X != 0 {
		cos := math.Cos(rotation.X)
		sin := math.Sin(rotation.X)
		y := vertex.Y*cos - vertex.Z*sin
		z := vertex.Y*sin + vertex.Z*cos
		vertex = core.NewVec3(vertex.X, y, z)
	}

	if rotation.Y != 0 {
		cos := math.Cos(rotation.Y)
		sin := math.Sin(rotation.Y)
		x := vertex.X*cos + vertex.Z*sin
		z := -vertex.X*sin + vertex.Z*cos
		vertex = core.NewVec3(x, vertex.Y, z)
	}

	if rotation.Z != 0 {
		cos := math.Cos(rotation.Z)
		sin := math.Sin(rotation.Z)
		x := vertex.X*cos - vertex.Y*sin
		y := vertex.X*sin + vertex.Y*cos
		vertex = core.NewVec3(x, y, vertex.Z)
	}

	return vertex
}
