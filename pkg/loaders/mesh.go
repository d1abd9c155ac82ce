package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// MeshData contains the raw vertex and face data loaded from a mesh file
type MeshData struct {
	Vertices []core.Vec3 // Vertex positions
	Faces    []int       // Triangle indices (3 per triangle)
}

// TriangleCount returns the number of triangles in the mesh
func (m *MeshData) TriangleCount() int {
	return len(m.Faces) / 3
}

// Positions expands the indexed faces into a flat list of triangle corners,
// three per face
func (m *MeshData) Positions() []core.Vec3 {
	positions := make([]core.Vec3, len(m.Faces))
	for i, index := range m.Faces {
		positions[i] = m.Vertices[index]
	}
	return positions
}

// appendPolygon fan-triangulates a polygon around its first corner
func (m *MeshData) appendPolygon(indices []int) {
	for i := 1; i+1 < len(indices); i++ {
		m.Faces = append(m.Faces, indices[0], indices[i], indices[i+1])
	}
}

// validate checks every face index against the vertex list
func (m *MeshData) validate() error {
	if len(m.Faces) == 0 {
		return fmt.Errorf("mesh has no faces")
	}
	for i, index := range m.Faces {
		if index < 0 || index >= len(m.Vertices) {
			return fmt.Errorf("face %d references vertex %d, mesh has %d vertices", i/3, index, len(m.Vertices))
		}
	}
	return nil
}

// LoadMesh loads a triangle mesh, choosing the parser from the file extension
func LoadMesh(filename string) (*MeshData, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".obj":
		return LoadOBJ(filename)
	case ".ply":
		return LoadPLY(filename)
	default:
		return nil, fmt.Errorf("cannot load mesh %s: %w: mesh extension %q", filename, ErrUnsupportedFormat, ext)
	}
}
