package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/udhos/gwob"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// LoadOBJ loads vertex positions and faces from a Wavefront OBJ file
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	mesh, err := ReadOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load OBJ file %s: %w", filename, err)
	}
	return mesh, nil
}

// ReadOBJ parses OBJ data. Only positions and faces are kept; normals,
// texture coordinates and material libraries are ignored. Polygons come back
// triangulated from the parser.
func ReadOBJ(r io.Reader) (*MeshData, error) {
	var warnings []string
	options := gwob.ObjParserOptions{
		IgnoreNormals: true,
		Logger:        func(msg string) { warnings = append(warnings, strings.TrimSpace(msg)) },
	}

	obj, err := gwob.NewObjFromReader("obj", bufio.NewReader(r), &options)
	if err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}

	mesh := objToMesh(obj)
	if err := mesh.validate(); err != nil {
		if len(warnings) > 0 {
			return nil, fmt.Errorf("%w (first parser warning: %s)", err, warnings[0])
		}
		return nil, err
	}
	return mesh, nil
}

// objToMesh unpacks the parser's interleaved vertex buffer into positions and
// collects the triangle indices of every group
func objToMesh(obj *gwob.Obj) *MeshData {
	stride := obj.StrideSize / 4
	offset := obj.StrideOffsetPosition / 4

	mesh := &MeshData{}
	if stride > 0 {
		count := len(obj.Coord) / stride
		mesh.Vertices = make([]core.Vec3, 0, count)
		for i := 0; i < count; i++ {
			base := i*stride + offset
			mesh.Vertices = append(mesh.Vertices, core.NewVec3(
				obj.Coord64(base),
				obj.Coord64(base+1),
				obj.Coord64(base+2),
			))
		}
	}

	for _, g := range obj.Groups {
		mesh.Faces = append(mesh.Faces, obj.Indices[g.IndexBegin:g.IndexBegin+g.IndexCount]...)
	}
	return mesh
}
