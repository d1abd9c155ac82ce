package loaders

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

const yamlSceneData = `camera:
  position: [0, 1, 0]
  fov: 45
  focal_length: 500
  aspect_ratio: 1.5
lights:
  - position: [5, 5, 0]
    diffuse: [1, 1, 1]
    specular: [1, 0.5, 0.25]
shapes:
  - type: plane
    point: [0, -1, 0]
    normal: [0, 1, 0]
    material:
      ambient: [0.1, 0.1, 0.1]
      diffuse: [0.6, 0.6, 0.6]
      specular: [0, 0, 0]
      shininess: 1
  - type: sphere
    center: [0, 0, -10]
    radius: 2
    material:
      ambient: [0.1, 0, 0]
      diffuse: [0.9, 0, 0]
      specular: [1, 1, 1]
      shininess: 64
  - type: triangle
    vertices: [[0, 0, -5], [1, 0, -5], [0, 1, -5]]
    material:
      ambient: [0, 0, 0]
      diffuse: [0, 1, 0]
      specular: [0, 0, 0]
      shininess: 1
`

func TestParseYAMLScene(t *testing.T) {
	s, err := ParseYAMLScene([]byte(yamlSceneData), ".")
	if err != nil {
		t.Fatalf("ParseYAMLScene failed: %v", err)
	}

	if s.Camera.Position != core.NewVec3(0, 1, 0) || s.Camera.FocalLength != 500 || s.Camera.AspectRatio != 1.5 {
		t.Errorf("Unexpected camera: %+v", s.Camera)
	}
	if len(s.Lights) != 1 || s.Lights[0].Specular != core.NewVec3(1, 0.5, 0.25) {
		t.Errorf("Unexpected lights: %+v", s.Lights)
	}
	if len(s.Shapes) != 3 {
		t.Fatalf("Expected 3 shapes, got %d", len(s.Shapes))
	}

	if _, ok := s.Shapes[0].(*geometry.Plane); !ok {
		t.Errorf("Expected a plane, got %T", s.Shapes[0])
	}
	sphere, ok := s.Shapes[1].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected a sphere, got %T", s.Shapes[1])
	}
	if sphere.Radius != 2 || sphere.Material.Shininess != 64 {
		t.Errorf("Unexpected sphere: %+v", sphere)
	}
	if _, ok := s.Shapes[2].(*geometry.Triangle); !ok {
		t.Errorf("Expected a triangle, got %T", s.Shapes[2])
	}
}

func TestParseYAMLScene_Errors(t *testing.T) {
	camera := "camera: {position: [0, 0, 0], fov: 60, focal_length: 10, aspect_ratio: 1}\n"
	material := "material: {ambient: [0, 0, 0], diffuse: [1, 1, 1], specular: [0, 0, 0], shininess: 1}"

	tests := []struct {
		name     string
		data     string
		wantErr  error
		contains string
	}{
		{
			name:    "missing camera",
			data:    "lights: []\n",
			wantErr: ErrMissingCamera,
		},
		{
			name:     "unknown key",
			data:     camera + "background: [0, 0, 0]\n",
			contains: "background",
		},
		{
			name:    "unknown shape",
			data:    camera + "shapes:\n  - {type: torus, " + material + "}\n",
			wantErr: ErrUnknownObject,
		},
		{
			name:     "short vector",
			data:     camera + "shapes:\n  - {type: sphere, center: [0, 0], radius: 1, " + material + "}\n",
			contains: "shapes[0].center",
		},
		{
			name:     "missing material",
			data:     camera + "shapes:\n  - {type: sphere, center: [0, 0, 0], radius: 1}\n",
			contains: "shapes[0].material.ambient",
		},
		{
			name:     "mesh without file",
			data:     camera + "shapes:\n  - {type: mesh, " + material + "}\n",
			contains: "shapes[0].file",
		},
		{
			name:     "invalid camera",
			data:     "camera: {position: [0, 0, 0], fov: 200, focal_length: 10, aspect_ratio: 1}\n",
			contains: "field of view",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAMLScene([]byte(tt.data), t.TempDir())
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error to mention %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestLoadScene_YAMLMesh(t *testing.T) {
	dir := t.TempDir()
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(filepath.Join(dir, "tri.obj"), []byte(obj), 0644); err != nil {
		t.Fatal(err)
	}

	data := `camera: {position: [0, 0, 0], fov: 60, focal_length: 10, aspect_ratio: 1}
shapes:
  - type: mesh
    file: tri.obj
    faceted: true
    rotation: [0, 0, 90]
    offset: [0, 0, -5]
    material: {ambient: [0, 0, 0], diffuse: [1, 1, 1], specular: [0, 0, 0], shininess: 1}
`
	scenePath := filepath.Join(dir, "scene.yml")
	if err := os.WriteFile(scenePath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScene(scenePath)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	mesh, ok := s.Shapes[0].(*geometry.TriangleMesh)
	if !ok {
		t.Fatalf("Expected a triangle mesh, got %T", s.Shapes[0])
	}

	// (1,0,0) rotated 90 degrees about Z lands on (0,1,0), then moves to z=-5
	corner := mesh.GetTriangles()[0].Vertices[1].Position
	if !corner.ApproxEqual(core.NewVec3(0, 1, -5), 1e-9) {
		t.Errorf("Expected transformed corner (0,1,-5), got %v", corner)
	}

	bbox := mesh.BoundingBox()
	if math.Abs(bbox.Min.Z+5) > 1e-9 || math.Abs(bbox.Max.Z+5) > 1e-9 {
		t.Errorf("Expected mesh bounds at z=-5, got %v", bbox)
	}
}
