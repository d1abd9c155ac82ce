package loaders

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// yamlScene is the document layout of a YAML scene file
type yamlScene struct {
	Camera *yamlCamera `yaml:"camera"`
	Lights []yamlLight `yaml:"lights"`
	Shapes []yamlShape `yaml:"shapes"`
}

type yamlCamera struct {
	Position    []float64 `yaml:"position"`
	FieldOfView float64   `yaml:"fov"`
	FocalLength float64   `yaml:"focal_length"`
	AspectRatio float64   `yaml:"aspect_ratio"`
}

type yamlLight struct {
	Position []float64 `yaml:"position"`
	Diffuse  []float64 `yaml:"diffuse"`
	Specular []float64 `yaml:"specular"`
}

type yamlMaterial struct {
	Ambient   []float64 `yaml:"ambient"`
	Diffuse   []float64 `yaml:"diffuse"`
	Specular  []float64 `yaml:"specular"`
	Shininess float64   `yaml:"shininess"`
}

// yamlShape holds the union of every shape's fields, selected by Type
type yamlShape struct {
	Type     string       `yaml:"type"`
	Material yamlMaterial `yaml:"material"`

	// plane
	Point  []float64 `yaml:"point"`
	Normal []float64 `yaml:"normal"`

	// sphere
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`

	// triangle
	Vertices [][]float64 `yaml:"vertices"`

	// mesh
	File     string    `yaml:"file"`
	Faceted  bool      `yaml:"faceted"`
	Offset   []float64 `yaml:"offset"`
	Rotation []float64 `yaml:"rotation"` // Degrees about X, Y, Z
}

// LoadYAMLScene loads a YAML scene file. Mesh files are resolved relative to
// the scene file.
func LoadYAMLScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := ParseYAMLScene(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	return s, nil
}

// ParseYAMLScene builds a scene from YAML data. Unknown keys are rejected.
func ParseYAMLScene(data []byte, dir string) (*scene.Scene, error) {
	var doc yamlScene
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML scene: %w", err)
	}

	if doc.Camera == nil {
		return nil, ErrMissingCamera
	}
	cameraPosition, err := toVec3(doc.Camera.Position, "camera.position")
	if err != nil {
		return nil, err
	}

	s := scene.NewScene(geometry.NewCamera(
		cameraPosition,
		doc.Camera.FieldOfView,
		doc.Camera.FocalLength,
		doc.Camera.AspectRatio,
	))

	for i, l := range doc.Lights {
		position, err := toVec3(l.Position, fmt.Sprintf("lights[%d].position", i))
		if err != nil {
			return nil, err
		}
		diffuse, err := toVec3(l.Diffuse, fmt.Sprintf("lights[%d].diffuse", i))
		if err != nil {
			return nil, err
		}
		specular, err := toVec3(l.Specular, fmt.Sprintf("lights[%d].specular", i))
		if err != nil {
			return nil, err
		}
		s.AddPointLight(position, diffuse, specular)
	}

	for i, shapeDoc := range doc.Shapes {
		shape, err := buildYAMLShape(shapeDoc, fmt.Sprintf("shapes[%d]", i), dir)
		if err != nil {
			return nil, err
		}
		s.AddShape(shape)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func buildYAMLShape(doc yamlShape, path, dir string) (geometry.Shape, error) {
	material, err := doc.Material.toMaterial(path + ".material")
	if err != nil {
		return nil, err
	}

	switch doc.Type {
	case "plane":
		point, err := toVec3(doc.Point, path+".point")
		if err != nil {
			return nil, err
		}
		normal, err := toVec3(doc.Normal, path+".normal")
		if err != nil {
			return nil, err
		}
		return geometry.NewPlane(point, normal, material), nil

	case "sphere":
		center, err := toVec3(doc.Center, path+".center")
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(center, doc.Radius, material), nil

	case "triangle":
		if len(doc.Vertices) != 3 {
			return nil, fmt.Errorf("%s.vertices: expected 3 vertices, got %d", path, len(doc.Vertices))
		}
		var corners [3]core.Vec3
		for j := range corners {
			corners[j], err = toVec3(doc.Vertices[j], fmt.Sprintf("%s.vertices[%d]", path, j))
			if err != nil {
				return nil, err
			}
		}
		return geometry.NewTriangle(corners[0], corners[1], corners[2], material), nil

	case "mesh":
		if doc.File == "" {
			return nil, fmt.Errorf("%s.file: mesh needs a file", path)
		}
		options := &geometry.TriangleMeshOptions{Faceted: doc.Faceted}
		if doc.Offset != nil {
			offset, err := toVec3(doc.Offset, path+".offset")
			if err != nil {
				return nil, err
			}
			options.Offset = &offset
		}
		if doc.Rotation != nil {
			degrees, err := toVec3(doc.Rotation, path+".rotation")
			if err != nil {
				return nil, err
			}
			rotation := degrees.Multiply(math.Pi / 180)
			options.Rotation = &rotation
		}

		meshPath := doc.File
		if !filepath.IsAbs(meshPath) {
			meshPath = filepath.Join(dir, meshPath)
		}
		data, err := LoadMesh(meshPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return geometry.NewTriangleMeshFromPositions(data.Positions(), material, options), nil

	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownObject, doc.Type)
	}
}

func (m yamlMaterial) toMaterial(path string) (core.Material, error) {
	ambient, err := toVec3(m.Ambient, path+".ambient")
	if err != nil {
		return core.Material{}, err
	}
	diffuse, err := toVec3(m.Diffuse, path+".diffuse")
	if err != nil {
		return core.Material{}, err
	}
	specular, err := toVec3(m.Specular, path+".specular")
	if err != nil {
		return core.Material{}, err
	}
	return core.NewMaterial(ambient, diffuse, specular, m.Shininess), nil
}

func toVec3(values []float64, path string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", path, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
