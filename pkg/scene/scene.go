package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. Shapes and lights
// are evaluated in slice order; the scene is read-only while rendering.
type Scene struct {
	Camera geometry.Camera
	Lights []lights.PointLight // Lights in the scene
	Shapes []geometry.Shape    // Objects in the scene
}

// NewScene creates an empty scene viewed through camera
func NewScene(camera geometry.Camera) *Scene {
	return &Scene{
		Camera: camera,
		Lights: make([]lights.PointLight, 0),
		Shapes: make([]geometry.Shape, 0),
	}
}

// AddShape appends shapes to the scene
func (s *Scene) AddShape(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, diffuse, specular core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, diffuse, specular))
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if err := s.Camera.Validate(); err != nil {
		return fmt.Errorf("invalid scene camera: %w", err)
	}
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += s.countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, handling complex objects
func (s *Scene) countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.TriangleMesh:
		// Triangle meshes contain multiple triangles
		return obj.GetTriangleCount()
	default:
		// Regular shapes count as 1 primitive each
		return 1
	}
}
