package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// NewShadowsScene creates a row of spheres lit by red, green and blue lights
// so each sphere casts three colored, overlapping shadows onto the floor.
func NewShadowsScene() *Scene {
	s := NewScene(defaultCamera())

	floor := phongMaterial(core.NewVec3(0.9, 0.9, 0.9), 0.1, core.NewVec3(0, 0, 0), 1)
	white := phongMaterial(core.NewVec3(0.85, 0.85, 0.85), 0.1, core.NewVec3(0.5, 0.5, 0.5), 32)

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -100, 0), core.NewVec3(0, 1, 0), floor))
	for i := -2; i <= 2; i++ {
		center := core.NewVec3(float64(i)*140, -55, -750-float64(i*i)*40)
		s.AddShape(geometry.NewSphere(center, 45, white))
	}

	specular := core.NewVec3(0.3, 0.3, 0.3)
	s.AddPointLight(core.NewVec3(-300, 300, -500), core.NewVec3(0.7, 0, 0), specular)
	s.AddPointLight(core.NewVec3(0, 350, -450), core.NewVec3(0, 0.7, 0), specular)
	s.AddPointLight(core.NewVec3(300, 300, -500), core.NewVec3(0, 0, 0.7), specular)

	return s
}
