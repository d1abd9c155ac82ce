package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// defaultCamera sits at the origin looking down -Z. With a focal length of
// 400 the view plane is about 460 pixels tall at the default screen height.
func defaultCamera() geometry.Camera {
	return geometry.NewCamera(core.NewVec3(0, 0, 0), 60, 400, 4.0/3.0)
}

// phongMaterial builds a material whose ambient term is a fraction of the diffuse color
func phongMaterial(diffuse core.Vec3, ambient float64, specular core.Vec3, shininess float64) core.Material {
	return core.NewMaterial(diffuse.Multiply(ambient), diffuse, specular, shininess)
}

// NewDefaultScene creates a default scene with spheres on a floor in front of a back wall
func NewDefaultScene() *Scene {
	s := NewScene(defaultCamera())

	floor := phongMaterial(core.NewVec3(0.6, 0.6, 0.6), 0.15, core.NewVec3(0.1, 0.1, 0.1), 4)
	wall := phongMaterial(core.NewVec3(0.4, 0.45, 0.6), 0.2, core.NewVec3(0, 0, 0), 1)
	red := phongMaterial(core.NewVec3(0.8, 0.2, 0.15), 0.1, core.NewVec3(0.9, 0.9, 0.9), 64)
	blue := phongMaterial(core.NewVec3(0.15, 0.3, 0.8), 0.1, core.NewVec3(0.6, 0.6, 0.6), 16)
	gold := phongMaterial(core.NewVec3(0.8, 0.6, 0.2), 0.1, core.NewVec3(1, 0.9, 0.6), 128)

	s.AddShape(
		geometry.NewPlane(core.NewVec3(0, -100, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewPlane(core.NewVec3(0, 0, -1200), core.NewVec3(0, 0, 1), wall),
		geometry.NewSphere(core.NewVec3(0, 0, -700), 100, red),
		geometry.NewSphere(core.NewVec3(-230, -40, -650), 60, blue),
		geometry.NewSphere(core.NewVec3(210, -50, -600), 50, gold),
	)

	s.AddPointLight(core.NewVec3(150, 400, -300), core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(1, 1, 1))
	s.AddPointLight(core.NewVec3(-400, 200, 0), core.NewVec3(0.3, 0.3, 0.35), core.NewVec3(0.2, 0.2, 0.2))

	return s
}
