package lights

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestPointLight_NewPointLight(t *testing.T) {
	position := core.NewVec3(1, 5, -2)
	diffuse := core.NewVec3(0.8, 0.7, 0.6)
	specular := core.NewVec3(1, 1, 1)

	light := NewPointLight(position, diffuse, specular)

	if light.Position != position {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if light.Diffuse != diffuse {
		t.Errorf("Expected diffuse %v, got %v", diffuse, light.Diffuse)
	}
	if light.Specular != specular {
		t.Errorf("Expected specular %v, got %v", specular, light.Specular)
	}
}

func TestPointLight_DirectionFrom(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"Directly below", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)},
		{"Diagonal", core.NewVec3(5, 0, 0), core.NewVec3(-1, 1, 0).Normalize()},
		{"Above", core.NewVec3(0, 8, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := light.DirectionFrom(tt.point)
			if !dir.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.expected, dir)
			}
			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Errorf("Expected unit direction, got length %f", dir.Length())
			}
		})
	}
}
