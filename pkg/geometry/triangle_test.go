package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	// Triangle in the XY plane, front face towards +Z
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, testMaterial)

	tests := []struct {
		name        string
		origin      core.Vec3
		direction   core.Vec3
		shouldHit   bool
		expectedT   float64
		expectedPos core.Vec3
	}{
		{
			name:        "Ray hits inside triangle",
			origin:      core.NewVec3(0.25, 0.25, 1),
			direction:   core.NewVec3(0, 0, -1),
			shouldHit:   true,
			expectedT:   1.0,
			expectedPos: core.NewVec3(0.25, 0.25, 0),
		},
		{
			name:        "Ray hits triangle edge",
			origin:      core.NewVec3(0.5, 0, 1),
			direction:   core.NewVec3(0, 0, -1),
			shouldHit:   true,
			expectedT:   1.0,
			expectedPos: core.NewVec3(0.5, 0, 0),
		},
		{
			name:      "Ray misses triangle",
			origin:    core.NewVec3(2, 2, 1),
			direction: core.NewVec3(0, 0, -1),
			shouldHit: false,
		},
		{
			name:      "Ray outside hypotenuse",
			origin:    core.NewVec3(0.6, 0.6, 1),
			direction: core.NewVec3(0, 0, -1),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			origin:    core.NewVec3(0.25, 0.25, 0),
			direction: core.NewVec3(1, 0, 0),
			shouldHit: false,
		},
		{
			name:      "Back face is culled",
			origin:    core.NewVec3(0.25, 0.25, -1),
			direction: core.NewVec3(0, 0, 1),
			shouldHit: false,
		},
		{
			name:      "Triangle behind ray",
			origin:    core.NewVec3(0.25, 0.25, 1),
			direction: core.NewVec3(0, 0, 1),
			shouldHit: false,
		},
		{
			name:      "Origin on the triangle",
			origin:    core.NewVec3(0.25, 0.25, 0),
			direction: core.NewVec3(0, 0, -1),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRayDirection(tt.origin, tt.direction)
			triangle.Intersect(&ray)

			if ray.Hit.Hit() != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, ray.Hit.Hit())
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(ray.Hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, ray.Hit.T)
			}
			if !ray.Hit.Position.ApproxEqual(tt.expectedPos, 1e-9) {
				t.Errorf("Expected position %v, got %v", tt.expectedPos, ray.Hit.Position)
			}
			if !ray.Hit.Normal.ApproxEqual(core.NewVec3(0, 0, 1), 1e-9) {
				t.Errorf("Expected normal (0,0,1), got %v", ray.Hit.Normal)
			}
		})
	}
}

func TestTriangle_SurfaceNormal(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), testMaterial)

	// Not normalized: length is twice the area
	if n := triangle.SurfaceNormal(); n != core.NewVec3(0, 0, 4) {
		t.Errorf("Expected surface normal (0,0,4), got %v", n)
	}
}

func TestTriangle_InterpolatedNormal(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), testMaterial)
	triangle.Vertices[0].Normal = core.NewVec3(0, 0, 1)
	triangle.Vertices[1].Normal = core.NewVec3(1, 0, 0)
	triangle.Vertices[2].Normal = core.NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		x, y     float64
		expected core.Vec3
	}{
		{"At v0", 0, 0, core.NewVec3(0, 0, 1)},
		{"Quarter point", 0.25, 0.25, core.NewVec3(0.25, 0.25, 0.5).Normalize()},
		{"Edge midpoint v1-v2", 0.5, 0.5, core.NewVec3(1, 1, 0).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRayDirection(core.NewVec3(tt.x, tt.y, 2), core.NewVec3(0, 0, -1))
			triangle.Intersect(&ray)

			if !ray.Hit.Hit() {
				t.Fatal("Expected hit, but got miss")
			}
			if !ray.Hit.Normal.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expected, ray.Hit.Normal)
			}
		})
	}
}
