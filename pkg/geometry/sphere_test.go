package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRayDirection(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	sphere.Intersect(&ray)
	if ray.Hit.Hit() {
		t.Errorf("Expected miss, but got hit at t=%f", ray.Hit.T)
	}
}

func TestSphere_Intersect_ThroughCenter(t *testing.T) {
	center := core.NewVec3(1, 2, -3)

	tests := []struct {
		name   string
		origin core.Vec3
		radius float64
	}{
		{"Unit sphere from +Z", core.NewVec3(1, 2, 7), 1.0},
		{"Large sphere from diagonal", core.NewVec3(11, 12, 7), 4.0},
		{"Small sphere from below", core.NewVec3(1, -20, -3), 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(center, tt.radius, testMaterial)
			ray := core.NewRay(tt.origin, center)
			sphere.Intersect(&ray)

			if !ray.Hit.Hit() {
				t.Fatal("Expected hit, but got miss")
			}

			expectedT := tt.origin.Distance(center) - tt.radius
			if math.Abs(ray.Hit.T-expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", expectedT, ray.Hit.T)
			}

			// Normal must be parallel to (hit - center)
			outward := ray.Hit.Position.Subtract(center).Normalize()
			if !ray.Hit.Normal.ApproxEqual(outward, 1e-9) {
				t.Errorf("Expected normal %v, got %v", outward, ray.Hit.Normal)
			}
			if math.Abs(ray.Hit.Position.Distance(center)-tt.radius) > 1e-9 {
				t.Errorf("Hit point %v not on sphere surface", ray.Hit.Position)
			}
		})
	}
}

func TestSphere_Intersect_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRayDirection(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	sphere.Intersect(&ray)
	if !ray.Hit.Hit() {
		t.Fatal("Expected glancing hit, but got miss")
	}

	if !ray.Hit.Position.ApproxEqual(core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected hit point (1,0,0), got %v", ray.Hit.Position)
	}
}

func TestSphere_Intersect_Behind(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, testMaterial)
	ray := core.NewRayDirection(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	sphere.Intersect(&ray)
	if ray.Hit.Hit() {
		t.Errorf("Expected miss for sphere behind the ray, got hit at t=%f", ray.Hit.T)
	}
}

// A ray starting inside a sphere only proposes the near (negative) root,
// which the ray rejects, so the far wall is never reported.
func TestSphere_Intersect_OriginInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, testMaterial)
	ray := core.NewRayDirection(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	sphere.Intersect(&ray)
	if ray.Hit.Hit() {
		t.Errorf("Expected no hit from inside the sphere, got t=%f", ray.Hit.T)
	}
}
