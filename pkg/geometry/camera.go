package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Camera is a pinhole camera looking down -Z from Position
type Camera struct {
	Position    core.Vec3
	FieldOfView float64 // Vertical field of view in degrees
	FocalLength float64 // Distance from the camera to the view plane
	AspectRatio float64 // Width / height
}

// NewCamera creates a camera
func NewCamera(position core.Vec3, fov, focalLength, aspectRatio float64) Camera {
	return Camera{
		Position:    position,
		FieldOfView: fov,
		FocalLength: focalLength,
		AspectRatio: aspectRatio,
	}
}

// Validate rejects cameras that cannot produce a finite view plane
func (c Camera) Validate() error {
	if !(c.FocalLength > 0) {
		return fmt.Errorf("camera focal length must be positive, got %g", c.FocalLength)
	}
	if !(c.AspectRatio > 0) {
		return fmt.Errorf("camera aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if !(c.FieldOfView > 0 && c.FieldOfView < 180) {
		return fmt.Errorf("camera field of view must be in (0, 180) degrees, got %g", c.FieldOfView)
	}
	return nil
}

// Screen is the view plane derived from a camera. It maps continuous pixel
// coordinates to world-space points that primary rays are aimed at.
type Screen struct {
	UpperLeft  core.Vec3
	UpperRight core.Vec3
	LowerLeft  core.Vec3
	LowerRight core.Vec3
	Center     core.Vec3

	Width  float64 // Width in pixels
	Height float64 // Height in pixels

	slopeX, interceptX float64
	slopeY, interceptY float64
}

// NewScreen builds the view plane for camera. pixelHeight <= 0 selects the
// world-space height of the plane as the pixel height.
//
// The corners ignore the camera's X and Y; only Center carries them.
func NewScreen(camera Camera, pixelHeight float64) Screen {
	tanFov := math.Tan(camera.FieldOfView * 0.5 * math.Pi / 180)
	halfH := camera.FocalLength * tanFov
	halfW := camera.AspectRatio * halfH
	z := camera.Position.Z - camera.FocalLength

	s := Screen{
		UpperLeft:  core.NewVec3(-halfW, halfH, z),
		UpperRight: core.NewVec3(halfW, halfH, z),
		LowerLeft:  core.NewVec3(-halfW, -halfH, z),
		LowerRight: core.NewVec3(halfW, -halfH, z),
		Center:     core.NewVec3(camera.Position.X, camera.Position.Y, z),
		Height:     pixelHeight,
	}

	if s.Height <= 0 {
		s.Height = s.UpperLeft.Distance(s.LowerLeft)
	}
	s.Width = s.Height * camera.AspectRatio

	s.slopeX = 2 * halfW / s.Width
	s.interceptX = -halfW
	s.slopeY = 2 * halfH / s.Height
	s.interceptY = -halfH

	return s
}

// ToWorld maps pixel coordinates (u right, v down) onto the view plane
func (s Screen) ToWorld(u, v float64) core.Vec3 {
	x := s.slopeX*u + s.interceptX
	y := -(s.slopeY*v + s.interceptY)
	return core.NewVec3(x, y, s.Center.Z)
}

// PixelWidth returns the number of whole pixel columns
func (s Screen) PixelWidth() int {
	return int(s.Width)
}

// PixelHeight returns the number of whole pixel rows
func (s Screen) PixelHeight() int {
	return int(s.Height)
}
