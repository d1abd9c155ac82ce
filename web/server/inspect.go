package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult contains information about the surface hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord core.HitRecord
	Shape     geometry.Shape // The shape that produced the hit
}

// inspectPixel casts a ray through the center of pixel (x, y) and returns the
// closest surface
func inspectPixel(sceneObj *scene.Scene, screen geometry.Screen, x, y int) InspectResult {
	eye := sceneObj.Camera.Position
	ray := core.NewRay(eye, screen.ToWorld(float64(x)+0.5, float64(y)+0.5))

	hit := integrator.NewPhong().Trace(ray, sceneObj)
	if !hit.Hit() {
		return InspectResult{Hit: false}
	}

	// Trace doesn't return the shape, so find the one that reproduces the hit
	for _, shape := range sceneObj.Shapes {
		probe := core.NewRayDirection(ray.Origin, ray.Direction)
		shape.Intersect(&probe)
		if probe.Hit.Hit() && probe.Hit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// extractMaterialInfo lists the Phong coefficients of a material
func extractMaterialInfo(mat core.Material) map[string]interface{} {
	return map[string]interface{}{
		"ambient":   vecArray(mat.Ambient),
		"diffuse":   vecArray(mat.Diffuse),
		"specular":  vecArray(mat.Specular),
		"shininess": mat.Shininess,
		"color":     hexColor(mat.Diffuse),
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Plane:
		properties["point"] = vecArray(geom.Point)
		properties["normal"] = vecArray(geom.Normal)
		return "plane", properties

	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{
			vecArray(geom.Vertices[0].Position),
			vecArray(geom.Vertices[1].Position),
			vecArray(geom.Vertices[2].Position),
		}
		return "triangle", properties

	case *geometry.TriangleMesh:
		bbox := geom.BoundingBox()
		properties["triangleCount"] = geom.GetTriangleCount()
		properties["boundsMin"] = vecArray(bbox.Min)
		properties["boundsMax"] = vecArray(bbox.Max)
		properties["center"] = vecArray(bbox.Center())
		return "mesh", properties

	default:
		return "unknown", properties
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeJSONError(w, sceneErrorStatus(err), err.Error())
		return
	}

	screen := geometry.NewScreen(sceneObj.Camera, req.Height)
	if pixelX < 0 || pixelX >= screen.PixelWidth() || pixelY < 0 || pixelY >= screen.PixelHeight() {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Pixel coordinates out of bounds (%dx%d)", screen.PixelWidth(), screen.PixelHeight()))
		return
	}

	result := inspectPixel(sceneObj, screen, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	geometryType, geometryProps := extractGeometryInfo(result.Shape)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vecArray(result.HitRecord.Position),
		Normal:       vecArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(result.HitRecord.Material),
			"geometry": geometryProps,
		},
	})
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}
