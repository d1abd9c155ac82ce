package server

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const testSceneFile = `# Scene: Single Sphere
# Description: one red sphere
2
camera pos 0 0 0 fov 60 f 10 a 1
sphere pos 0 0 -20 rad 5 amb 0.1 0 0 dif 0.9 0 0 spe 0 0 0 shi 1
light pos 0 10 0 dif 1 1 1 spe 1 1 1
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "single-sphere.txt"), []byte(testSceneFile), 0644); err != nil {
		t.Fatal(err)
	}
	return NewServer(0, dir)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/health")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected health response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var scenes []scene.SceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	ids := make(map[string]bool)
	for _, info := range scenes {
		ids[info.ID] = true
	}
	for _, want := range []string{"default", "mesh", "shadows", "file:single-sphere"} {
		if !ids[want] {
			t.Errorf("Expected scene %q in listing", want)
		}
	}
}

func TestHandleImage(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/image?scene=file:single-sphere&height=16&samples=2&seed=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("Expected 16x16 image, got %v", img.Bounds())
	}
}

func TestHandleImage_BadRequests(t *testing.T) {
	s := newTestServer(t)
	tests := []string{
		"/api/image?samples=0",
		"/api/image?height=-1",
		"/api/image?seed=abc",
	}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			if rec := get(t, s, target); rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestUnknownScene_NotFound(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.txt"), []byte("1\nsphere pos 0 0 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewServer(0, dir)

	tests := []struct {
		target string
		status int
	}{
		{"/api/image?scene=nope", http.StatusNotFound},
		{"/api/image?scene=file:nope", http.StatusNotFound},
		{"/api/inspect?scene=nope&x=0&y=0", http.StatusNotFound},
		{"/api/inspect?scene=file:nope&x=0&y=0", http.StatusNotFound},
		{"/api/image?scene=file:broken", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, s, tt.target)
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}

	if _, err := s.createScene("nope"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestExtractGeometryInfo_Mesh(t *testing.T) {
	mesh := geometry.NewTriangleMesh(
		[]core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 4, -2)},
		[]int{0, 1, 2}, core.Material{}, nil)

	geometryType, props := extractGeometryInfo(mesh)
	if geometryType != "mesh" {
		t.Fatalf("Expected mesh, got %q", geometryType)
	}
	if props["triangleCount"] != 1 {
		t.Errorf("Expected 1 triangle, got %v", props["triangleCount"])
	}
	if center := props["center"]; center != [3]float64{1, 2, -1} {
		t.Errorf("Expected bounds center [1 2 -1], got %v", center)
	}
}

// readSSE collects event types and their data in arrival order
func readSSE(t *testing.T, body string) (types []string, data []string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(body))
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if value, ok := strings.CutPrefix(line, "event: "); ok {
			types = append(types, value)
		} else if value, ok := strings.CutPrefix(line, "data: "); ok {
			data = append(data, value)
		}
	}
	return types, data
}

func TestHandleRender_StreamsConsoleThenComplete(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/render?scene=default&height=24&samples=1&seed=9")
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %q", ct)
	}

	types, data := readSSE(t, rec.Body.String())
	if len(types) < 2 {
		t.Fatalf("Expected console and complete events, got %v", types)
	}
	if types[0] != "console" {
		t.Errorf("Expected first event to be console output, got %q", types[0])
	}
	last := len(types) - 1
	if types[last] != "complete" {
		t.Fatalf("Expected final complete event, got %q (%s)", types[last], data[last])
	}

	var result RenderComplete
	if err := json.Unmarshal([]byte(data[last]), &result); err != nil {
		t.Fatalf("Invalid complete payload: %v", err)
	}
	if result.Height != 24 || result.Stats.TotalPixels != result.Width*result.Height {
		t.Errorf("Unexpected result dimensions/stats: %dx%d, %+v", result.Width, result.Height, result.Stats)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64 image: %v", err)
	}
	if _, err := png.Decode(strings.NewReader(string(raw))); err != nil {
		t.Errorf("Image data is not a PNG: %v", err)
	}
}

func TestHandleRender_UnknownScene(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/render?scene=nonexistent")
	types, data := readSSE(t, rec.Body.String())
	if len(types) != 1 || types[0] != "error" {
		t.Fatalf("Expected a single error event, got %v", types)
	}
	if !strings.Contains(data[0], "nonexistent") {
		t.Errorf("Expected the error to name the scene, got %q", data[0])
	}
}

func TestHandleInspect(t *testing.T) {
	s := newTestServer(t)

	// Center pixel of a 20x20 screen looks straight at the sphere
	rec := get(t, s, "/api/inspect?scene=file:single-sphere&height=20&x=10&y=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !resp.Hit || resp.GeometryType != "sphere" {
		t.Fatalf("Expected a sphere hit, got %+v", resp)
	}
	if resp.Distance < 14.9 || resp.Distance > 15.1 {
		t.Errorf("Expected distance ~15, got %v", resp.Distance)
	}

	// Corner pixel misses the sphere and there is nothing else
	rec = get(t, s, "/api/inspect?scene=file:single-sphere&height=20&x=0&y=0")
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if resp.Hit {
		t.Errorf("Expected a miss at the corner, got %+v", resp)
	}
}

func TestHandleInspect_OutOfBounds(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/inspect?scene=default&height=20&x=100&y=0")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}
