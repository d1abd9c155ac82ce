package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string  // Scene ID (e.g., "default" or "file:room")
	Samples int     // Anti-aliasing samples per pixel
	Height  float64 // Screen height in pixels, 0 uses the camera's view plane
	Seed    int64   // Random seed, 0 picks one from the clock
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// RenderComplete is the payload of the final "complete" event
type RenderComplete struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	AverageSamples   float64 `json:"averageSamples"`
	Hits             int     `json:"hits"`
	ShadowRays       int     `json:"shadowRays"`
	OccludedRays     int     `json:"occludedRays"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// handleRender renders a scene and streams console messages, then the final
// image, as Server-Sent Events
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Single writer goroutine; it must finish before the handler returns
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		s.writeSSEEvents(ctx, w, sseEventChan)
		close(writerDone)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	consoleDone := make(chan struct{})
	go func() {
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
		close(consoleDone)
	}()

	startTime := time.Now()
	img, stats, err := s.renderScene(ctx, sceneObj, req, webLogger)

	// The logger is not used once rendering returns
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Render error: %v", err))
		return
	}

	imageData, err := s.imageToBase64PNG(img)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(RenderComplete{
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
		ImageData: imageData,
		Stats:     toStats(stats, img),
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Failed to encode result: %v", err))
		return
	}
	s.sendEvent(ctx, sseEventChan, "complete", string(data))
}

// handleImage renders a scene and responds with the PNG directly
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeJSONError(w, sceneErrorStatus(err), err.Error())
		return
	}

	img, _, err := s.renderScene(r.Context(), sceneObj, req, renderer.NewLeveledLogger("warn", nil))
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// renderScene renders sceneObj with the request's sampling settings
func (s *Server) renderScene(ctx context.Context, sceneObj *scene.Scene, req *RenderRequest, logger core.Logger) (*image.RGBA, renderer.RenderStats, error) {
	config := renderer.DefaultSamplingConfig()
	config.SamplesPerPixel = req.Samples
	config.Height = req.Height

	raytracer := renderer.NewRaytracer(sceneObj, config, logger)
	if raytracer.Width() < 1 || raytracer.Height() < 1 || raytracer.Width()*raytracer.Height() > maxPixels {
		return nil, renderer.RenderStats{}, fmt.Errorf("image size %dx%d out of range (set height)", raytracer.Width(), raytracer.Height())
	}
	return raytracer.RenderImage(ctx, core.NewSeededSampler(req.Seed))
}

// maxPixels bounds the image size a request may ask for
const maxPixels = 4000 * 4000

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, *WebLogger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents writes every event in a single goroutine until the channel
// closes. After the client disconnects remaining events are drained unwritten.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	for event := range sseEventChan {
		if ctx.Err() != nil {
			continue
		}

		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			continue
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards console messages as SSE events until consoleChan closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		default:
			// Channel full, skip message to avoid blocking
		}
	}
}

// sendEvent queues an event unless the client has gone away
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType, data string) {
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: data}:
	case <-ctx.Done():
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Samples, err = parseIntParam(query, "samples", 8, 1, 1024); err != nil {
		return nil, err
	}
	if req.Height, err = parseFloatParam(query, "height", 240, 0, 4000); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", 0, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func toStats(stats renderer.RenderStats, img image.Image) Stats {
	return Stats{
		TotalPixels:      stats.TotalPixels,
		TotalSamples:     stats.TotalSamples,
		AverageSamples:   stats.AverageSamples,
		Hits:             stats.Hits,
		ShadowRays:       stats.ShadowRays,
		OccludedRays:     stats.OccludedRays,
		AverageLuminance: renderer.CalculateAverageLuminance(img),
	}
}
