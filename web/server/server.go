package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// Server handles web requests for the scanline raytracer
type Server struct {
	port          int
	uploader      *Uploader
	nextRequestID uint64
}

// NewServer creates a new web server. S3 uploads are enabled when the
// environment provides a bucket, see LoadUploadConfig.
func NewServer(port int) *Server {
	uploader, err := NewUploaderFromEnv()
	if err != nil {
		log.Printf("Uploads disabled: %v", err)
	}
	return &Server{port: port, uploader: uploader}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string    // Scene name (e.g., "default")
	Eye        core.Vec3 // Observer position
	View       core.Vec3 // Point the observer looks at
	ViewUp     core.Vec3 // Rough up direction
	Horizontal float64   // Screen width in scene units
	Vertical   float64   // Screen height in scene units
	Width      int       // Image width
	Height     int       // Image height
	Workers    int       // Number of parallel workers (0 = CPU count)
	Upload     bool      // Push the finished image to S3
}

// Start starts the web server
func (s *Server) Start() error {
	// Serve static files
	http.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender runs one full render and responds with the finished PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj := s.createScene(req.Scene)
	if sceneObj == nil {
		http.Error(w, "Unknown scene: "+req.Scene, http.StatusBadRequest)
		return
	}

	config := renderer.DefaultConfig()
	config.NumWorkers = req.Workers
	raytracer := renderer.NewRaytracer(sceneObj, config, nil)

	requestID := atomic.AddUint64(&s.nextRequestID, 1)
	startTime := time.Now()

	img, err := raytracer.Render(renderer.Request{
		Eye:        req.Eye,
		View:       req.View,
		ViewUp:     req.ViewUp,
		Horizontal: req.Horizontal,
		Vertical:   req.Vertical,
		Width:      req.Width,
		Height:     req.Height,
		RequestID:  requestID,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusBadRequest)
		return
	}
	log.Printf("Render %d (%dx%d) completed in %v", requestID, req.Width, req.Height, time.Since(startTime))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.RGBA()); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode image: %v", err), http.StatusInternalServerError)
		return
	}

	if req.Upload {
		if s.uploader == nil {
			http.Error(w, "Uploads are not configured", http.StatusBadRequest)
			return
		}
		key := fmt.Sprintf("renders/%s_%d.png", req.Scene, requestID)
		if err := s.uploader.Upload(r.Context(), img.RGBA(), key); err != nil {
			log.Printf("Upload failed: %v", err)
			http.Error(w, "Upload failed", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	// Initialize request with defaults handled by helper functions
	req := &RenderRequest{}
	query := r.URL.Query()

	// Parse scene name (string parameter, no validation needed)
	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default"
	}

	// Parse and validate all parameters using helper functions
	var err error
	if req.Width, err = parseIntParam(query, "width", 800, 2, 4000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 600, 2, 4000); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	if req.Horizontal, err = parseFloatParam(query, "horizontal", 20, 0.1, 1000); err != nil {
		return nil, err
	}
	if req.Vertical, err = parseFloatParam(query, "vertical", 20, 0.1, 1000); err != nil {
		return nil, err
	}
	if req.Eye, err = parseVecParam(query, "eye", core.NewVec3(10, 0, 0)); err != nil {
		return nil, err
	}
	if req.View, err = parseVecParam(query, "view", core.NewVec3(0, 0, 0)); err != nil {
		return nil, err
	}
	if req.ViewUp, err = parseVecParam(query, "up", core.NewVec3(0, 0, 10)); err != nil {
		return nil, err
	}
	req.Upload = query.Get("upload") == "1"

	// Performance warning
	if req.Width*req.Height > 2000*2000 {
		log.Printf("Render warning: Large image may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseVecParam parses a "x,y,z" vector parameter from URL query
func parseVecParam(values url.Values, key string, defaultValue core.Vec3) (core.Vec3, error) {
	value := values.Get(key)
	if value == "" {
		return defaultValue, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("invalid %s: expected x,y,z, got: %s", key, value)
	}

	var components [3]float64
	for i, part := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid %s: %s", key, value)
		}
		components[i] = parsed
	}
	return core.NewVec3(components[0], components[1], components[2]), nil
}

// createScene creates a scene based on the scene name
func (s *Server) createScene(sceneName string) *scene.Scene {
	switch sceneName {
	case "default":
		return scene.NewDefaultScene()
	case "single":
		return scene.NewSingleSphereScene()
	default:
		return nil
	}
}
