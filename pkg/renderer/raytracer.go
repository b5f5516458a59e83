package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	Shading    ShadingConfig
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		Shading:    DefaultShadingConfig(),
	}
}

// Request describes one full render: camera parameters, output size and a
// caller-chosen identifier echoed back to the observer.
type Request struct {
	Eye        core.Vec3
	View       core.Vec3
	ViewUp     core.Vec3
	Horizontal float64
	Vertical   float64
	Width      int
	Height     int
	RequestID  uint64
}

// Image is a finished pixel buffer: three parallel channel arrays of length
// Width*Height, row-major, each entry clamped to [0, 255]
type Image struct {
	Width  int
	Height int
	Red    []uint8
	Green  []uint8
	Blue   []uint8
}

// RGBA converts the channel arrays to a standard library image
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := 0; i < img.Width*img.Height; i++ {
		out.SetRGBA(i%img.Width, i/img.Width, color.RGBA{
			R: img.Red[i],
			G: img.Green[i],
			B: img.Blue[i],
			A: 255,
		})
	}
	return out
}

// ResultObserver receives the finished pixel buffer of a render request.
// Produce makes exactly one call per request, after the scheduler joins.
type ResultObserver interface {
	AcceptResult(red, green, blue []uint8, requestID uint64)
}

// Raytracer renders scenes by casting one ray per pixel and splitting the
// per-row work across a bounded worker pool
type Raytracer struct {
	scene  *scene.Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a raytracer for the given scene
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{scene: s, config: config, logger: logger}
}

// Render runs one full render and returns the finished pixel buffer.
// It blocks until every row-range task has completed.
func (rt *Raytracer) Render(req Request) (*Image, error) {
	if req.Width < 2 || req.Height < 2 {
		return nil, fmt.Errorf("render: image size must be at least 2x2, got %dx%d", req.Width, req.Height)
	}

	camera, err := NewCamera(req.Eye, req.View, req.ViewUp, req.Horizontal, req.Vertical)
	if err != nil {
		return nil, err
	}

	img := &Image{
		Width:  req.Width,
		Height: req.Height,
		Red:    make([]uint8, req.Width*req.Height),
		Green:  make([]uint8, req.Width*req.Height),
		Blue:   make([]uint8, req.Width*req.Height),
	}

	shader := NewShader(rt.scene, rt.config.Shading)

	newScheduler(rt.config.NumWorkers).run(0, req.Height-1, func(yMin, yMax int) {
		rt.renderRows(shader, camera, req, yMin, yMax, img)
	})

	return img, nil
}

// Produce runs one full render for the request and hands the finished
// buffer to the observer, exactly once, after all workers have joined
func (rt *Raytracer) Produce(req Request, observer ResultObserver) error {
	rt.logger.Printf("Starting render %d (%dx%d)...\n", req.RequestID, req.Width, req.Height)

	img, err := rt.Render(req)
	if err != nil {
		return err
	}

	rt.logger.Printf("Render %d complete, notifying observer...\n", req.RequestID)
	observer.AcceptResult(img.Red, img.Green, img.Blue, req.RequestID)
	return nil
}

// renderRows computes every pixel of rows [yMin, yMax], left to right, and
// writes the clamped channels into the task's disjoint slice of the buffers
func (rt *Raytracer) renderRows(shader *Shader, camera *Camera, req Request, yMin, yMax int, img *Image) {
	offset := yMin * req.Width
	for y := yMin; y <= yMax; y++ {
		for x := 0; x < req.Width; x++ {
			ray := camera.RayThrough(x, y, req.Width, req.Height)
			c := shader.Shade(ray)
			img.Red[offset] = ClampChannel(c.X)
			img.Green[offset] = ClampChannel(c.Y)
			img.Blue[offset] = ClampChannel(c.Z)
			offset++
		}
	}
}
