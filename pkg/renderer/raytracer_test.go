package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// testRequest is the end-to-end configuration: eye on +X looking
// at a radius-5 sphere at the origin through a 20x20 view plane.
func testRequest() Request {
	return Request{
		Eye:        core.NewVec3(10, 0, 0),
		View:       core.NewVec3(0, 0, 0),
		ViewUp:     core.NewVec3(0, 0, 10),
		Horizontal: 20,
		Vertical:   20,
		Width:      20,
		Height:     20,
		RequestID:  1,
	}
}

func renderOrFail(t *testing.T, numWorkers int) *Image {
	t.Helper()

	config := DefaultConfig()
	config.NumWorkers = numWorkers
	rt := NewRaytracer(scene.NewSingleSphereScene(), config, nil)

	img, err := rt.Render(testRequest())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return img
}

func TestRaytracer_Render_EndToEnd(t *testing.T) {
	img := renderOrFail(t, 0)

	// The center of the image looks straight at the sphere: at least the
	// ambient value on every channel.
	center := 10*img.Width + 10
	if img.Red[center] < 15 || img.Green[center] < 15 || img.Blue[center] < 15 {
		t.Errorf("Expected center pixel at ambient or brighter, got (%d, %d, %d)",
			img.Red[center], img.Green[center], img.Blue[center])
	}

	// Corner rays miss the sphere entirely: exact background black.
	for _, offset := range []int{0, img.Width - 1, (img.Height - 1) * img.Width, img.Height*img.Width - 1} {
		if img.Red[offset] != 0 || img.Green[offset] != 0 || img.Blue[offset] != 0 {
			t.Errorf("Expected background (0, 0, 0) at offset %d, got (%d, %d, %d)",
				offset, img.Red[offset], img.Green[offset], img.Blue[offset])
		}
	}
}

func TestRaytracer_Render_DeterministicAcrossWorkerCounts(t *testing.T) {
	reference := renderOrFail(t, 1)

	for _, workers := range []int{2, 4, 8} {
		img := renderOrFail(t, workers)
		if !bytes.Equal(img.Red, reference.Red) ||
			!bytes.Equal(img.Green, reference.Green) ||
			!bytes.Equal(img.Blue, reference.Blue) {
			t.Errorf("Expected byte-identical buffers with %d workers", workers)
		}
	}
}

func TestRaytracer_Render_BufferShape(t *testing.T) {
	img := renderOrFail(t, 0)

	expected := 20 * 20
	if len(img.Red) != expected || len(img.Green) != expected || len(img.Blue) != expected {
		t.Errorf("Expected %d entries per channel, got %d/%d/%d",
			expected, len(img.Red), len(img.Green), len(img.Blue))
	}
}

func TestRaytracer_Render_DegenerateCamera(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), DefaultConfig(), nil)

	req := testRequest()
	req.ViewUp = core.NewVec3(-1, 0, 0) // parallel to the view direction
	if _, err := rt.Render(req); err == nil {
		t.Error("Expected error for degenerate camera, got nil")
	}
}

func TestRaytracer_Render_TooSmall(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), DefaultConfig(), nil)

	req := testRequest()
	req.Width, req.Height = 1, 1
	if _, err := rt.Render(req); err == nil {
		t.Error("Expected error for sub-2x2 image, got nil")
	}
}

type captureObserver struct {
	calls     int
	red       []uint8
	green     []uint8
	blue      []uint8
	requestID uint64
}

func (o *captureObserver) AcceptResult(red, green, blue []uint8, requestID uint64) {
	o.calls++
	o.red, o.green, o.blue = red, green, blue
	o.requestID = requestID
}

func TestRaytracer_Produce_NotifiesObserverOnce(t *testing.T) {
	rt := NewRaytracer(scene.NewSingleSphereScene(), DefaultConfig(), nil)

	observer := &captureObserver{}
	req := testRequest()
	req.RequestID = 42

	if err := rt.Produce(req, observer); err != nil {
		t.Fatalf("Produce failed: %v", err)
	}

	if observer.calls != 1 {
		t.Errorf("Expected exactly one AcceptResult call, got %d", observer.calls)
	}
	if observer.requestID != 42 {
		t.Errorf("Expected request ID 42, got %d", observer.requestID)
	}
	if len(observer.red) != 400 || len(observer.green) != 400 || len(observer.blue) != 400 {
		t.Error("Expected fully populated channel buffers")
	}
}

func TestImage_RGBA(t *testing.T) {
	img := &Image{
		Width:  2,
		Height: 2,
		Red:    []uint8{10, 20, 30, 40},
		Green:  []uint8{50, 60, 70, 80},
		Blue:   []uint8{90, 100, 110, 120},
	}

	rgba := img.RGBA()
	c := rgba.RGBAAt(1, 0)
	if c.R != 20 || c.G != 60 || c.B != 100 || c.A != 255 {
		t.Errorf("Expected (20, 60, 100, 255) at (1,0), got %v", c)
	}
	c = rgba.RGBAAt(0, 1)
	if c.R != 30 || c.G != 70 || c.B != 110 {
		t.Errorf("Expected (30, 70, 110) at (0,1), got %v", c)
	}
}
