package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'single'")
	width := flag.Int("width", 800, "Window and image width in pixels")
	height := flag.Int("height", 600, "Window and image height in pixels")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.Parse()

	g, err := newViewerGame(*sceneType, *width, *height, *workers)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("Scanline Raytracer")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Error running viewer: %v", err)
		os.Exit(1)
	}
}

// viewerGame displays the most recent render and re-renders in the
// background when the scene is switched with the 1 and 2 keys
type viewerGame struct {
	width, height int
	config        renderer.Config

	mu        sync.Mutex
	img       *image.RGBA
	dirty     bool
	rendering bool

	screenImg *ebiten.Image
}

func newViewerGame(sceneType string, width, height, workers int) (*viewerGame, error) {
	config := renderer.DefaultConfig()
	config.NumWorkers = workers

	g := &viewerGame{width: width, height: height, config: config}
	if err := g.startRender(sceneType); err != nil {
		return nil, err
	}
	return g, nil
}

// startRender kicks off a background render of the named scene. Only one
// render runs at a time; further requests are ignored until it finishes.
func (g *viewerGame) startRender(sceneType string) error {
	var selectedScene *scene.Scene
	switch sceneType {
	case "default":
		selectedScene = scene.NewDefaultScene()
	case "single":
		selectedScene = scene.NewSingleSphereScene()
	default:
		return fmt.Errorf("unknown scene type: %s", sceneType)
	}

	g.mu.Lock()
	if g.rendering {
		g.mu.Unlock()
		return nil
	}
	g.rendering = true
	g.mu.Unlock()

	go func() {
		raytracer := renderer.NewRaytracer(selectedScene, g.config, nil)
		img, err := raytracer.Render(renderer.Request{
			Eye:        core.NewVec3(10, 0, 0),
			View:       core.NewVec3(0, 0, 0),
			ViewUp:     core.NewVec3(0, 0, 10),
			Horizontal: 20,
			Vertical:   20,
			Width:      g.width,
			Height:     g.height,
		})

		g.mu.Lock()
		defer g.mu.Unlock()
		g.rendering = false
		if err != nil {
			log.Printf("Render failed: %v", err)
			return
		}
		g.img = img.RGBA()
		g.dirty = true
	}()
	return nil
}

func (g *viewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		return g.startRender("default")
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		return g.startRender("single")
	}
	return nil
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	img, dirty := g.img, g.dirty
	g.dirty = false
	g.mu.Unlock()

	if img == nil {
		return
	}
	if g.screenImg == nil {
		g.screenImg = ebiten.NewImage(g.width, g.height)
	}
	if dirty {
		g.screenImg.WritePixels(img.Pix)
	}
	screen.DrawImage(g.screenImg, nil)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
