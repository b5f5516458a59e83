package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/renderer"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'single'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Scanline Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Two-sphere scene with colored point lights")
		fmt.Println("  single  - Single sphere with one white light")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting Scanline Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Using %s scene...\n", *sceneType)

	// Create output directory for this scene type
	outputDir := createOutputDir(*sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	config := renderer.DefaultConfig()
	config.NumWorkers = *workers
	raytracer := renderer.NewRaytracer(selectedScene, config, nil)

	startTime := time.Now()
	img, err := raytracer.Render(defaultRequest(*width, *height))
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		return
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img.RGBA()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds one of the built-in scenes by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "single":
		return scene.NewSingleSphereScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// createOutputDir returns the output directory for a scene type
func createOutputDir(sceneType string) string {
	return filepath.Join("output", sceneType)
}

// defaultRequest returns the standard camera looking at the origin from the
// positive x axis
func defaultRequest(width, height int) renderer.Request {
	return renderer.Request{
		Eye:        core.NewVec3(10, 0, 0),
		View:       core.NewVec3(0, 0, 0),
		ViewUp:     core.NewVec3(0, 0, 10),
		Horizontal: 20,
		Vertical:   20,
		Width:      width,
		Height:     height,
	}
}
