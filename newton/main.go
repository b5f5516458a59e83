package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/df07/go-scanline-raytracer/pkg/fractal"
)

// palette is cycled by root index; index 0 (no root found) stays black
var palette = []color.RGBA{
	{R: 230, G: 70, B: 60, A: 255},
	{R: 60, G: 180, B: 90, A: 255},
	{R: 70, G: 110, B: 230, A: 255},
	{R: 230, G: 190, B: 60, A: 255},
	{R: 180, G: 80, B: 200, A: 255},
	{R: 70, G: 200, B: 200, A: 255},
}

func main() {
	// Parse command line flags
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	output := flag.String("output", "fractal.png", "Output PNG path")
	flag.Parse()

	fmt.Println("Welcome to Newton-Raphson iteration-based fractal viewer.")
	fmt.Println("Please enter at least two roots, one root per line. Enter 'done' when done.")

	roots, err := readRoots(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	rooted, err := fractal.NewRootedPolynomial(roots...)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Image of fractal will appear shortly. Thank you.")

	saver := &pngSaver{width: *width, height: *height, path: *output}
	producer := fractal.NewProducer(rooted, *workers, nil)
	producer.Produce(-2, 2, -2, 2, *width, *height, 1, saver)

	if saver.err != nil {
		fmt.Printf("Error saving PNG: %v\n", saver.err)
		os.Exit(1)
	}
	fmt.Printf("Fractal saved as %s\n", *output)
}

// readRoots reads complex roots line by line until the 'done' terminator.
// At least two roots are required.
func readRoots(in io.Reader, out io.Writer) ([]complex128, error) {
	var roots []complex128
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintf(out, "Root %d> ", len(roots)+1)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "done") {
			break
		}

		root, err := fractal.ParseComplex(line)
		if err != nil {
			fmt.Fprintf(out, "Invalid root: %v\n", err)
			continue
		}
		roots = append(roots, root)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(roots) < 2 {
		return nil, fmt.Errorf("at least two roots are required, got %d", len(roots))
	}
	return roots, nil
}

// pngSaver colors each pixel by its root index and writes the PNG
type pngSaver struct {
	width, height int
	path          string
	err           error
}

func (s *pngSaver) AcceptResult(data []int16, limit int16, requestID uint64) {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for i, index := range data {
		img.SetRGBA(i%s.width, i/s.width, colorForIndex(index))
	}

	file, err := os.Create(s.path)
	if err != nil {
		s.err = err
		return
	}
	defer file.Close()
	s.err = png.Encode(file, img)
}

// colorForIndex maps a root index to its palette color; 0 means the
// iteration did not land near any root
func colorForIndex(index int16) color.RGBA {
	if index <= 0 {
		return color.RGBA{A: 255}
	}
	return palette[(int(index)-1)%len(palette)]
}
