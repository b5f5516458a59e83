package fractal

import (
	"math/cmplx"
	"runtime"
	"sync"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

const (
	// ConvergenceThreshold stops the iteration once consecutive values are
	// this close together.
	ConvergenceThreshold = 1e-3
	// RootThreshold is the maximum distance at which a converged value is
	// attributed to a root.
	RootThreshold = 2e-3
	// MaxIterations bounds the Newton-Raphson iteration per point.
	MaxIterations = 16 * 16 * 16
	// tracksPerWorker controls how finely the row range is partitioned.
	tracksPerWorker = 8
)

// Observer receives the finished fractal data buffer: one root index per
// pixel (0 for no root, 1..limit otherwise), row-major
type Observer interface {
	AcceptResult(data []int16, limit int16, requestID uint64)
}

// Producer computes Newton-Raphson iteration fractals for a polynomial
// given in root form. The image rows are partitioned into tracks executed
// by a fixed pool of workers; tracks cover disjoint row ranges, so the
// shared data buffer needs no locking and the output is identical for any
// worker count.
type Producer struct {
	rooted     RootedPolynomial
	polynomial Polynomial
	derived    Polynomial
	numWorkers int
	logger     core.Logger
}

// NewProducer creates a producer for the polynomial with the given roots.
// numWorkers of 0 or less uses the number of CPUs.
func NewProducer(rooted RootedPolynomial, numWorkers int, logger core.Logger) *Producer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	polynomial := rooted.Polynomial()
	return &Producer{
		rooted:     rooted,
		polynomial: polynomial,
		derived:    polynomial.Derive(),
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// track is one contiguous row range of the image
type track struct {
	yMin, yMax int
}

// Produce computes the fractal over the complex-plane region
// [reMin, reMax] x [imMin, imMax] at the given image size and hands the
// finished buffer to the observer, exactly once, after all workers joined
func (p *Producer) Produce(reMin, reMax, imMin, imMax float64, width, height int, requestID uint64, observer Observer) {
	if p.logger != nil {
		p.logger.Printf("Starting fractal computation %d (%dx%d)...\n", requestID, width, height)
	}

	data := make([]int16, width*height)

	numTracks := tracksPerWorker * p.numWorkers
	if numTracks > height {
		numTracks = height
	}
	if numTracks < 1 {
		numTracks = 1
	}
	rowsPerTrack := height / numTracks

	tracks := make(chan track, numTracks)
	for i := 0; i < numTracks; i++ {
		yMax := (i+1)*rowsPerTrack - 1
		if i == numTracks-1 {
			yMax = height - 1
		}
		tracks <- track{yMin: i * rowsPerTrack, yMax: yMax}
	}
	close(tracks)

	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tr := range tracks {
				p.calculate(reMin, reMax, imMin, imMax, width, height, tr.yMin, tr.yMax, data)
			}
		}()
	}
	wg.Wait()

	if p.logger != nil {
		p.logger.Printf("Fractal computation %d complete, notifying observer...\n", requestID)
	}
	observer.AcceptResult(data, int16(p.polynomial.Order()+1), requestID)
}

// calculate fills the rows [yMin, yMax] of the data buffer with root
// indices found by Newton-Raphson iteration
func (p *Producer) calculate(reMin, reMax, imMin, imMax float64, width, height, yMin, yMax int, data []int16) {
	offset := yMin * width
	for y := yMin; y <= yMax; y++ {
		for x := 0; x < width; x++ {
			zn := p.mapToComplexPlane(x, y, width, height, reMin, reMax, imMin, imMax)

			var zn1 complex128
			iterations := 0
			for {
				fraction := p.polynomial.Apply(zn) / p.derived.Apply(zn)
				zn1 = zn - fraction
				module := cmplx.Abs(zn1 - zn)
				zn = zn1
				iterations++
				if module <= ConvergenceThreshold || iterations >= MaxIterations {
					break
				}
			}

			index := p.rooted.IndexOfClosestRoot(zn1, RootThreshold)
			data[offset] = int16(index + 1)
			offset++
		}
	}
}

// mapToComplexPlane maps pixel (x, y) to its point in the viewed region;
// image rows run top-down while the imaginary axis points up
func (p *Producer) mapToComplexPlane(x, y, width, height int, reMin, reMax, imMin, imMax float64) complex128 {
	re := float64(x)/float64(width-1)*(reMax-reMin) + reMin
	im := float64(height-1-y)/float64(height-1)*(imMax-imMin) + imMin
	return complex(re, im)
}
