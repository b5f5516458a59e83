package renderer

import (
	"runtime"
	"sync"
)

// rowThreshold is the largest row range a task computes directly; wider
// ranges split at their midpoint into two sub-tasks.
const rowThreshold = 16

// scheduler executes the recursive row-range task tree on a bounded number
// of goroutines. Leaves cover disjoint row ranges, so they write to disjoint
// slices of the shared pixel buffers and no locking is needed; the output is
// identical for any worker count, including one.
type scheduler struct {
	workers chan struct{}
	wg      sync.WaitGroup
}

// newScheduler creates a scheduler bounded to numWorkers goroutines,
// defaulting to the number of CPUs when numWorkers is not positive
func newScheduler(numWorkers int) *scheduler {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &scheduler{workers: make(chan struct{}, numWorkers)}
}

// run computes every row in [yMin, yMax] exactly once via leaf and blocks
// until the whole task tree has completed
func (s *scheduler) run(yMin, yMax int, leaf func(yMin, yMax int)) {
	s.dispatch(yMin, yMax, leaf)
	s.wg.Wait()
}

// dispatch splits the range at its midpoint until it is at most
// rowThreshold rows. The lower half forks onto a free worker when one is
// available and runs inline otherwise; the upper half always runs inline,
// so the calling goroutine keeps making progress.
func (s *scheduler) dispatch(yMin, yMax int, leaf func(int, int)) {
	if yMax-yMin+1 <= rowThreshold {
		leaf(yMin, yMax)
		return
	}

	mid := yMin + (yMax-yMin)/2

	select {
	case s.workers <- struct{}{}:
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer func() { <-s.workers }()
			s.dispatch(yMin, mid, leaf)
		}()
	default:
		s.dispatch(yMin, mid, leaf)
	}

	s.dispatch(mid+1, yMax, leaf)
}
