package renderer

import (
	"fmt"
	"runtime"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// ColumnRange is the half-open range of image columns [Start, End)
// handled by one worker
type ColumnRange struct {
	Start, End int
}

// PartitionColumns splits width columns into numWorkers contiguous,
// disjoint ranges. The remainder of the division goes to the last range.
func PartitionColumns(width, numWorkers int) []ColumnRange {
	if width <= 0 || numWorkers <= 0 {
		return nil
	}
	if numWorkers > width {
		numWorkers = width
	}

	chunk := width / numWorkers
	ranges := make([]ColumnRange, numWorkers)
	for i := range ranges {
		ranges[i] = ColumnRange{Start: i * chunk, End: (i + 1) * chunk}
	}
	ranges[numWorkers-1].End = width
	return ranges
}

// ColumnError reports a column whose computation panicked
type ColumnError struct {
	Column int
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %d: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// Scheduler runs per-column work on a fixed number of goroutines
type Scheduler struct {
	NumWorkers int // 0 = use CPU count
}

// NewScheduler creates a scheduler with the specified number of workers
func NewScheduler(numWorkers int) *Scheduler {
	return &Scheduler{NumWorkers: numWorkers}
}

// Workers returns how many workers a render of the given width will use
func (s *Scheduler) Workers(width int) int {
	n := s.NumWorkers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > width {
		n = width
	}
	return n
}

// Run calls column once for every x in [0, width) and returns after all
// calls finish. Each worker owns one contiguous range of columns. A panic
// in a column stops that worker and is returned as a *ColumnError.
func (s *Scheduler) Run(width int, column func(x int)) error {
	ranges := PartitionColumns(width, s.Workers(width))
	glog.V(1).Infof("column partition: %v", ranges)

	var g errgroup.Group
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			for x := r.Start; x < r.End; x++ {
				if err := runColumn(x, column); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return xerrors.Errorf("while rendering columns: %w", err)
	}
	return nil
}

// runColumn calls column(x), converting a panic into a *ColumnError
func runColumn(x int, column func(x int)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ColumnError{Column: x, Err: xerrors.Errorf("panic: %v", r)}
		}
	}()
	column(x)
	return nil
}
