// Package dtw defines options and error sentinels for constrained Dynamic Time Warping.
package dtw

import (
	"errors"
	"fmt"
)

// Options configures a constrained DTW evaluation.
//
// Fields:
//   - Radius      — Sakoe–Chiba band radius r; cell (i,j) is reachable iff |i-j| ≤ r.
//     Must satisfy 0 ≤ r ≤ n. r=0 is the L1 distance, r ≥ n-1 is unconstrained DTW.
//   - MemoryLimit — upper bound in bytes for the two column buffers (0 = unlimited).
//     Exceeding it yields ErrOutOfMemory, so callers can retry with a smaller r.
//   - Workers     — concurrency for Distances / NearestNeighbour
//     (0 = runtime.GOMAXPROCS(0)). Ignored by single-pair evaluation.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Radius = 4
//	dist, err := DTW(seqA, seqB, &opts)
type Options struct {
	Radius      int
	MemoryLimit int
	Workers     int
}

// DefaultOptions returns Options with r=0 (plain L1 distance), no memory
// limit and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Radius:      0,
		MemoryLimit: 0,
		Workers:     0,
	}
}

// Error kinds.
//
// Every validation sentinel wraps ErrValidation, so
//
//	errors.Is(err, dtw.ErrValidation)
//
// separates bad input from ErrOutOfMemory without enumerating each case.
var (
	// ErrValidation is the umbrella for every precondition violation.
	ErrValidation = errors.New("dtw: invalid input")

	// ErrLengthMismatch indicates the two sequences differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: sequences must have equal length", ErrValidation)

	// ErrRadiusOutOfRange indicates r < 0 or r > n.
	ErrRadiusOutOfRange = fmt.Errorf("%w: radius must satisfy 0 <= r <= len(sequence)", ErrValidation)

	// ErrNonFinite indicates a NaN or ±Inf element; +Inf is reserved for unreachable cells.
	ErrNonFinite = fmt.Errorf("%w: sequences must contain only finite values", ErrValidation)

	// ErrBadOptions indicates a negative MemoryLimit or Workers.
	ErrBadOptions = fmt.Errorf("%w: options out of range", ErrValidation)

	// ErrBadRadius indicates ParseRadius could not interpret its parameter.
	ErrBadRadius = fmt.Errorf("%w: malformed radius", ErrValidation)

	// ErrEmptyDataset indicates NearestNeighbour got nothing to compare against.
	ErrEmptyDataset = fmt.Errorf("%w: dataset must be non-empty", ErrValidation)

	// ErrOutOfMemory indicates the column buffers could not be allocated.
	// It never matches ErrValidation.
	ErrOutOfMemory = errors.New("dtw: cannot allocate column buffers")
)
