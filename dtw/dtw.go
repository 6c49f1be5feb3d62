package dtw

import (
	"math"
	"runtime"

	"gonum.org/v1/gonum/floats"
)

// DTW — constrained Dynamic Time Warping (Sakoe–Chiba band)
//
// Description:
//
//	Measures the dissimilarity of two equal-length sequences as the minimal
//	cumulative |a[i]-b[j]| along a monotonic warping path from (0,0) to
//	(n-1,n-1) that never leaves the band |i-j| ≤ r.
//
// Algorithm Outline (rolling band columns):
//  1. L = 2r+3. Allocate prev and curr, L cells each, all +Inf.
//  2. prev[r+1] = 0 (virtual origin before the first column).
//  3. For col = 0..n-1:
//     [lo, hi] = Band.Rows(col)
//     For row = lo..hi:
//     j = col - r + row - 1
//     curr[row] = |a[col]-b[j]| + min(prev[row+1], prev[row], curr[row-1])
//     swap(prev, curr)
//  4. distance = prev[hi] of the last column, i.e. cell (n-1, n-1).
//
// r = 0 never reaches the recurrence: the band is the diagonal alone and the
// distance is the L1 norm Σ|a[i]-b[i]|.
//
// Complexity:
//
//	Time   = O(n·r)
//	Memory = O(r), two buffers for the whole call, swapped, never reallocated.
//
// Errors:
//   - ErrLengthMismatch, ErrRadiusOutOfRange, ErrNonFinite, ErrBadOptions
//     (all match ErrValidation) — reported before any allocation.
//   - ErrOutOfMemory — the column buffers exceed Options.MemoryLimit or the
//     runtime refuses them.

// bytesPerCell is the size of one column buffer cell.
const bytesPerCell = 8

// Dissimilarity computes the constrained DTW distance between seq1 and seq2
// with band radius r. It is DTW with Options{Radius: r}.
//
// Example:
//
//	d, err := Dissimilarity([]float64{0, 0, 0}, []float64{1, 1, 1}, 0) // d == 3
func Dissimilarity(seq1, seq2 []float64, r int) (float64, error) {
	opts := DefaultOptions()
	opts.Radius = r

	return DTW(seq1, seq2, &opts)
}

// DTW computes the constrained DTW distance between seq1 and seq2.
// A nil opts means DefaultOptions().
//
// The result is finite and non-negative for valid input; it equals the L1
// distance when opts.Radius == 0 and unconstrained DTW when opts.Radius ≥ n-1.
func DTW(seq1, seq2 []float64, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateInput(seq1, seq2, o); err != nil {
		return 0, err
	}

	if o.Radius == 0 {
		return l1Norm(seq1, seq2), nil
	}

	return sakoeChiba(seq1, seq2, o.Radius, o.MemoryLimit)
}

// l1Norm returns Σ|a[i]-b[i]|. len(a) must equal len(b).
func l1Norm(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// sakoeChiba runs the banded recurrence. Inputs are already validated;
// r may be 0 here (tests use it to cross-check the fast path).
func sakoeChiba(a, b []float64, r, memoryLimit int) (float64, error) {
	n := len(a)
	if n == 0 {
		return 0, nil
	}

	band := NewBand(n, r)
	prev, curr, err := allocColumns(band.Len(), memoryLimit)
	if err != nil {
		return 0, err
	}

	inf := math.Inf(1)
	for k := range prev {
		prev[k] = inf
		curr[k] = inf
	}
	prev[band.Seed()] = 0

	var lo, hi int
	for col := 0; col < n; col++ {
		lo, hi = band.Rows(col)
		x := a[col]
		for row := lo; row <= hi; row++ {
			cost := math.Abs(x - b[band.MatrixRow(col, row)])
			// (i-1,j), (i-1,j-1), (i,j-1)
			curr[row] = cost + min3(prev[row+1], prev[row], curr[row-1])
		}
		// curr now holds column col-1: every slot the next column reads is
		// either rewritten first or still +Inf.
		prev, curr = curr, prev
	}

	return prev[hi], nil
}

// allocColumns returns the two column buffers of size cells each, carved
// from one allocation. memoryLimit > 0 caps their combined size in bytes.
func allocColumns(size, memoryLimit int) (prev, curr []float64, err error) {
	if memoryLimit > 0 && size > memoryLimit/(2*bytesPerCell) {
		return nil, nil, ErrOutOfMemory
	}

	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(runtime.Error); !ok {
				panic(rec)
			}
			prev, curr, err = nil, nil, ErrOutOfMemory
		}
	}()
	buf := make([]float64, 2*size)

	return buf[:size:size], buf[size:], nil
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
