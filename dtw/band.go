package dtw

// Band maps the Sakoe–Chiba band of an n×n DTW matrix onto a compact
// column buffer of 2r+3 cells.
//
// Layout for column i (0-based):
//
//	slot k ↔ matrix row j = i - r + k - 1
//
//	slot 0        — sentinel (+Inf), never written
//	slot 1..2r+1  — band cells j = i-r .. i+r
//	slot r+1      — the main diagonal (j == i)
//	slot 2r+2     — sentinel (+Inf), never written
//
// Moving one column to the right shifts every matrix row down one slot, so
// for cell (i,j) at slot k:
//
//	(i-1, j)   lives at prev[k+1]
//	(i-1, j-1) lives at prev[k]
//	(i,   j-1) lives at curr[k-1]
//
// All methods are pure arithmetic and never allocate.
type Band struct {
	N int // sequence length
	R int // band radius
}

// NewBand returns the mapper for sequences of length n and radius r.
// It does not validate; callers check 0 ≤ r ≤ n first.
func NewBand(n, r int) Band {
	return Band{N: n, R: r}
}

// Len returns the column buffer length 2r+3.
func (b Band) Len() int {
	return 2*b.R + 3
}

// Seed returns the slot of the main diagonal, r+1. Before the first column
// it holds the virtual origin (-1,-1) with cost 0.
func (b Band) Seed() int {
	return b.R + 1
}

// Rows returns the inclusive range [lo, hi] of slots holding matrix rows
// inside [0, n-1] for column col. lo > hi means the column is empty, which
// only happens when n == 0.
func (b Band) Rows(col int) (lo, hi int) {
	lo = max(1, b.R-col+1)
	hi = min(b.Len()-2, b.N-1-col+b.R+1)

	return lo, hi
}

// MatrixRow converts slot row of column col to the matrix row index j.
func (b Band) MatrixRow(col, row int) int {
	return col - b.R + row - 1
}

// BufferRow converts matrix row j of column col to its slot. The result is
// only meaningful when InBand(col, j).
func (b Band) BufferRow(col, j int) int {
	return j - col + b.R + 1
}

// InBand reports whether (i, j) lies inside both the matrix and the band.
func (b Band) InBand(i, j int) bool {
	if i < 0 || j < 0 || i >= b.N || j >= b.N {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= b.R
}
