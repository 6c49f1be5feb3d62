// Package dtw computes constrained Dynamic Time Warping (cDTW) distances
// between equal-length numeric time series, restricted to a Sakoe–Chiba band.
//
// 🚀 What is cDTW?
//
//	DTW finds the cheapest monotonic alignment between two sequences by
//	warping the time axis.  The Sakoe–Chiba band forbids aligning samples
//	more than r steps apart, which bounds both the permitted time shift and
//	the work.  Typical uses:
//	  • Nearest-neighbour classification of time series
//	  • Sensor / gesture template matching
//	  • Clustering with a shift-tolerant distance
//
// ✨ Key features:
//   - O(r) memory: two rolling band columns of 2r+3 cells, swapped per column
//   - O(n·r) time
//   - r = 0 collapses to the L1 distance, r ≥ n-1 is unconstrained DTW
//   - radius as samples or percent of the length (ParseRadius)
//   - concurrent one-vs-many search (Distances, NearestNeighbour)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cdtw/dtw"
//
//	dist, err := dtw.Dissimilarity(a, b, 3)
//	if errors.Is(err, dtw.ErrValidation) {
//	  // bad input: lengths, radius, NaN/Inf
//	}
//	if errors.Is(err, dtw.ErrOutOfMemory) {
//	  // retry with a smaller radius
//	}
//
// Performance:
//
//   - Time:   O(n·r)
//   - Memory: O(r)
//
// Only the scalar distance is produced; no warping path is recovered.
// See example_test.go for worked scenarios.
package dtw
