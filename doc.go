// Package cdtw is a small, allocation-frugal toolkit for comparing numeric
// time series with constrained Dynamic Time Warping.
//
// 🚀 What is cdtw?
//
//	A pure-Go implementation of DTW restricted to a Sakoe–Chiba band:
//		• Banded recurrence over two rolling columns: O(r) memory, O(n·r) time
//		• L1 fast path when the band collapses to the diagonal (r = 0)
//		• Radius as samples or as a percentage of the sequence length
//		• Concurrent one-vs-many search and nearest-neighbour lookup
//
// ✨ Why choose cdtw?
//
//   - Exact – results match a dense-matrix DTW bit for bit on the band
//   - Predictable – sentinel errors, no panics on user input
//   - Reentrant – no shared state; every call owns its buffers
//
// Packages:
//
//	dtw/      — Band mapper, banded DTW evaluator, radius parsing, nearest neighbour
//	examples/ — runnable scenarios (waveform 1-NN, radius sweep, pattern search)
//
// Quick ASCII view of the band (n=6, r=1), ■ = evaluated cell:
//
//	■ ■ . . . .
//	■ ■ ■ . . .
//	. ■ ■ ■ . .
//	. . ■ ■ ■ .
//	. . . ■ ■ ■
//	. . . . ■ ■
//
//	go get github.com/katalvlaran/cdtw/dtw
package cdtw
