package dtw

import "math"

// validateInput checks every precondition of DTW before anything is
// allocated. Order: lengths, radius, element values, options.
//
// Complexity: O(n).
func validateInput(seq1, seq2 []float64, opts Options) error {
	n := len(seq1)
	if len(seq2) != n {
		return ErrLengthMismatch
	}
	if opts.Radius < 0 || opts.Radius > n {
		return ErrRadiusOutOfRange
	}
	if !allFinite(seq1) || !allFinite(seq2) {
		return ErrNonFinite
	}

	return validateOptions(opts)
}

// validateOptions checks the Options fields that do not depend on the input.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MemoryLimit < 0 || opts.Workers < 0 {
		return ErrBadOptions
	}

	return nil
}

// allFinite reports whether s holds no NaN and no ±Inf.
func allFinite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
