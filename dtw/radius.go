package dtw

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseRadius interprets a band radius given either as an absolute number of
// samples ("3") or as a percentage of the sequence length n ("10%").
// Percentages are truncated toward zero: "10%" of 40 samples is 4,
// "10%" of 9 samples is 0.
//
// The result is not checked against n; DTW does that.
//
// Errors: ErrBadRadius (matches ErrValidation) for empty, malformed,
// negative or non-finite input.
func ParseRadius(param string, n int) (int, error) {
	s := strings.TrimSpace(param)
	if s == "" {
		return 0, ErrBadRadius
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrBadRadius, param, err)
		}
		r := math.Trunc(p / 100 * float64(n))
		if p < 0 || math.IsNaN(r) || r >= float64(math.MaxInt) {
			return 0, fmt.Errorf("%w: %q: percentage out of range", ErrBadRadius, param)
		}

		return int(r), nil
	}

	r, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadRadius, param, err)
	}
	if r < 0 {
		return 0, fmt.Errorf("%w: %q: negative", ErrBadRadius, param)
	}

	return r, nil
}
