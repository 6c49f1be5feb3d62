package dtw_test

import (
	"testing"

	"github.com/katalvlaran/cdtw/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseRadius covers absolute and percentage forms.
func TestParseRadius(t *testing.T) {
	tests := []struct {
		param string
		n     int
		want  int
	}{
		{"0", 40, 0},
		{"3", 40, 3},
		{" 7 ", 10, 7},
		{"10%", 40, 4},
		{"10%", 9, 0},
		{"25%", 10, 2},
		{"100%", 12, 12},
		{"12.5%", 16, 2},
		{"0%", 100, 0},
		{" 50 % ", 10, 5},
		{"50%", 0, 0},
	}
	for _, tc := range tests {
		got, err := dtw.ParseRadius(tc.param, tc.n)
		require.NoError(t, err, "param=%q n=%d", tc.param, tc.n)
		assert.Equal(t, tc.want, got, "param=%q n=%d", tc.param, tc.n)
	}
}

// TestParseRadius_Errors rejects malformed input with ErrBadRadius.
func TestParseRadius_Errors(t *testing.T) {
	for _, param := range []string{"", "  ", "%", "abc", "-1", "-10%", "1.5", "NaN%", "Inf%", "10%%"} {
		_, err := dtw.ParseRadius(param, 40)
		assert.ErrorIs(t, err, dtw.ErrBadRadius, "param=%q", param)
		assert.ErrorIs(t, err, dtw.ErrValidation, "param=%q", param)
	}
}

// TestParseRadius_FeedsDissimilarity: a percentage radius can exceed n only
// above 100%, which DTW then rejects.
func TestParseRadius_FeedsDissimilarity(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	r, err := dtw.ParseRadius("200%", len(a))
	require.NoError(t, err)
	assert.Equal(t, 8, r)

	_, err = dtw.Dissimilarity(a, a, r)
	assert.ErrorIs(t, err, dtw.ErrRadiusOutOfRange)
}
