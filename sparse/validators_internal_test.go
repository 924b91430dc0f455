// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFlat_Bounds(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		idx        []int
		want       error
	}{
		{"InRange", 3, 4, []int{0, 5, 11}, nil},
		{"PastEnd", 3, 4, []int{12}, ErrOutOfRange},
		{"Negative", 3, 4, []int{-1}, ErrOutOfRange},
		{"ZeroCols", 3, 0, []int{0}, ErrOutOfRange},
		// rows*cols wraps to 0 here; every index below is still valid.
		{"ProductWrapsToZero", 4, math.MaxInt/2 + 1, []int{0, 5, math.MaxInt}, nil},
		// rows*cols wraps negative.
		{"ProductWrapsNegative", 2, math.MaxInt/2 + 1, []int{math.MaxInt}, nil},
		{"HugeShapePastEnd", 1, math.MaxInt/2 + 1, []int{math.MaxInt/2 + 1}, ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateFlat(tc.rows, tc.cols, tc.idx, make([]float64, len(tc.idx)))
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}

	require.ErrorIs(t, validateFlat(2, 2, []int{0}, nil), ErrDimensionMismatch)
}
