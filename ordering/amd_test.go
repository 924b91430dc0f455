// SPDX-License-Identifier: MIT

package ordering_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvsparse/ccs"
	"github.com/katalvlaran/lvsparse/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromPairs builds an n×n pattern with a unit diagonal plus the given
// off-diagonal (row, col) pairs.
func fromPairs(n int, pairs [][2]int) *ccs.Matrix {
	cols := make([][]int, n)
	for j := 0; j < n; j++ {
		cols[j] = append(cols[j], j)
	}
	for _, pr := range pairs {
		cols[pr[1]] = append(cols[pr[1]], pr[0])
	}
	m := ccs.New(n, n, 0)
	for j := 0; j < n; j++ {
		sort.Ints(cols[j])
		for _, i := range cols[j] {
			m.RowIdx = append(m.RowIdx, i)
			m.Values = append(m.Values, 1)
		}
		m.ColPtr[j+1] = len(m.RowIdx)
	}

	return m
}

// fill counts the entries created when eliminating the symmetric pattern
// of m in the given order.
func fill(m *ccs.Matrix, perm []int) int {
	n := m.Cols
	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = map[int]bool{}
	}
	for j := 0; j < n; j++ {
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			if i := m.RowIdx[p]; i != j {
				adj[i][j], adj[j][i] = true, true
			}
		}
	}
	done := make([]bool, n)
	created := 0
	for _, v := range perm {
		var nb []int
		for u := range adj[v] {
			if !done[u] {
				nb = append(nb, u)
			}
		}
		for x := 0; x < len(nb); x++ {
			for y := x + 1; y < len(nb); y++ {
				if !adj[nb[x]][nb[y]] {
					adj[nb[x]][nb[y]], adj[nb[y]][nb[x]] = true, true
					created++
				}
			}
		}
		done[v] = true
	}

	return created
}

func requirePermutation(t *testing.T, perm []int, n int) {
	t.Helper()
	require.Len(t, perm, n)
	seen := make([]bool, n)
	for _, v := range perm {
		require.True(t, v >= 0 && v < n, "index %d out of range", v)
		require.False(t, seen[v], "index %d repeated", v)
		seen[v] = true
	}
}

func natural(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

func TestAMD_ZeroDimension(t *testing.T) {
	perm, err := ordering.AMD(ccs.New(0, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, perm)
}

func TestAMD_Errors(t *testing.T) {
	_, err := ordering.AMD(nil)
	require.ErrorIs(t, err, ordering.ErrNilMatrix)

	_, err = ordering.AMD(ccs.New(2, 3, 0))
	require.ErrorIs(t, err, ordering.ErrNonSquare)
}

func TestAMD_ArrowHubEliminatedLate(t *testing.T) {
	// Node 0 is coupled to every other node: eliminating it first fills
	// the whole matrix, eliminating it late creates no fill at all.
	const n = 8
	var pairs [][2]int
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{0, i}, [2]int{i, 0})
	}
	m := fromPairs(n, pairs)

	perm, err := ordering.AMD(m)
	require.NoError(t, err)
	requirePermutation(t, perm, n)
	assert.NotEqual(t, 0, perm[0])
	assert.Equal(t, 0, fill(m, perm))
	assert.Greater(t, fill(m, natural(n)), 0)
}

func TestAMD_TridiagonalNoFill(t *testing.T) {
	const n = 12
	var pairs [][2]int
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, [2]int{i, i + 1}, [2]int{i + 1, i})
	}
	m := fromPairs(n, pairs)
	perm, err := ordering.AMD(m)
	require.NoError(t, err)
	requirePermutation(t, perm, n)
	assert.Equal(t, 0, fill(m, perm))
}

func TestAMD_UnsymmetricPatternUsesBothTriangles(t *testing.T) {
	// Only the upper triangle of the arrow is stored; A+Aᵗ restores it.
	const n = 6
	var pairs [][2]int
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{0, i})
	}
	m := fromPairs(n, pairs)
	before := append([]int(nil), m.RowIdx...)

	perm, err := ordering.AMD(m)
	require.NoError(t, err)
	requirePermutation(t, perm, n)
	assert.NotEqual(t, 0, perm[0])
	assert.Equal(t, before, m.RowIdx, "input must not be mutated")
}

func TestAMD_RandomNeverWorseThanNaturalOnGrid(t *testing.T) {
	// 2-D 5-point Laplacian on a k×k grid, randomly relabelled.
	const k = 7
	n := k * k
	rnd := rand.New(rand.NewSource(3))
	label := rnd.Perm(n)
	var pairs [][2]int
	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			u := label[r*k+c]
			if c+1 < k {
				v := label[r*k+c+1]
				pairs = append(pairs, [2]int{u, v}, [2]int{v, u})
			}
			if r+1 < k {
				v := label[(r+1)*k+c]
				pairs = append(pairs, [2]int{u, v}, [2]int{v, u})
			}
		}
	}
	m := fromPairs(n, pairs)
	perm, err := ordering.AMD(m)
	require.NoError(t, err)
	requirePermutation(t, perm, n)
	assert.LessOrEqual(t, fill(m, perm), fill(m, natural(n)))
}

func TestInvert(t *testing.T) {
	p := []int{2, 0, 3, 1}
	inv := ordering.Invert(p)
	assert.Equal(t, []int{1, 3, 0, 2}, inv)
	for k := range p {
		assert.Equal(t, k, inv[p[k]])
	}
}
