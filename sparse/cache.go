// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/lvsparse/ccs"
	"github.com/katalvlaran/lvsparse/direct"
)

// factorState is the depth of the cached factorization.
type factorState int

const (
	stateNone     factorState = iota // nothing cached
	stateSymbolic                    // ordering and pattern analysis
	stateNumeric                     // plus numeric factors
)

// CacheStats counts factorization work done on behalf of a Matrix.
type CacheStats struct {
	SymbolicBuilds int
	NumericBuilds  int
}

// factorCache holds the direct-solver artifacts of one Matrix.
// Structural edits drop everything; value edits drop the numeric factors.
type factorCache struct {
	state     factorState
	symmetric bool
	pivotTol  float64

	ldlSym *direct.Symbolic
	luSym  *direct.LUSymbolic
	factor direct.Factor

	stats CacheStats
}

func (c *factorCache) invalidateTopology() {
	if c.state != stateNone {
		tracer().Debugf("factor cache: topology changed, dropping analysis")
	}
	c.state = stateNone
	c.ldlSym, c.luSym, c.factor = nil, nil, nil
}

func (c *factorCache) invalidateValues() {
	if c.state == stateNumeric {
		tracer().Debugf("factor cache: values changed, dropping numeric factors")
		c.state = stateSymbolic
		c.factor = nil
	}
}

// ensureCurrent brings the cache to stateNumeric for m on the requested
// path and returns the factor. A path switch discards everything; a pivot
// tolerance change on the LU path discards the numeric factors. A failed
// numeric phase leaves the symbolic analysis cached.
func (c *factorCache) ensureCurrent(m *Matrix, symmetric bool, settings direct.Settings) (direct.Factor, error) {
	if c.state != stateNone && c.symmetric != symmetric {
		c.invalidateTopology()
	}
	if c.state == stateNumeric && !symmetric && c.pivotTol != settings.PivotTolerance {
		c.invalidateValues()
	}
	if c.state == stateNumeric {
		return c.factor, nil
	}

	a := m.ToCCS()
	if c.state == stateNone {
		if err := c.analyze(a, symmetric); err != nil {
			return nil, err
		}
	}

	var f direct.Factor
	var err error
	if symmetric {
		f, err = direct.FactorLDL(a, c.ldlSym)
	} else {
		f, err = direct.FactorLU(a, c.luSym, settings)
	}
	if err != nil {
		tracer().Errorf("factor cache: numeric factorization failed: %v", err)
		return nil, err
	}
	c.stats.NumericBuilds++
	c.factor = f
	c.pivotTol = settings.PivotTolerance
	c.state = stateNumeric
	tracer().Debugf("factor cache: numeric factors built (symmetric=%t)", symmetric)

	return f, nil
}

func (c *factorCache) analyze(a *ccs.Matrix, symmetric bool) error {
	var err error
	if symmetric {
		c.ldlSym, err = direct.AnalyzeLDL(a)
	} else {
		c.luSym, err = direct.AnalyzeLU(a)
	}
	if err != nil {
		return err
	}
	c.symmetric = symmetric
	c.stats.SymbolicBuilds++
	c.state = stateSymbolic
	tracer().Debugf("factor cache: symbolic analysis built (symmetric=%t)", symmetric)

	return nil
}

// CacheStats reports how many symbolic and numeric factorizations this
// matrix has built. Copies start from zero.
func (m *Matrix) CacheStats() CacheStats { return m.cache.stats }
