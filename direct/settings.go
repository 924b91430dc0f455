// SPDX-License-Identifier: MIT

package direct

// DefaultPivotTolerance is the LU diagonal-preference factor: the natural
// diagonal entry is chosen as pivot whenever its magnitude is at least
// DefaultPivotTolerance times the largest candidate in the column.
const DefaultPivotTolerance = 0.1

// Settings holds tuning for the numeric factorizations.
type Settings struct {
	// PivotTolerance is the LU diagonal-preference factor in (0, 1].
	// 1 selects the largest candidate unless the diagonal ties it; smaller
	// values keep the diagonal more often, trading stability for fill.
	// Zero means DefaultPivotTolerance.
	PivotTolerance float64
}

// DefaultSettings returns Settings with every field at its default.
func DefaultSettings() Settings {
	return Settings{PivotTolerance: DefaultPivotTolerance}
}

func defaultSettings(s *Settings) {
	if s.PivotTolerance == 0 {
		s.PivotTolerance = DefaultPivotTolerance
	}
}
