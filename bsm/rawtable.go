// Package bsm loads raw well readings from Bioscreen exports, both the
// native UTF-16-LE .bsm format and plain delimited re-exports. The loaded
// RawTable is the wide input to the summary package: one row per timepoint,
// one column per well.
package bsm

import (
	"sort"

	"github.com/cwrussell/bioscreen/plate"
)

// RawTable holds one instrument run. Times is the raw "HH:MM:SS" time
// column, row-aligned with every well column. A reading that was blank or
// unparseable in the export is stored as NaN.
type RawTable struct {
	Times []string
	Wells map[plate.WellIndex][]float64
}

// Rows returns the number of timepoints.
func (t *RawTable) Rows() int {
	return len(t.Times)
}

// Column returns the readings for one well, or false if the well was not
// present in the export.
func (t *RawTable) Column(w plate.WellIndex) ([]float64, bool) {
	col, ok := t.Wells[w]
	return col, ok
}

// WellIndices returns the well columns present in the table, ascending.
func (t *RawTable) WellIndices() []plate.WellIndex {
	out := make([]plate.WellIndex, 0, len(t.Wells))
	for w := range t.Wells {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
