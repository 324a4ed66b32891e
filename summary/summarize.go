package summary

import (
	"math"

	"github.com/gonum/stat"

	"github.com/cwrussell/bioscreen/bsm"
	"github.com/cwrussell/bioscreen/plate"
)

// Separator joins the group and sample portions of a summary column label.
// Note that a sample name which itself contains the separator makes the
// group list of a re-loaded summary ambiguous; see Table.Groups.
const Separator = "__"

// Label returns the summary column label for a (group, sample) pair.
func Label(group, sample string) string {
	return group + Separator + sample
}

// Summarize builds the summary table for one run: per group, the mean blank
// reading at each timepoint is subtracted from each sample's mean reading at
// that timepoint. Groups without blank wells pass their sample means through
// unaltered. Columns appear in group order, then sample order within the
// group.
//
// Wells declared in the configuration but absent from the raw table are
// excluded from their sample's mean; a sample whose wells are all absent
// summarizes to NaN at every timepoint.
func Summarize(cfg plate.Configuration, raw *bsm.RawTable, tp Timepoints) (*Table, error) {
	times, err := tp.resolve(raw)
	if err != nil {
		return nil, err
	}

	out := &Table{Time: times}

	for _, group := range cfg {

		// Mean blank reading at each timepoint, or zero when the group
		// declares no blank wells
		baseline := make([]float64, raw.Rows())
		if len(group.Blank) > 0 {
			baseline = wellMeans(raw, group.Blank)
		}

		for _, sample := range group.Samples {
			values := wellMeans(raw, sample.Wells)
			for i := range values {
				values[i] -= baseline[i]
			}

			out.Columns = append(out.Columns, Column{
				Label:  Label(group.Name, sample.Name),
				Values: values,
			})
		}
	}

	return out, nil
}

// wellMeans computes the per-timepoint mean across the given wells. Wells
// missing from the table, and NaN readings within present wells, are left
// out of the mean; a timepoint with no usable reading at all is NaN.
func wellMeans(raw *bsm.RawTable, wells []plate.WellIndex) []float64 {
	columns := make([][]float64, 0, len(wells))
	for _, w := range wells {
		if col, ok := raw.Column(w); ok {
			columns = append(columns, col)
		}
	}

	out := make([]float64, raw.Rows())
	row := make([]float64, 0, len(columns))

	for i := range out {
		row = row[:0]
		for _, col := range columns {
			if v := col[i]; !math.IsNaN(v) {
				row = append(row, v)
			}
		}

		if len(row) == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Mean(row, nil)
	}

	return out
}
