package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/cwrussell/bioscreen"
)

// Column is one (group, sample) series of the summary, row-aligned with the
// table's Time column.
type Column struct {
	Label  string
	Values []float64
}

// Table is the summarized output of one run: a Time column plus one column
// per (group, sample) pair. It is built once and not modified afterwards.
type Table struct {
	Time    []float64
	Columns []Column
}

// Labels returns the non-time column labels in table order.
func (t *Table) Labels() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, c.Label)
	}

	return out
}

// Column returns the column with the given label.
func (t *Table) Column(label string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Label == label {
			return c, true
		}
	}

	return Column{}, false
}

// Groups recovers the group names from the column labels, in first-seen
// order, by taking everything before the first separator. A sample name
// that itself contains the separator cannot be recovered correctly; the
// label format does not guard against that.
func (t *Table) Groups() []string {
	var out []string
	seen := make(map[string]struct{})

	for _, c := range t.Columns {
		group := strings.SplitN(c.Label, Separator, 2)[0]
		if _, dup := seen[group]; dup {
			continue
		}
		seen[group] = struct{}{}
		out = append(out, group)
	}

	return out
}

// Write emits the table as tab-delimited text: a header row of "Time"
// followed by the column labels, then one row per timepoint. NaN cells are
// written empty. No row-index column is written.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	header := append([]string{timeLabel}, t.Labels()...)
	if err := cw.Write(header); err != nil {
		return pfx.Err(err)
	}

	record := make([]string, len(header))
	for i, tm := range t.Time {
		record[0] = formatCell(tm)
		for j, col := range t.Columns {
			record[j+1] = formatCell(col.Values[i])
		}
		if err := cw.Write(record); err != nil {
			return pfx.Err(err)
		}
	}

	cw.Flush()

	return pfx.Err(cw.Error())
}

// WriteFile writes the table to path.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(bioscreen.ExpandHome(path))
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return t.Write(f)
}

// Load reads back a summary file previously produced by WriteFile.
func Load(path string) (*Table, error) {
	f, err := os.Open(bioscreen.ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("unable to load table %s: %w", path, err)
	}
	defer f.Close()

	out, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load table %s: %w", path, err)
	}

	return out, nil
}

// ReadTable parses a written summary from r. Empty cells are read back as
// NaN; the Time column is read back verbatim in whatever unit it was
// written.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("summary holds no header row")
	}

	header := records[0]
	timeCol := -1
	for i, name := range header {
		if name == timeLabel {
			timeCol = i
			break
		}
	}
	if timeCol < 0 {
		return nil, fmt.Errorf("summary header is missing the %q column", timeLabel)
	}

	out := &Table{}
	for i, name := range header {
		if i == timeCol {
			continue
		}
		out.Columns = append(out.Columns, Column{Label: name})
	}

	for _, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("summary row has %d fields, expected %d", len(record), len(header))
		}

		tm, err := strconv.ParseFloat(record[timeCol], 64)
		if err != nil {
			return nil, fmt.Errorf("bad time value %q: %w", record[timeCol], err)
		}
		out.Time = append(out.Time, tm)

		col := 0
		for i, cell := range record {
			if i == timeCol {
				continue
			}
			out.Columns[col].Values = append(out.Columns[col].Values, parseCell(cell))
			col++
		}
	}

	return out, nil
}

const timeLabel = "Time"

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseCell(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return math.NaN()
	}

	return v
}
