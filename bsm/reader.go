package bsm

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/cwrussell/bioscreen"
	"github.com/cwrussell/bioscreen/plate"
)

// TimeColumn is the required header naming the time column of an export.
const TimeColumn = "Time"

// ReadOptions controls how an export is decoded and parsed.
type ReadOptions struct {
	// Sep is the field delimiter. Zero means sniff it from the data.
	Sep rune

	// SkipRows is the number of leading rows before the header row. Native
	// .bsm exports carry two.
	SkipRows int

	// Encoding names the source text encoding; see the bioscreen package
	// constants. Native .bsm exports are UTF-16-LE.
	Encoding string
}

// DefaultReadOptions are the settings for a native .bsm export.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		Sep:      ',',
		SkipRows: 2,
		Encoding: bioscreen.EncodingUTF16LE,
	}
}

// Load reads the export at path.
func Load(path string, opts ReadOptions) (*RawTable, error) {
	f, err := os.Open(bioscreen.ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	out, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}

// Read parses an export from r. The header row (after any skipped leading
// rows) must contain a column named "Time"; every column whose header is a
// positive integer becomes a well column, and any other column is ignored.
func Read(r io.Reader, opts ReadOptions) (*RawTable, error) {
	decoded, err := bioscreen.DecodeReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, pfx.Err(err)
	}

	sep := opts.Sep
	if sep == 0 {
		sep = bioscreen.DetermineDelimiter(bytes.NewReader(data))
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	out := &RawTable{Wells: make(map[plate.WellIndex][]float64)}

	var timeCol int
	wellCols := make(map[int]plate.WellIndex)

	for i := 0; ; i++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		if i < opts.SkipRows {
			continue
		}

		if i == opts.SkipRows {
			timeCol, wellCols, err = readHeader(record)
			if err != nil {
				return nil, err
			}
			continue
		}

		if timeCol >= len(record) {
			return nil, fmt.Errorf("data row %d is missing the time column", i+1)
		}
		out.Times = append(out.Times, strings.TrimSpace(record[timeCol]))

		for col, well := range wellCols {
			value := math.NaN()
			if col < len(record) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64); err == nil {
					value = v
				}
			}
			out.Wells[well] = append(out.Wells[well], value)
		}
	}

	if len(out.Times) == 0 {
		return nil, fmt.Errorf("export holds no data rows")
	}

	return out, nil
}

func readHeader(record []string) (timeCol int, wellCols map[int]plate.WellIndex, err error) {
	timeCol = -1
	wellCols = make(map[int]plate.WellIndex)
	seen := make(map[plate.WellIndex]int)

	for col, name := range record {
		name = strings.TrimSpace(name)

		if name == TimeColumn {
			if timeCol >= 0 {
				return 0, nil, fmt.Errorf("header names the %s column more than once", TimeColumn)
			}
			timeCol = col
			continue
		}

		// Numeric headers are well columns; anything else is ignored.
		if n, err := strconv.Atoi(name); err == nil && n > 0 {
			well := plate.WellIndex(n)
			if prev, dup := seen[well]; dup {
				return 0, nil, fmt.Errorf("well %d appears as both column %d and column %d", n, prev+1, col+1)
			}
			seen[well] = col
			wellCols[col] = well
		}
	}

	if timeCol < 0 {
		return 0, nil, fmt.Errorf("header is missing the required %q column", TimeColumn)
	}

	return timeCol, wellCols, nil
}
