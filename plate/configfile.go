package plate

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// configRow is one data line of a template configuration file: three
// tab-delimited fields naming the group, the sample (or "blank"), and the
// wells backing it.
type configRow struct {
	Group  string `csv:"group"`
	Sample string `csv:"sample"`
	Wells  string `csv:"wells"`
}

// LoadFile reads a template configuration file. The file is tab-delimited
// UTF-8 text with #-prefixed comment lines. Each data line holds exactly
// three fields: group, sample-or-"blank", and a wells field that is either
// an inclusive range a-b or a comma-separated list of well numbers.
// Malformed lines are fatal.
func LoadFile(path string) (Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return ReadConfig(f)
}

// ReadConfig parses template configuration lines from r. See LoadFile for
// the format.
func ReadConfig(in io.Reader) (Configuration, error) {

	// Tell gocsv to use tab as the delimiter and to skip comment lines
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		r.Comment = '#'
		r.FieldsPerRecord = 3
		r.LazyQuotes = true
		return r
	})

	rows := []*configRow{}
	if err := gocsv.UnmarshalWithoutHeaders(in, &rows); err != nil {
		return nil, configErrorf("unable to parse template configuration: %v", err)
	}

	if len(rows) == 0 {
		return nil, configErrorf("template configuration holds no data lines")
	}

	var out Configuration
	position := make(map[string]int)

	for _, row := range rows {
		groupName := Sanitize(row.Group)

		i, known := position[groupName]
		if !known {
			i = len(out)
			position[groupName] = i
			out = append(out, Group{Name: groupName})
		}

		wells, err := parseWellSpec(row.Wells)
		if err != nil {
			return nil, err
		}

		sampleName := Sanitize(row.Sample)
		if sampleName == BlankName {
			if out[i].Blank != nil {
				return nil, configErrorf("group %s declares more than one blank", groupName)
			}
			out[i].Blank = wells
			continue
		}

		out[i].Samples = append(out[i].Samples, Sample{Name: sampleName, Wells: wells})
	}

	if err := validate(out); err != nil {
		return nil, err
	}

	return out, nil
}

// parseWellSpec turns a wells field into well indices. Accepted shapes are
// an inclusive range ("31-35") or a comma-separated list ("1,2,4").
func parseWellSpec(spec string) ([]WellIndex, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, configErrorf("empty wells field")
	}

	if strings.Contains(spec, "-") {
		parts := strings.SplitN(spec, "-", 2)

		a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
		b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errA != nil || errB != nil || a < 1 || b < a {
			return nil, configErrorf("malformed well range %q", spec)
		}

		return Wells(a, b), nil
	}

	var out []WellIndex
	for _, field := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 {
			return nil, configErrorf("malformed well number %q in %q", field, spec)
		}
		out = append(out, WellIndex(n))
	}

	return out, nil
}
