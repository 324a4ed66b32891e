package summary

import (
	"log"
	"strings"
)

// Series is one selected line for graphing: a label plus row-aligned x and
// y values.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Select picks the table columns to graph, preserving table order. With a
// sample filter, only columns whose full label is listed are kept. With a
// group filter (and no sample filter), only columns whose label prefix
// before the separator is listed are kept. When both filters are given the
// sample filter wins. Filter entries that match nothing produce warnings,
// never errors; with no filters at all, every column is selected.
func Select(t *Table, groups, samples []string) []Series {
	if len(groups) > 0 && len(samples) > 0 {
		log.Println("Warning. Both group and sample filters were given. Using the sample filter.")
		groups = nil
	}

	switch {
	case len(samples) > 0:
		return selectSamples(t, samples)
	case len(groups) > 0:
		return selectGroups(t, groups)
	}

	out := make([]Series, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, Series{Label: c.Label, X: t.Time, Y: c.Values})
	}

	return out
}

func selectSamples(t *Table, samples []string) []Series {
	wanted := make(map[string]struct{}, len(samples))
	for _, s := range samples {
		wanted[s] = struct{}{}
	}

	var out []Series
	kept := make(map[string]struct{})

	for _, c := range t.Columns {
		if _, ok := wanted[c.Label]; !ok {
			continue
		}
		kept[c.Label] = struct{}{}
		out = append(out, Series{Label: c.Label, X: t.Time, Y: c.Values})
	}

	for _, s := range samples {
		if _, ok := kept[s]; !ok {
			log.Printf("Warning. Sample %s not found\n", s)
		}
	}

	return out
}

func selectGroups(t *Table, groups []string) []Series {
	wanted := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		wanted[g] = struct{}{}
	}

	var out []Series
	found := make(map[string]struct{})

	for _, c := range t.Columns {
		group := strings.SplitN(c.Label, Separator, 2)[0]
		if _, ok := wanted[group]; !ok {
			continue
		}
		found[group] = struct{}{}
		out = append(out, Series{Label: c.Label, X: t.Time, Y: c.Values})
	}

	for _, g := range groups {
		if _, ok := found[g]; !ok {
			log.Printf("Warning. Group %s not found\n", g)
		}
	}

	return out
}
