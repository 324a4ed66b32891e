// Package plate describes the layout of a Bioscreen run: which wells belong
// to which sample, and which samples belong to which experimental group. A
// Configuration is built once, eagerly validated, and then consumed by the
// summary package.
package plate

import (
	"fmt"
)

// WellIndex identifies one physical well on the plate. Indices are positive
// and correspond to the numeric column headers of the raw data export.
type WellIndex int

// Sample is a named replicate set backed by one or more wells.
type Sample struct {
	Name  string
	Wells []WellIndex
}

// Group is one experimental condition. Blank, when non-empty, holds the
// wells whose mean reading is subtracted from every sample in the group at
// each timepoint. Samples preserves declaration order, which fixes the
// column order of the summary table.
type Group struct {
	Name    string
	Blank   []WellIndex
	Samples []Sample
}

// Sample returns the wells backing the named sample within the group.
func (g Group) Sample(name string) ([]WellIndex, bool) {
	for _, s := range g.Samples {
		if s.Name == name {
			return s.Wells, true
		}
	}

	return nil, false
}

// Configuration is an ordered list of groups with pairwise-distinct names.
type Configuration []Group

// GroupNames returns the group names in declaration order.
func (c Configuration) GroupNames() []string {
	out := make([]string, 0, len(c))
	for _, g := range c {
		out = append(out, g.Name)
	}

	return out
}

// BlankName is the sample name that the builder entry points treat as the
// group's blank baseline rather than as an ordinary sample.
const BlankName = "blank"

// ConfigurationError indicates a malformed or inconsistent group, sample, or
// well declaration. It is raised at build time; no partial Configuration is
// ever returned.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func configErrorf(format string, args ...interface{}) error {
	return ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// Wells returns the consecutive well indices from a through b, inclusive.
func Wells(a, b int) []WellIndex {
	if b < a {
		return nil
	}

	out := make([]WellIndex, 0, b-a+1)
	for i := a; i <= b; i++ {
		out = append(out, WellIndex(i))
	}

	return out
}

func validate(c Configuration) error {
	seen := make(map[string]struct{})
	for _, g := range c {
		if g.Name == "" {
			return configErrorf("group with empty name")
		}
		if _, dup := seen[g.Name]; dup {
			return configErrorf("group name %s present more than once in group names: %v", g.Name, c.GroupNames())
		}
		seen[g.Name] = struct{}{}

		names := make(map[string]struct{})
		for _, s := range g.Samples {
			if s.Name == "" {
				return configErrorf("group %s contains a sample with an empty name", g.Name)
			}
			if _, dup := names[s.Name]; dup {
				return configErrorf("group %s declares sample %s more than once", g.Name, s.Name)
			}
			names[s.Name] = struct{}{}

			if len(s.Wells) == 0 {
				return configErrorf("group %s sample %s has no wells", g.Name, s.Name)
			}
		}
	}

	return nil
}
