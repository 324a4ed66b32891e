package plate

// DefaultReplicates is the number of wells assigned to each sample when no
// explicit well lists are supplied.
const DefaultReplicates = 4

type buildOptions struct {
	replicates int
	wells      [][]WellIndex
}

// Option adjusts well assignment for the builder entry points.
type Option func(*buildOptions)

// WithReplicates sets the number of wells auto-assigned to each sample.
func WithReplicates(n int) Option {
	return func(o *buildOptions) { o.replicates = n }
}

// WithWells supplies explicit well lists instead of auto-assigning
// consecutive blocks. The outer slice must contain one entry per sample
// slot, ordered group-major then sample-major.
func WithWells(wells [][]WellIndex) Option {
	return func(o *buildOptions) { o.wells = wells }
}

// BuildUniform builds a Configuration in which every group holds the same
// sample list. A sample named "blank" becomes the group's blank baseline.
//
// With two groups, samples ["blank", "WT", "KO"], and the default four
// replicates, wells 1-4 back the first group's blank, 5-8 its WT, and so on
// through well 24.
func BuildUniform(groups, samples []string, opts ...Option) (Configuration, error) {
	perGroup := make([][]string, len(groups))
	for i := range groups {
		perGroup[i] = samples
	}

	return BuildPerGroup(groups, perGroup, opts...)
}

// BuildPerGroup builds a Configuration from one sample list per group,
// positionally matched to the groups slice. A sample named "blank" becomes
// its group's blank baseline.
//
// When no explicit wells are given, well numbers are assigned as contiguous
// blocks of the replicate count, starting at well 1, walking the sample
// slots group-major then sample-major.
func BuildPerGroup(groups []string, samples [][]string, opts ...Option) (Configuration, error) {
	options := buildOptions{replicates: DefaultReplicates}
	for _, opt := range opts {
		opt(&options)
	}

	if len(groups) == 0 {
		return nil, configErrorf("no groups given")
	}
	if len(groups) != len(samples) {
		return nil, configErrorf("groups and samples lists should be equal in length; groups: %v, samples: %v", groups, samples)
	}

	slots := 0
	for i, sampleList := range samples {
		if len(sampleList) == 0 {
			return nil, configErrorf("group %s has no samples", groups[i])
		}
		slots += len(sampleList)
	}

	wells := options.wells
	if wells == nil {
		if options.replicates < 1 {
			return nil, configErrorf("replicates must be at least 1, got %d", options.replicates)
		}

		wells = make([][]WellIndex, 0, slots)
		for slot := 0; slot < slots; slot++ {
			start := slot*options.replicates + 1
			wells = append(wells, Wells(start, start+options.replicates-1))
		}
	} else if len(wells) != slots {
		return nil, configErrorf("the provided list of wells has length %d, but %d well groups are needed", len(wells), slots)
	}

	out := make(Configuration, 0, len(groups))

	slot := 0
	for i, name := range groups {
		group := Group{Name: Sanitize(name)}

		for _, sampleName := range samples[i] {
			sampleName = Sanitize(sampleName)
			if len(wells[slot]) == 0 {
				return nil, configErrorf("group %s sample %s was given an empty well list", group.Name, sampleName)
			}
			if sampleName == BlankName {
				if group.Blank != nil {
					return nil, configErrorf("group %s declares more than one blank", group.Name)
				}
				group.Blank = wells[slot]
			} else {
				group.Samples = append(group.Samples, Sample{Name: sampleName, Wells: wells[slot]})
			}
			slot++
		}

		out = append(out, group)
	}

	if err := validate(out); err != nil {
		return nil, err
	}

	return out, nil
}
