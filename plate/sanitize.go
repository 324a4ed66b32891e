package plate

import (
	"regexp"
	"strings"
)

var (
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9_./-]`)
	underscoreRuns  = regexp.MustCompile(`_{2,}`)
)

// Sanitize replaces every character outside A-Z, a-z, 0-9, _, -, ., / with
// an underscore, trims leading and trailing underscores, and collapses runs
// of consecutive underscores down to one. It is applied to every group and
// sample name by every builder entry point. Idempotent.
func Sanitize(name string) string {
	scrubbed := disallowedChars.ReplaceAllString(name, "_")
	scrubbed = strings.Trim(scrubbed, "_")

	return underscoreRuns.ReplaceAllString(scrubbed, "_")
}
