package reader

import (
	"regexp"
	"strings"
)

// DefaultSourcePath is where the kernel reports live memory statistics.
const DefaultSourcePath = "/proc/meminfo"

// Keys of the meminfo lines that get tracked
const (
	KeyDirty     = "Dirty"
	KeyWriteback = "Writeback"
)

// linePattern matches a single meminfo line such as "Dirty:   1234 kB".
// The value token is left loose so a garbled number reaches conversion
// instead of vanishing as a missing counter.
var linePattern = regexp.MustCompile(`^[[:blank:]]*([[:alpha:]]+):[[:blank:]]+([^[:space:]]+)[[:blank:]]+([[:alpha:]]+)[[:blank:]]*$`)

// Sample is the raw value and unit text of one meminfo line
type Sample struct {
	Value string
	Unit  string
}

// Samples maps a meminfo key to its latest sample
type Samples map[string]Sample

// Lookup returns the sample for key, if the source reported one.
func (s Samples) Lookup(key string) (Sample, bool) {
	sample, ok := s[key]
	return sample, ok
}

// Reader provides the samples of one poll of the source
type Reader interface {
	ReadSamples() (Samples, error)
}

// Parse extracts every "<Key>: <value> <unit>" line from text. Lines that
// don't have that shape are skipped and a repeated key keeps its last value.
func Parse(text string) Samples {
	samples := make(Samples)
	for _, line := range strings.Split(text, "\n") {
		m := linePattern.FindStringSubmatch(strings.TrimSuffix(line, "\r"))
		if m == nil {
			continue
		}
		samples[m[1]] = Sample{Value: m[2], Unit: m[3]}
	}
	return samples
}
