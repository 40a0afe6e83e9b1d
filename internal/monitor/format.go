package monitor

import (
	units "github.com/docker/go-units"

	reader "meminfo/internal/memory"
	"meminfo/internal/tracker"
)

// Counter is a tracked counter prepared for display.
type Counter struct {
	Name  string
	Range tracker.MemRange

	// Current and Highest are human readable sizes of the range values.
	Current string
	Highest string
}

// Snapshot returns the tracked counters in display order.
func (m *Monitor) Snapshot() []Counter {
	return []Counter{
		newCounter(reader.KeyDirty, m.counts.Dirty),
		newCounter(reader.KeyWriteback, m.counts.Writeback),
	}
}

func newCounter(name string, r tracker.MemRange) Counter {
	return Counter{
		Name:    name,
		Range:   r,
		Current: HumanSize(r.Current),
		Highest: HumanSize(r.Highest),
	}
}

// HumanSize formats a value reported in kibibytes. The kernel only ever
// reports these counters in "kB", which it means as KiB.
func HumanSize(kib float64) string {
	return units.BytesSize(kib * 1024)
}
