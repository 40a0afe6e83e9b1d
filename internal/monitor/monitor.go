// Package monitor runs the poll cycle that keeps the tracked meminfo
// counters up to date.
package monitor

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	reader "meminfo/internal/memory"
	"meminfo/internal/tracker"
)

// MemCounts are the cache entries being tracked.
type MemCounts struct {
	// Dirty is memory waiting to get written back to the disk.
	Dirty tracker.MemRange

	// Writeback is memory actively being written back to the disk.
	Writeback tracker.MemRange
}

func NewMemCounts() MemCounts {
	return MemCounts{
		Dirty:     tracker.NewMemRange(),
		Writeback: tracker.NewMemRange(),
	}
}

// PollStats counts what happened across poll cycles.
type PollStats struct {
	Cycles          int
	ReadFailures    int
	CounterFailures int
	LastRead        time.Time

	// LastProblem describes the failures of the latest cycle, empty when it
	// went cleanly.
	LastProblem string
}

// Monitor owns the tracked counters and updates them from a Reader. It is
// driven from a single goroutine: Poll must not be called concurrently.
type Monitor struct {
	reader reader.Reader
	counts MemCounts
	stats  PollStats
	log    *slog.Logger
	now    func() time.Time
}

func NewMonitor(r reader.Reader, log *slog.Logger) *Monitor {
	if log == nil {
		log = slog.Default()
	}
	return &Monitor{
		reader: r,
		counts: NewMemCounts(),
		log:    log,
		now:    time.Now,
	}
}

// Poll runs one read-parse-update cycle. Failures are logged and leave the
// affected counters as they were.
func (m *Monitor) Poll() {
	m.stats.Cycles++
	m.stats.LastProblem = ""

	samples, err := m.reader.ReadSamples()
	if err != nil {
		m.stats.ReadFailures++
		m.log.Warn("source unavailable", "source", m.source(), "err", err)
		m.problem(fmt.Sprintf("source unavailable: %v", err))
		return
	}
	m.stats.LastRead = m.now()

	m.update(samples, reader.KeyDirty, &m.counts.Dirty)
	m.update(samples, reader.KeyWriteback, &m.counts.Writeback)
}

func (m *Monitor) update(samples reader.Samples, key string, r *tracker.MemRange) {
	entry, ok := samples.Lookup(key)
	err := r.Update(entry, ok)
	if err == nil {
		return
	}
	m.stats.CounterFailures++

	var perr *tracker.ParseError
	switch {
	case errors.As(err, &perr):
		m.log.Warn("unparseable value", "counter", key, "value", perr.Raw, "err", perr.Err)
		m.problem(fmt.Sprintf("unparseable value %q for %s", perr.Raw, key))
	case errors.Is(err, tracker.ErrCounterMissing):
		m.log.Warn("counter missing", "counter", key, "source", m.source())
		m.problem(fmt.Sprintf("%s missing from %s", key, m.source()))
	default:
		m.log.Warn("counter update failed", "counter", key, "err", err)
		m.problem(fmt.Sprintf("%s: %v", key, err))
	}
}

func (m *Monitor) problem(text string) {
	if m.stats.LastProblem != "" {
		m.stats.LastProblem += "; "
	}
	m.stats.LastProblem += text
}

func (m *Monitor) source() string {
	if s, ok := m.reader.(fmt.Stringer); ok {
		return s.String()
	}
	return "unknown"
}

// Counts returns a copy of the tracked counters.
func (m *Monitor) Counts() MemCounts {
	return m.counts
}

func (m *Monitor) Stats() PollStats {
	return m.stats
}
