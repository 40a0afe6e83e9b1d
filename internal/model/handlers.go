package model

import (
	"fmt"
	"strconv"
)

func (m *Model) selectCounter(index int) {
	m.Cursor = index
	m.details = true
	m.Message = m.describeSelected()
}

func (m *Model) toggleDetails() {
	m.details = !m.details
	if m.details {
		m.Message = m.describeSelected()
	} else {
		m.Message = ""
	}
}

func (m *Model) describeSelected() string {
	counters := m.monitor.Snapshot()
	if m.Cursor < 0 || m.Cursor >= len(counters) {
		return "No counter selected"
	}
	c := counters[m.Cursor]
	return fmt.Sprintf("%s: %s %s now, %s %s highest (%s / %s)",
		c.Name,
		strconv.FormatFloat(c.Range.Current, 'f', -1, 64),
		c.Range.Units,
		strconv.FormatFloat(c.Range.Highest, 'f', -1, 64),
		c.Range.Units,
		c.Current,
		c.Highest)
}
