package model

import (
	time "time"

	tea "github.com/charmbracelet/bubbletea"
)

// Init takes the first sample before anything is rendered, then schedules
// the next poll.
func (m *Model) Init() tea.Cmd {
	m.monitor.Poll()
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.barWidth = bound(msg.Width-labelColumns, minBarWidth, msg.Width)
	case tickMsg:
		// The next tick is only armed once this poll has finished, so
		// cycles never overlap.
		m.monitor.Poll()
		if m.details {
			m.Message = m.describeSelected()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.Quitting = true
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "d":
		m.selectCounter(0)
	case "w":
		m.selectCounter(1)
	case "enter", " ":
		m.toggleDetails()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.Cursor = bound(m.Cursor+delta, 0, len(m.monitor.Snapshot())-1)
	if m.details {
		m.Message = m.describeSelected()
	}
}

func bound(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
