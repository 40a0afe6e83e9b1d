package model

import (
	"time"

	"meminfo/internal/monitor"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultBarWidth = 40
	minBarWidth     = 10

	// room taken by the name and numeric columns around a bar
	labelColumns = 40
)

type tickMsg time.Time

type Model struct {
	Cursor   int
	Message  string
	Quitting bool

	monitor  *monitor.Monitor
	interval time.Duration
	barWidth int
	details  bool
}

func NewModel(mon *monitor.Monitor, interval time.Duration) tea.Model {
	return &Model{
		monitor:  mon,
		interval: interval,
		barWidth: defaultBarWidth,
	}
}
