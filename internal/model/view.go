package model

import (
	"fmt"
	"math"
	"strings"
)

const (
	barFilled = "█"
	barEmpty  = "░"
)

func (m *Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Memory Information"))
	b.WriteRune('\n')

	for i, c := range m.monitor.Snapshot() {
		label := normalStyle.Render("  " + c.Name)
		if i == m.Cursor {
			label = selectedStyle.Render("> " + c.Name)
		}
		b.WriteString(label)
		b.WriteString(renderBar(c.Range.Fraction(), m.barWidth))
		b.WriteString(numericStyle.Render(fmt.Sprintf("%s / %s", c.Current, c.Highest)))
		b.WriteRune('\n')
	}

	if m.Message != "" {
		b.WriteString(messageStyle.Render(m.Message))
		b.WriteRune('\n')
	}

	b.WriteRune('\n')
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n(↑/↓ or j/k to move, d/w to select, enter for details, q to quit)\n")

	return b.String()
}

func (m *Model) status() string {
	stats := m.monitor.Stats()
	s := "waiting for the first sample"
	if !stats.LastRead.IsZero() {
		s = fmt.Sprintf("updated %s, every %s", stats.LastRead.Format("15:04:05"), m.interval)
	}
	if failed := stats.ReadFailures + stats.CounterFailures; failed > 0 {
		s += fmt.Sprintf(", failures: %d", failed)
	}
	if stats.LastProblem != "" {
		s += "\n" + stats.LastProblem
	}
	return s
}

// renderBar draws a level bar filled to fraction, which is clamped to [0, 1].
func renderBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(fraction * float64(width)))
	return barFilledStyle.Render(strings.Repeat(barFilled, filled)) +
		barEmptyStyle.Render(strings.Repeat(barEmpty, width-filled))
}
