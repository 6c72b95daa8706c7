package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Pulse animation for the header while a batch runs.
type pulseTickMsg time.Time

func pulseTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return pulseTickMsg(t)
	})
}

// renderPulseTitle renders text as a wave of green light moving left to right.
// Deep forest green (#1a3a24) -> bright emerald (#4ade80).
func renderPulseTitle(text string, frame int) string {
	n := len(text)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	t := float64(frame)
	for i := 0; i < n; i++ {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		v := math.Sin(t*0.1-x*3.0)*0.5 + 0.5
		v = v*0.75 + 0.25

		r := clampByte(26 + v*(74-26))
		g := clampByte(58 + v*(222-58))
		bl := clampByte(36 + v*(128-36))

		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, bl))).
			Render(string(text[i])))
	}
	return b.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34d474"))

	skipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	barFullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1e1e2a"))
)

// renderBar draws a width-cell progress bar for done out of total.
func renderBar(done, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	return barFullStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// renderHelp renders "key label" pairs separated by two spaces.
func renderHelp(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, helpKeyStyle.Render(pairs[i])+" "+helpLabelStyle.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
