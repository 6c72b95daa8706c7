// Package tui renders an interactive progress view for a vaccination batch.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/chipvax/internal/batch"
)

// recentLimit caps the result lines kept on screen.
const recentLimit = 8

// writeClipboard is a test seam for clipboard.WriteAll.
var writeClipboard = clipboard.WriteAll

// now is a test seam for time.Now.
var now = time.Now

// ResultMsg reports one processed chip.
type ResultMsg batch.Result

// DoneMsg reports the end of the batch.
type DoneMsg batch.Report

// Progress is the bubbletea model for a running batch.
type Progress struct {
	title  string
	total  int
	cancel context.CancelFunc

	processed int
	succeeded int
	notFound  int
	failed    int
	recent    []batch.Result

	report   *batch.Report
	stopping bool
	status   string
	started  time.Time
	elapsed  time.Duration
	width    int
	frame    int
}

// NewProgress creates the view for a batch of total chips. cancel is called
// when the user interrupts the run; it may be nil.
func NewProgress(title string, total int, cancel context.CancelFunc) Progress {
	return Progress{
		title:   title,
		total:   total,
		cancel:  cancel,
		started: now(),
		width:   80,
	}
}

// Report returns the final batch report, or nil while the batch is running.
func (m Progress) Report() *batch.Report {
	return m.report
}

func (m Progress) Init() tea.Cmd {
	return pulseTickCmd()
}

func (m Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case pulseTickMsg:
		if m.report != nil {
			return m, nil
		}
		m.frame++
		return m, pulseTickCmd()

	case ResultMsg:
		res := batch.Result(msg)
		m.processed++
		switch res.Outcome {
		case batch.OutcomeSucceeded:
			m.succeeded++
		case batch.OutcomeNotFound:
			m.notFound++
		case batch.OutcomeFailed:
			m.failed++
		}
		m.recent = append(m.recent, res)
		if len(m.recent) > recentLimit {
			m.recent = m.recent[len(m.recent)-recentLimit:]
		}

	case DoneMsg:
		report := batch.Report(msg)
		m.report = &report
		m.elapsed = now().Sub(m.started)
		if report.Cancelled {
			return m, tea.Quit
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Progress) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.report == nil {
		// Running: only interruption is accepted. The model quits once the
		// runner reports back with the partial result.
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if !m.stopping && m.cancel != nil {
				m.cancel()
			}
			m.stopping = true
			m.status = "stopping after the current chip…"
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc", "enter", "ctrl+c":
		return m, tea.Quit
	case "c":
		chips := m.report.Unsuccessful()
		if len(chips) == 0 {
			m.status = "nothing to copy"
			return m, nil
		}
		if err := writeClipboard(strings.Join(chips, "\n")); err != nil {
			m.status = "clipboard unavailable: " + err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("copied %d chip numbers", len(chips))
	}
	return m, nil
}

func (m Progress) View() string {
	var b strings.Builder

	if m.report == nil {
		b.WriteString(renderPulseTitle(m.title, m.frame))
	} else {
		b.WriteString(titleStyle.Render(m.title))
	}
	b.WriteString("\n\n")

	barWidth := m.width - 16
	if barWidth > 48 {
		barWidth = 48
	}
	fmt.Fprintf(&b, "  %s %s\n\n", renderBar(m.processed, m.total, barWidth),
		dimStyle.Render(fmt.Sprintf("%d/%d", m.processed, m.total)))

	fmt.Fprintf(&b, "  %s  %s  %s\n\n",
		okStyle.Render(fmt.Sprintf("✓ %d vaccinated", m.succeeded)),
		skipStyle.Render(fmt.Sprintf("? %d not found", m.notFound)),
		failStyle.Render(fmt.Sprintf("✗ %d failed", m.failed)))

	for _, res := range m.recent {
		b.WriteString("  " + m.renderResult(res) + "\n")
	}
	if len(m.recent) > 0 {
		b.WriteString("\n")
	}

	if m.report != nil {
		fmt.Fprintf(&b, "  %s\n", metaStyle.Render(fmt.Sprintf("run %s · %s", m.report.RunID, formatElapsed(m.elapsed))))
	}
	if m.status != "" {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(m.status))
	}
	b.WriteString("\n  ")
	if m.report == nil {
		b.WriteString(renderHelp("ctrl+c", "stop"))
	} else {
		b.WriteString(renderHelp("c", "copy unvaccinated chips", "q", "quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Progress) renderResult(res batch.Result) string {
	chip := normalStyle.Render(fmt.Sprintf("%-16s", truncStr(res.Chip, 16)))
	switch res.Outcome {
	case batch.OutcomeSucceeded:
		return okStyle.Render("✓ ") + chip + " " + metaStyle.Render(fmt.Sprintf("animal %d", res.AnimalID))
	case batch.OutcomeNotFound:
		return skipStyle.Render("? ") + chip + " " + metaStyle.Render("not found")
	default:
		detail := ""
		if res.Err != nil {
			detail = res.Err.Error()
		}
		return failStyle.Render("✗ ") + chip + " " + metaStyle.Render(truncStr(detail, max(m.width-24, 10)))
	}
}
