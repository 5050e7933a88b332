// Package tui implements the interactive scan console: press a key to
// scan, watch the verdict and alarm level update in place.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sweeney/ghost-detector/internal/scan"
)

// Run launches the interactive scan console. It blocks until the user quits.
func Run(scanner *scan.Scanner) error {
	p := tea.NewProgram(initModel(scanner), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// ── Color palette ────────────────────────────────────────────────────

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Background(lipgloss.Color("17")).
			Padding(0, 1).
			Bold(true)
	styleGhost  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleAlarm  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	styleFooter = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("235")).Padding(0, 1)
)

// logLines is how many past scan summaries stay on screen.
const logLines = 8

// ── Model ────────────────────────────────────────────────────────────

type model struct {
	scanner *scan.Scanner
	last    *scan.Output
	history []string
	scans   int
	ghosts  int
	width   int
	err     error
}

type scanMsg struct {
	out scan.Output
	err error
}

func initModel(scanner *scan.Scanner) model {
	return model{scanner: scanner}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) doScan() tea.Cmd {
	return func() tea.Msg {
		out, err := m.scanner.Scan(context.Background())
		return scanMsg{out: out, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", " ", "s":
			return m, m.doScan()
		}

	case scanMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		out := msg.out
		m.last = &out
		m.scans++
		if out.Result.Analysis.Ghost {
			m.ghosts++
		}
		m.history = append(m.history, summarize(out))
		if len(m.history) > logLines {
			m.history = m.history[len(m.history)-logLines:]
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

func summarize(out scan.Output) string {
	verdict := scan.VerdictNoGhost
	if out.Result.Analysis.Ghost {
		verdict = scan.VerdictGhost
	}
	return fmt.Sprintf("%s  emf=%d temp=%.2f motion=%t p=%.1f%%  %s",
		out.Result.Timestamp.Format(time.TimeOnly),
		out.Result.Reading.EMF,
		out.Result.Reading.Temperature,
		out.Result.Reading.Motion,
		out.Result.Analysis.Probability,
		verdict)
}

// ── View ─────────────────────────────────────────────────────────────

func (m model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("👻 Ghost Detector") + "\n\n")

	if m.err != nil {
		b.WriteString(styleGhost.Render(fmt.Sprintf("sensor error: %v", m.err)) + "\n\n")
	}

	if m.last == nil {
		b.WriteString(styleDim.Render("No scans yet. Press enter to scan.") + "\n")
	} else {
		r := m.last.Result.Reading
		a := m.last.Result.Analysis

		b.WriteString(styleLabel.Render(scan.FormatStatus(r, a.Ghost)))
		if a.Ghost {
			b.WriteString(styleGhost.Render(scan.Notification) + "\n")
		}
		b.WriteString("\n")

		b.WriteString(styleLabel.Render(fmt.Sprintf("Probability: %.1f%%  Activity: %s", a.Probability, a.ActivityLevel)))
		if a.GhostType != "" {
			b.WriteString(styleLabel.Render("  Type: " + a.GhostType))
		}
		b.WriteString("\n")
		b.WriteString(styleAlarm.Render("Alarm: "+m.last.Level.String()) + "\n")

		for _, rec := range a.Recommendations {
			b.WriteString(styleDim.Render("• "+rec) + "\n")
		}
	}

	b.WriteString("\n" + styleDim.Render(fmt.Sprintf("scans: %d  ghosts: %d", m.scans, m.ghosts)) + "\n")

	if len(m.history) > 0 {
		b.WriteString("\n")
		for _, line := range m.history {
			b.WriteString(styleDim.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + styleFooter.Render("enter/space: scan · q: quit") + "\n")
	return b.String()
}
