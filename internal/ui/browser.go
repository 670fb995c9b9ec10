// Package ui provides the interactive body browser using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/stargen/internal/celestial"
	"github.com/litescript/stargen/internal/logging"
	"github.com/litescript/stargen/internal/report"
	"github.com/litescript/stargen/internal/version"
)

// maxHistory is how many previous bodies the footer lists.
const maxHistory = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Model is the root Bubble Tea model for the browser.
type Model struct {
	gen      *celestial.Generator
	renderer *report.Renderer
	logger   *logging.Logger

	name string
	kind celestial.Kind

	// -1 means random; otherwise an index into StarClasses / PlanetTypes.
	classIdx  int
	planetIdx int

	current celestial.Body
	history []string
	count   int

	width int
}

// New creates a browser model and generates the first body.
func New(gen *celestial.Generator, renderer *report.Renderer, logger *logging.Logger, name string, kind celestial.Kind) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	m := Model{
		gen:       gen,
		renderer:  renderer,
		logger:    logger.With("ui"),
		name:      name,
		kind:      kind,
		classIdx:  -1,
		planetIdx: -1,
	}
	m.regenerate()
	return m
}

// Current returns the body on screen.
func (m Model) Current() celestial.Body {
	return m.current
}

// Count returns how many bodies have been generated.
func (m Model) Count() int {
	return m.count
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r", " ", "enter":
			m.regenerate()
		case "tab":
			m.kind = (m.kind + 1) % 3
			m.regenerate()
		case "c":
			m.kind = celestial.KindStar
			m.classIdx = cycle(m.classIdx, len(celestial.StarClasses))
			m.regenerate()
		case "t":
			m.kind = celestial.KindPlanet
			m.planetIdx = cycle(m.planetIdx, len(celestial.PlanetTypes))
			m.regenerate()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// cycle steps through -1 (random), 0 .. n-1, then back to -1.
func cycle(idx, n int) int {
	idx++
	if idx >= n {
		return -1
	}
	return idx
}

func (m *Model) request() celestial.Request {
	req := celestial.Request{Kind: m.kind, Name: m.name}
	if m.classIdx >= 0 {
		c := celestial.StarClasses[m.classIdx]
		req.Class = &c
	}
	if m.planetIdx >= 0 {
		t := celestial.PlanetTypes[m.planetIdx]
		req.PlanetType = &t
	}
	return req
}

func (m *Model) regenerate() {
	if m.current != nil {
		m.history = append(m.history, summary(m.current))
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
	}
	m.current = m.gen.Generate(m.request())
	m.count++
	m.logger.Debug("generated %s #%d", m.current.Kind(), m.count)
}

// summary is the one-line history entry for a body.
func summary(b celestial.Body) string {
	switch v := b.(type) {
	case celestial.Star:
		return fmt.Sprintf("star %s (%s, %.0f K)", v.Name, v.Class, v.Temp)
	case celestial.Planet:
		return fmt.Sprintf("planet %s (%s, %.2f g)", v.Name, v.Type, v.RelativeToEarth().Gravity)
	case celestial.Satellite:
		return fmt.Sprintf("satellite %s (%.0f km)", v.Name, v.Diameter)
	default:
		return b.Title()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(version.String()))
	b.WriteString("\n")
	b.WriteString(m.renderSelectors())
	b.WriteString("\n\n")

	body, err := m.renderer.Render(m.current)
	if err != nil {
		b.WriteString(errorStyle.Render("Error: " + err.Error()))
	} else {
		b.WriteString(body)
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

func (m Model) renderSelectors() string {
	kinds := []celestial.Kind{celestial.KindStar, celestial.KindPlanet, celestial.KindSatellite}
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		label := " " + k.String() + " "
		if k == m.kind {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, selectorStyle.Render(label))
		}
	}

	class := "random"
	if m.classIdx >= 0 {
		class = celestial.StarClasses[m.classIdx].String()
	}
	ptype := "random"
	if m.planetIdx >= 0 {
		ptype = celestial.PlanetTypes[m.planetIdx].String()
	}

	return strings.Join(parts, " ") +
		dimStyle.Render(fmt.Sprintf("   class: %s   type: %s", class, ptype))
}

func (m Model) renderFooter() string {
	var b strings.Builder
	if len(m.history) > 0 {
		b.WriteString(dimStyle.Render("Previous:"))
		b.WriteString("\n")
		for i := len(m.history) - 1; i >= 0; i-- {
			b.WriteString(dimStyle.Render("  " + m.history[i]))
			b.WriteString("\n")
		}
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"#%d  [r]eroll  [tab] body  [c]lass  [t]ype  [q]uit", m.count)))
	return b.String()
}

// Run starts the browser in the alternate screen and blocks until quit.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
