// Package tui renders the portfolio in a terminal with the typewriter
// tagline animated by bubbletea ticks.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

// Model is the Bubble Tea model for the terminal preview.
type Model struct {
	profile profile.Profile
	cycler  *typewriter.Cycler
	styles  Styles

	// gen invalidates ticks scheduled before a quit.
	gen      int
	quitting bool
	width    int
}

// Compile-time interface compliance check
var _ tea.Model = (*Model)(nil)

type tickMsg struct{ gen int }

// New builds a model cycling through p's taglines.
func New(p profile.Profile, timing typewriter.Timing) (*Model, error) {
	cycler, err := typewriter.NewWithTiming(p.Taglines, timing)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return &Model{profile: p, cycler: cycler, styles: DefaultStyles()}, nil
}

// Init schedules the first typewriter tick.
func (m *Model) Init() tea.Cmd {
	return m.schedule(m.cycler.Delay())
}

func (m *Model) schedule(d time.Duration) tea.Cmd {
	gen := m.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Update handles key presses, resizes and typewriter ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.gen++
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		if m.quitting || msg.gen != m.gen {
			return m, nil
		}
		return m, m.schedule(m.cycler.Tick())
	}
	return m, nil
}

// Text is the tagline as currently typed.
func (m *Model) Text() string {
	return m.cycler.Text()
}

// State exposes the cycler position for tests and debugging.
func (m *Model) State() typewriter.State {
	return m.cycler.State()
}

// View renders the profile.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Name.Render("Hi, I'm " + m.profile.Name))
	b.WriteString("\n")
	b.WriteString(s.Tagline.Render(m.cycler.Text()))
	b.WriteString(s.Cursor.Render("|"))
	b.WriteString("\n")

	b.WriteString(s.Heading.Render("About"))
	b.WriteString("\n")
	for _, para := range m.profile.About {
		b.WriteString(s.Body.Render(collapseSpace(para)))
		b.WriteString("\n")
	}

	b.WriteString(s.Heading.Render("Skills"))
	b.WriteString("\n")
	for _, cat := range m.profile.Skills {
		fmt.Fprintf(&b, "%s %s\n", s.Body.Render(cat.Name+":"), s.Badge.Render(strings.Join(cat.Items, " · ")))
	}

	b.WriteString(s.Heading.Render("Projects"))
	b.WriteString("\n")
	for _, p := range m.profile.Projects {
		title := p.Title
		if p.Featured {
			title += " " + s.Featured.Render("★ Featured")
		}
		fmt.Fprintf(&b, "%s\n  %s\n", s.Body.Bold(true).Render(title), s.Badge.Render(strings.Join(p.Tech, ", ")))
	}

	b.WriteString(s.Hint.Render("q to quit"))

	box := s.Box
	if m.width > 4 {
		box = box.MaxWidth(m.width)
	}
	return box.Render(b.String()) + "\n"
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
