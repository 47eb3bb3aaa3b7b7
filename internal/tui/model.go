package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/carousel/internal/carousel"
)

// Model hosts a carousel on a terminal screen. It turns key presses and
// arrow clicks into Previous/Next calls.
type Model struct {
	screen   *Screen
	carousel *carousel.Carousel

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	ready  bool
	width  int
	height int
}

// NewModel wires the carousel to the screen and shows the first page.
// The carousel must have been built on the same screen.
func NewModel(screen *Screen, c *carousel.Carousel) *Model {
	c.Initialize()
	log.Printf("Showing %s (1/%d)", c.Current(), c.Len())

	return &Model{
		screen:   screen,
		carousel: c,
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Previous):
			m.goPrevious()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.goNext()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if m.handleClick(msg.X, msg.Y) {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) goPrevious() {
	if m.carousel.Previous() {
		m.showCurrent()
	}
}

func (m *Model) goNext() {
	if m.carousel.Next() {
		m.showCurrent()
	}
}

func (m *Model) showCurrent() {
	log.Printf("Showing %s (%d/%d)", m.carousel.Current(), m.carousel.Index()+1, m.carousel.Len())
	m.syncViewport()
}

// handleClick reports whether a click at x, y landed on a visible arrow.
func (m *Model) handleClick(x, y int) bool {
	if !m.ready || y < headerHeight || y >= headerHeight+m.viewport.Height {
		return false
	}
	switch {
	case x < arrowWidth && m.screen.prev.Visible():
		m.goPrevious()
		return true
	case x >= m.width-arrowWidth && m.screen.next.Visible():
		m.goNext()
		return true
	}
	return false
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	if !m.ready {
		m.viewport = viewport.New(0, 0)
		m.ready = true
	}
	m.layout()
}

// layout sizes the viewport to the space left between the header, the
// arrows and the help footer, then redraws the current page.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	footerHeight := lipgloss.Height(m.footerView())
	m.viewport.Width = max(m.width-2*arrowWidth, 1)
	m.viewport.Height = max(m.height-headerHeight-footerHeight, 1)
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.screen.pane.Render(m.viewport.Width))
	m.viewport.GotoTop()
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.screen.prev.View(m.viewport.Height),
		m.viewport.View(),
		m.screen.next.View(m.viewport.Height),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		body,
		m.footerView(),
	)
}

func (m *Model) headerView() string {
	name := m.carousel.Current()
	if title := m.screen.pane.Title(); title != "" {
		name = fmt.Sprintf("%s · %s", name, title)
	}
	position := positionStyle.Render(fmt.Sprintf("%d/%d", m.carousel.Index()+1, m.carousel.Len()))

	title := titleStyle.
		MaxWidth(max(m.width-lipgloss.Width(position), 0)).
		Render(name)
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(position), 0)

	return headerStyle.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		lipgloss.NewStyle().Width(gap).Render(""),
		position,
	))
}

func (m *Model) footerView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// Carousel exposes the hosted carousel, mainly for tests and logging.
func (m *Model) Carousel() *carousel.Carousel {
	return m.carousel
}
