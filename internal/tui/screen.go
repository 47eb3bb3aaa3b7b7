package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/carousel/internal/carousel"
)

// renderer is implemented by viewers that can draw themselves at a width.
type renderer interface {
	Render(width int) string
}

// titled is implemented by viewers that know their page title.
type titled interface {
	Title() string
}

// Pane is the terminal container for the current viewer.
type Pane struct {
	viewer carousel.Viewer
}

// Clear unmounts the current viewer.
func (p *Pane) Clear() {
	p.viewer = nil
}

// Insert mounts v as the only viewer.
func (p *Pane) Insert(v carousel.Viewer) {
	p.viewer = v
}

// Viewer returns the viewer currently mounted, or nil.
func (p *Pane) Viewer() carousel.Viewer {
	return p.viewer
}

// Render draws the mounted viewer at width. Viewers that cannot draw
// themselves are shown by their source.
func (p *Pane) Render(width int) string {
	switch v := p.viewer.(type) {
	case nil:
		return ""
	case renderer:
		return v.Render(width)
	default:
		return v.Source()
	}
}

// Title is the page title reported by the mounted viewer, if any.
func (p *Pane) Title() string {
	if v, ok := p.viewer.(titled); ok {
		return v.Title()
	}
	return ""
}

// Arrow is a navigation control. A hidden arrow keeps its space on screen.
type Arrow struct {
	glyph   string
	visible bool
}

// SetVisible shows or hides the glyph.
func (a *Arrow) SetVisible(visible bool) {
	a.visible = visible
}

func (a *Arrow) Visible() bool {
	return a.visible
}

// View renders the arrow centered in a column of the given height.
func (a *Arrow) View(height int) string {
	glyph := ""
	if a.visible {
		glyph = arrowStyle.Render(a.glyph)
	}
	return lipgloss.Place(arrowWidth, height, lipgloss.Center, lipgloss.Center, glyph)
}

// Screen is the terminal document: a pane and two arrows, each registered
// under an identifier.
type Screen struct {
	ids  carousel.Elements
	pane *Pane
	prev *Arrow
	next *Arrow
}

// NewScreen registers the elements under ids, or under
// carousel.DefaultElements when ids is zero.
func NewScreen(ids carousel.Elements) *Screen {
	if ids == (carousel.Elements{}) {
		ids = carousel.DefaultElements
	}
	return &Screen{
		ids:  ids,
		pane: &Pane{},
		prev: &Arrow{glyph: prevGlyph, visible: true},
		next: &Arrow{glyph: nextGlyph, visible: true},
	}
}

// Slot returns the pane when id names the container.
func (s *Screen) Slot(id string) (carousel.Slot, bool) {
	if id != s.ids.Container {
		return nil, false
	}
	return s.pane, true
}

// Control returns the arrow registered under id.
func (s *Screen) Control(id string) (carousel.Control, bool) {
	switch id {
	case s.ids.Previous:
		return s.prev, true
	case s.ids.Next:
		return s.next, true
	}
	return nil, false
}

// Elements returns the identifiers the screen answers to.
func (s *Screen) Elements() carousel.Elements {
	return s.ids
}
