package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zam-dot/carousel/internal/carousel"
	"github.com/zam-dot/carousel/internal/pages"
	"github.com/zam-dot/carousel/internal/viewer"
)

const (
	testWidth  = 100
	testHeight = 30
)

func newTestModel(t *testing.T, pageNames ...string) *Model {
	t.Helper()
	dir := t.TempDir()
	for _, name := range pageNames {
		html := "<html><head><title>" + name + " dashboard</title></head><body><p>Rooms of " + name + "</p></body></html>"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".html"), []byte(html), 0644))
	}

	screen := NewScreen(carousel.Elements{})
	c, err := carousel.New(screen, pageNames, viewer.Loader{Style: "notty"}, carousel.Options{
		Elements: screen.Elements(),
		Resolver: pages.TemplateResolver{Dir: dir},
	})
	require.NoError(t, err)

	m := NewModel(screen, c)
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestScreenElements(t *testing.T) {
	s := NewScreen(carousel.Elements{})
	assert.Equal(t, carousel.DefaultElements, s.Elements())

	_, ok := s.Slot("viewer")
	assert.True(t, ok)
	_, ok = s.Slot("previous")
	assert.False(t, ok)
	_, ok = s.Control("previous")
	assert.True(t, ok)
	_, ok = s.Control("next")
	assert.True(t, ok)
	_, ok = s.Control("viewer")
	assert.False(t, ok)

	custom := NewScreen(carousel.Elements{Container: "iframe-container", Previous: "left-arrow", Next: "right-arrow"})
	_, ok = custom.Slot("iframe-container")
	assert.True(t, ok)
	_, ok = custom.Control("left-arrow")
	assert.True(t, ok)
}

func TestCarouselRejectsMismatchedScreen(t *testing.T) {
	screen := NewScreen(carousel.Elements{})
	_, err := carousel.New(screen, []string{"school1"}, viewer.Loader{}, carousel.Options{
		Elements: carousel.Elements{Container: "iframe-container", Previous: "previous", Next: "next"},
	})
	assert.ErrorIs(t, err, carousel.ErrMissingElement)
}

func TestPaneRender(t *testing.T) {
	p := &Pane{}
	assert.Equal(t, "", p.Render(80))
	assert.Equal(t, "", p.Title())

	p.Insert(sourceOnly("templates/school1"))
	assert.Equal(t, "templates/school1", p.Render(80))

	p.Clear()
	assert.Nil(t, p.Viewer())
}

type sourceOnly string

func (s sourceOnly) Source() string { return string(s) }

func TestArrowKeepsWidthWhenHidden(t *testing.T) {
	a := &Arrow{glyph: nextGlyph, visible: true}
	shown := a.View(3)
	a.SetVisible(false)
	hidden := a.View(3)

	assert.Contains(t, shown, nextGlyph)
	assert.NotContains(t, hidden, nextGlyph)
	assert.Equal(t, arrowWidth, lipgloss.Width(shown))
	assert.Equal(t, arrowWidth, lipgloss.Width(hidden))
	assert.Equal(t, 3, lipgloss.Height(hidden))
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t, "school1", "school2")

	assert.Equal(t, 0, m.Carousel().Index())
	assert.False(t, m.screen.prev.Visible())
	assert.True(t, m.screen.next.Visible())

	view := m.View()
	assert.Contains(t, view, "school1")
	assert.Contains(t, view, "1/2")
	assert.Contains(t, view, "Rooms of school1")
	assert.Contains(t, view, nextGlyph)
	assert.NotContains(t, view, prevGlyph)
}

func TestKeyboardNavigation(t *testing.T) {
	m := newTestModel(t, "school1", "school2")

	m.Update(keyPress("right"))
	assert.Equal(t, 1, m.Carousel().Index())
	assert.True(t, m.screen.prev.Visible())
	assert.False(t, m.screen.next.Visible())
	assert.Contains(t, m.View(), "Rooms of school2")
	assert.Contains(t, m.View(), "2/2")

	m.Update(keyPress("l"))
	assert.Equal(t, 1, m.Carousel().Index())

	m.Update(keyPress("left"))
	assert.Equal(t, 0, m.Carousel().Index())
	assert.Contains(t, m.View(), "Rooms of school1")

	m.Update(keyPress("h"))
	assert.Equal(t, 0, m.Carousel().Index())

	m.Update(keyPress("n"))
	m.Update(keyPress("p"))
	assert.Equal(t, 0, m.Carousel().Index())
}

func TestMouseNavigation(t *testing.T) {
	m := newTestModel(t, "school1", "school2", "school3")
	row := headerHeight + 1

	m.Update(click(0, row))
	assert.Equal(t, 0, m.Carousel().Index(), "hidden previous arrow is not clickable")

	m.Update(click(testWidth-1, row))
	assert.Equal(t, 1, m.Carousel().Index())

	m.Update(click(testWidth/2, row))
	assert.Equal(t, 1, m.Carousel().Index(), "clicks on the page do not navigate")

	m.Update(click(testWidth-1, 0))
	assert.Equal(t, 1, m.Carousel().Index(), "clicks on the header do not navigate")

	m.Update(click(1, row))
	assert.Equal(t, 0, m.Carousel().Index())
}

func TestSinglePage(t *testing.T) {
	m := newTestModel(t, "school1")

	assert.False(t, m.screen.prev.Visible())
	assert.False(t, m.screen.next.Visible())

	m.Update(keyPress("right"))
	m.Update(keyPress("left"))
	assert.Equal(t, 0, m.Carousel().Index())

	view := m.View()
	assert.NotContains(t, view, prevGlyph)
	assert.NotContains(t, view, nextGlyph)
}

func TestMissingPageShowsErrorInViewer(t *testing.T) {
	screen := NewScreen(carousel.Elements{})
	c, err := carousel.New(screen, []string{"school1", "ghost"}, viewer.Loader{Style: "notty"}, carousel.Options{
		Resolver: pages.TemplateResolver{Dir: t.TempDir()},
	})
	require.NoError(t, err)
	m := NewModel(screen, c)
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})

	m.Update(keyPress("right"))
	assert.Equal(t, 1, m.Carousel().Index())
	assert.Contains(t, m.View(), "Could not load")
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t, "school1")
		_, cmd := m.Update(keyPress(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestHelpToggleResizesViewport(t *testing.T) {
	m := newTestModel(t, "school1", "school2")
	short := m.viewport.Height

	m.Update(keyPress("?"))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.viewport.Height, short)
	assert.Contains(t, m.View(), "scroll down")

	m.Update(keyPress("?"))
	assert.Equal(t, short, m.viewport.Height)
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t, "school1", "school2")
	assert.Equal(t, testWidth-2*arrowWidth, m.viewport.Width)

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60-2*arrowWidth, m.viewport.Width)
	assert.Contains(t, m.View(), "Rooms of school1")
}

func TestViewBeforeWindowSize(t *testing.T) {
	screen := NewScreen(carousel.Elements{})
	c, err := carousel.New(screen, []string{"a"}, carousel.EmbedderFunc(func(location string) carousel.Viewer {
		return sourceOnly(location)
	}), carousel.Options{})
	require.NoError(t, err)

	m := NewModel(screen, c)
	assert.Contains(t, m.View(), "Initializing")
	assert.Nil(t, m.Init())
}
