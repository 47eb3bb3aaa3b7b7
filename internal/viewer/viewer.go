// Package viewer loads local HTML pages and renders them as terminal text.
package viewer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/carousel/internal/carousel"
)

// DefaultStyle is used when Loader.Style is empty. AutoStyle picks dark or
// light from the terminal background.
const (
	DefaultStyle = "dark"
	AutoStyle    = "auto"

	fallbackWidth = 80
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("203")).
	Padding(1, 2)

// Loader creates a Frame for every location it is asked to embed.
type Loader struct {
	// Style is a glamour standard style name, or "auto" to detect the
	// terminal background.
	Style string
	// WordWrap fixes the wrap column. Zero wraps at the width passed to Render.
	WordWrap int
}

// Embed loads location into a new Frame for the carousel.
func (l Loader) Embed(location string) carousel.Viewer {
	return l.Load(location)
}

// Load reads and parses the page at location. Failures are kept on the frame
// and shown in place of the page.
func (l Loader) Load(location string) *Frame {
	f := &Frame{
		location: location,
		style:    l.Style,
		wrap:     l.WordWrap,
		cache:    make(map[int]string),
	}
	if f.style == "" {
		f.style = DefaultStyle
	}

	path, err := locate(location)
	if err != nil {
		f.err = err
		return f
	}
	f.path = path

	file, err := os.Open(path)
	if err != nil {
		f.err = fmt.Errorf("failed to open page: %w", err)
		return f
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		f.err = fmt.Errorf("failed to parse page: %w", err)
		return f
	}

	p := extractPage(doc)
	f.title = p.title
	f.markdown = p.markdown
	f.links = p.links
	return f
}

// locate finds the file behind a location: the location itself, the
// index.html of a directory, or location.html for a bare name.
func locate(location string) (string, error) {
	info, err := os.Stat(location)
	switch {
	case err == nil && info.IsDir():
		index := filepath.Join(location, "index.html")
		if _, err := os.Stat(index); err != nil {
			return "", fmt.Errorf("failed to find page: %w", err)
		}
		return index, nil
	case err == nil:
		return location, nil
	case errors.Is(err, os.ErrNotExist) && filepath.Ext(location) == "":
		withExt := location + ".html"
		if _, statErr := os.Stat(withExt); statErr == nil {
			return withExt, nil
		}
	}
	return "", fmt.Errorf("failed to find page: %w", err)
}

// Frame is one embedded page. It satisfies carousel.Viewer.
type Frame struct {
	location string
	path     string
	title    string
	markdown string
	links    []Link
	err      error

	style string
	wrap  int
	cache map[int]string
}

// Source is the location the frame was embedded from.
func (f *Frame) Source() string {
	return f.location
}

// Path is the file that was read, empty when the page could not be found.
func (f *Frame) Path() string {
	return f.path
}

func (f *Frame) Title() string {
	return f.title
}

func (f *Frame) Markdown() string {
	return f.markdown
}

// Links are the numbered anchors of the page body.
func (f *Frame) Links() []Link {
	return f.links
}

// Err reports why the page could not be loaded.
func (f *Frame) Err() error {
	return f.err
}

// Render returns the page as styled terminal text wrapped to width.
func (f *Frame) Render(width int) string {
	if f.wrap > 0 {
		width = f.wrap
	}
	if width <= 0 {
		width = fallbackWidth
	}

	if out, ok := f.cache[width]; ok {
		return out
	}

	var out string
	if f.err != nil {
		out = errorStyle.Width(width).Render(fmt.Sprintf("✗ Could not load %s\n\n%v", f.location, f.err))
	} else {
		styled, err := renderWithStyle(f.markdown, f.style, width)
		if err != nil {
			styled = f.markdown
		}
		out = styled
	}

	f.cache[width] = out
	return out
}

func renderWithStyle(markdown, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == AutoStyle {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	return r.Render(markdown)
}
