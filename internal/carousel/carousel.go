package carousel

import (
	"errors"
	"fmt"
)

var (
	ErrNoPages        = errors.New("carousel: page list is empty")
	ErrMissingElement = errors.New("carousel: missing document element")
	ErrNoEmbedder     = errors.New("carousel: no viewer embedder")
)

// Options carries the optional collaborators of a Carousel.
type Options struct {
	Elements Elements
	Resolver Resolver
}

// Carousel pages through a fixed list of pages, one viewer at a time.
type Carousel struct {
	pages   []string
	index   int
	slot    Slot
	prev    Control
	next    Control
	embed   Embedder
	resolve Resolver
}

// New binds a carousel to the document elements and validates its inputs.
// The page list is copied. Call Initialize to draw the first page.
func New(doc Document, pages []string, embed Embedder, opts Options) (*Carousel, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	if embed == nil {
		return nil, ErrNoEmbedder
	}

	ids := opts.Elements
	if ids == (Elements{}) {
		ids = DefaultElements
	}

	slot, ok := doc.Slot(ids.Container)
	if !ok {
		return nil, fmt.Errorf("%w: container %q", ErrMissingElement, ids.Container)
	}
	prev, ok := doc.Control(ids.Previous)
	if !ok {
		return nil, fmt.Errorf("%w: previous control %q", ErrMissingElement, ids.Previous)
	}
	next, ok := doc.Control(ids.Next)
	if !ok {
		return nil, fmt.Errorf("%w: next control %q", ErrMissingElement, ids.Next)
	}

	resolve := opts.Resolver
	if resolve == nil {
		resolve = ResolverFunc(func(page string) string { return page })
	}

	return &Carousel{
		pages:   append([]string(nil), pages...),
		slot:    slot,
		prev:    prev,
		next:    next,
		embed:   embed,
		resolve: resolve,
	}, nil
}

// Initialize establishes the starting visible state.
func (c *Carousel) Initialize() {
	c.Render()
	c.RefreshControls()
}

// Render replaces the slot contents with a new viewer for the current page.
func (c *Carousel) Render() {
	c.slot.Clear()
	c.slot.Insert(c.embed.Embed(c.resolve.Resolve(c.pages[c.index])))
}

// RefreshControls hides the previous control on the first page and the next
// control on the last one.
func (c *Carousel) RefreshControls() {
	c.prev.SetVisible(c.canGoPrevious())
	c.next.SetVisible(c.canGoNext())
}

// Previous moves one page back. It reports false and does nothing on the
// first page.
func (c *Carousel) Previous() bool {
	if !c.canGoPrevious() {
		return false
	}
	c.index--
	c.Render()
	c.RefreshControls()
	return true
}

// Next moves one page forward. It reports false and does nothing on the last
// page.
func (c *Carousel) Next() bool {
	if !c.canGoNext() {
		return false
	}
	c.index++
	c.Render()
	c.RefreshControls()
	return true
}

func (c *Carousel) canGoPrevious() bool {
	return c.index > 0
}

func (c *Carousel) canGoNext() bool {
	return c.index < len(c.pages)-1
}

// Index is the zero-based position of the current page.
func (c *Carousel) Index() int {
	return c.index
}

// Len is the number of pages.
func (c *Carousel) Len() int {
	return len(c.pages)
}

// Current returns the identifier of the page being shown.
func (c *Carousel) Current() string {
	return c.pages[c.index]
}

// Pages returns a copy of the page list.
func (c *Carousel) Pages() []string {
	return append([]string(nil), c.pages...)
}
