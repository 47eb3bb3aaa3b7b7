package carousel

// Viewer is one embedded page instance. The carousel creates a fresh one on
// every render and never reuses it.
type Viewer interface {
	// Source returns the location the viewer was created from.
	Source() string
}

// Embedder creates viewers for page locations.
type Embedder interface {
	Embed(location string) Viewer
}

// EmbedderFunc adapts a plain function to Embedder.
type EmbedderFunc func(location string) Viewer

// Embed calls f(location).
func (f EmbedderFunc) Embed(location string) Viewer {
	return f(location)
}

// Resolver maps a page identifier to a loadable location.
type Resolver interface {
	Resolve(page string) string
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(page string) string

// Resolve calls f(page).
func (f ResolverFunc) Resolve(page string) string {
	return f(page)
}

// Slot is a container that hosts exactly one viewer at a time.
type Slot interface {
	Clear()
	Insert(v Viewer)
}

// Control is a navigation affordance whose visibility can be toggled.
type Control interface {
	SetVisible(visible bool)
}

// Document supplies the elements the carousel binds to, addressed by identifier.
type Document interface {
	Slot(id string) (Slot, bool)
	Control(id string) (Control, bool)
}

// Elements names the three document elements the carousel needs.
type Elements struct {
	Container string
	Previous  string
	Next      string
}

// DefaultElements are used when New is given a zero Elements value.
var DefaultElements = Elements{
	Container: "viewer",
	Previous:  "previous",
	Next:      "next",
}
