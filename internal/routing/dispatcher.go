package routing

import "github.com/Whilreal0/Klima-Pro/internal/catalog"

// LocationStore abstracts the single shared location slot. The Dispatcher
// is its only writer; everything else reads.
type LocationStore interface {
	Path() string
	Push(path string)
}

// MemoryLocation is an in-process LocationStore. Navigation is
// single-threaded event dispatch, so no locking is needed.
type MemoryLocation struct {
	path string
}

func NewMemoryLocation(path string) *MemoryLocation {
	return &MemoryLocation{path: path}
}

func (l *MemoryLocation) Path() string     { return l.path }
func (l *MemoryLocation) Push(path string) { l.path = path }

// Meta is the discoverable document metadata written on every route change.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MetadataSink receives the metadata for the current route. Writes are
// best-effort overwrites and idempotent for a given route.
type MetadataSink interface {
	Apply(Meta)
}

// MemorySink records the most recently applied metadata.
type MemorySink struct {
	Current Meta
	Applied int
}

func (s *MemorySink) Apply(m Meta) {
	s.Current = m
	s.Applied++
}

// MetaFunc derives document metadata for a resolved page.
type MetaFunc func(Page, Route) Meta

// Dispatcher owns route state. It is both the navigation emitter (the sole
// writer of the location store) and the router that reacts to navigation
// events: it re-reads the location, resolves the page, resets scroll, and
// pushes metadata to the sink.
type Dispatcher struct {
	loc         LocationStore
	sink        MetadataSink
	services    *catalog.Catalog
	metaFor     MetaFunc
	resetScroll func()

	current Route
	page    Page
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetadata wires a metadata sink and the function deriving metadata
// per page.
func WithMetadata(sink MetadataSink, metaFor MetaFunc) Option {
	return func(d *Dispatcher) {
		d.sink = sink
		d.metaFor = metaFor
	}
}

// WithScrollReset registers the hook invoked on every navigation event.
func WithScrollReset(reset func()) Option {
	return func(d *Dispatcher) { d.resetScroll = reset }
}

// NewDispatcher builds a Dispatcher and performs the initial dispatch for
// whatever path the location store currently holds.
func NewDispatcher(loc LocationStore, services *catalog.Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{loc: loc, services: services}
	for _, opt := range opts {
		opt(d)
	}
	d.OnNavigate()
	return d
}

// NavigateTo normalizes the target path, pushes it to the location store
// if it differs from the current location, and always dispatches a
// navigation event — a link to the current page still re-triggers scroll
// reset and metadata refresh.
func (d *Dispatcher) NavigateTo(path string) {
	next := Normalize(path)
	if d.loc.Path() != string(next) {
		d.loc.Push(string(next))
	}
	d.OnNavigate()
}

// OnNavigate re-reads the location, stores the normalized route, resets
// scroll, resolves the page, and updates document metadata.
func (d *Dispatcher) OnNavigate() {
	d.current = Normalize(d.loc.Path())
	if d.resetScroll != nil {
		d.resetScroll()
	}
	d.page = Resolve(d.current, d.services)
	if d.sink != nil && d.metaFor != nil {
		d.sink.Apply(d.metaFor(d.page, d.current))
	}
}

// CurrentRoute returns the route resolved by the last navigation event.
func (d *Dispatcher) CurrentRoute() Route { return d.current }

// CurrentPage returns the page resolved by the last navigation event.
func (d *Dispatcher) CurrentPage() Page { return d.page }
