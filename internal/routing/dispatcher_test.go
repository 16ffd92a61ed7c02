package routing

import (
	"testing"

	"github.com/Whilreal0/Klima-Pro/internal/catalog"
)

func testMetaFor(page Page, route Route) Meta {
	if page.Kind == PageService {
		return Meta{Title: page.Service.Name, Description: page.Service.Description}
	}
	return Meta{Title: string(page.Kind), Description: "default"}
}

func TestDispatcherInitialDispatch(t *testing.T) {
	c := catalog.Must()
	sink := &MemorySink{}
	scrolls := 0

	d := NewDispatcher(NewMemoryLocation("/about"), c,
		WithMetadata(sink, testMetaFor),
		WithScrollReset(func() { scrolls++ }))

	if d.CurrentRoute() != "/about" {
		t.Errorf("current route %q, want /about", d.CurrentRoute())
	}
	if d.CurrentPage().Kind != PageAbout {
		t.Errorf("current page %s, want about", d.CurrentPage().Kind)
	}
	// Construction counts as the initial navigation event.
	if scrolls != 1 || sink.Applied != 1 {
		t.Errorf("expected 1 scroll reset and 1 metadata apply, got %d/%d", scrolls, sink.Applied)
	}
}

func TestNavigateToPushesAndResolves(t *testing.T) {
	c := catalog.Must()
	loc := NewMemoryLocation("/")
	sink := &MemorySink{}
	d := NewDispatcher(loc, c, WithMetadata(sink, testMetaFor))

	d.NavigateTo("services/ac-repair")

	if loc.Path() != "/services/ac-repair" {
		t.Errorf("location %q, want normalized push", loc.Path())
	}
	if d.CurrentPage().Kind != PageService {
		t.Errorf("page %s, want service", d.CurrentPage().Kind)
	}
	if sink.Current.Title != "AC Repair" {
		t.Errorf("metadata title %q, want AC Repair", sink.Current.Title)
	}
}

func TestNavigateToSamePathStillEmits(t *testing.T) {
	c := catalog.Must()
	loc := NewMemoryLocation("/contact")
	sink := &MemorySink{}
	scrolls := 0
	d := NewDispatcher(loc, c,
		WithMetadata(sink, testMetaFor),
		WithScrollReset(func() { scrolls++ }))

	// Clicking a link to the current page re-triggers scroll reset and
	// metadata refresh even though the location does not change.
	d.NavigateTo("/contact")

	if loc.Path() != "/contact" {
		t.Errorf("location changed to %q", loc.Path())
	}
	if scrolls != 2 {
		t.Errorf("expected 2 scroll resets, got %d", scrolls)
	}
	if sink.Applied != 2 {
		t.Errorf("expected 2 metadata applies, got %d", sink.Applied)
	}
}

func TestDispatcherSoftFailsToHome(t *testing.T) {
	c := catalog.Must()
	d := NewDispatcher(NewMemoryLocation("/"), c)

	d.NavigateTo("/services/nope")
	if d.CurrentPage().Kind != PageHome {
		t.Errorf("unknown slug dispatched to %s, want home", d.CurrentPage().Kind)
	}
}
