package routing

import (
	"regexp"

	"github.com/Whilreal0/Klima-Pro/internal/catalog"
)

// PageKind identifies which page a route resolves to.
type PageKind string

const (
	PageHome    PageKind = "home"
	PageAbout   PageKind = "about"
	PageContact PageKind = "contact"
	PageService PageKind = "service"
)

// Page is the result of resolving a Route. Service is set only for
// PageService.
type Page struct {
	Kind    PageKind
	Service *catalog.ServiceDetail
}

var servicePattern = regexp.MustCompile(`^/services/([a-zA-Z0-9-]+)/?$`)

// Resolve maps a canonical route to a page selection. There is no
// hard-failure path: an unknown service slug or an unrecognized literal
// path both resolve to the home page.
func Resolve(route Route, services *catalog.Catalog) Page {
	if m := servicePattern.FindStringSubmatch(string(route)); m != nil {
		if svc, ok := services.Lookup(m[1]); ok {
			return Page{Kind: PageService, Service: &svc}
		}
		return Page{Kind: PageHome}
	}

	switch route {
	case "/about":
		return Page{Kind: PageAbout}
	case "/contact":
		return Page{Kind: PageContact}
	default:
		return Page{Kind: PageHome}
	}
}
