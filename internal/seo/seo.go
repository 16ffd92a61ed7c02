// Package seo derives the document metadata written on every route change:
// title, meta description, and the og/twitter mirrors of both.
package seo

import "github.com/Whilreal0/Klima-Pro/internal/routing"

const (
	defaultTitle       = "KlimaPro PH | Fast & Reliable AC Service in Metro Manila"
	defaultDescription = "KlimaPro PH offers fast, reliable air conditioning repair, installation, and maintenance in Metro Manila and across the Philippines. 24/7 emergency service available. Book your free estimate today!"
)

// pageMeta is the fixed per-route metadata table for literal pages.
var pageMeta = map[routing.PageKind]routing.Meta{
	routing.PageAbout: {
		Title:       "About Us | KlimaPro PH",
		Description: "Learn about the experienced and certified team at KlimaPro PH, dedicated to providing top-quality air conditioning and HVAC services in Metro Manila and across the Philippines.",
	},
	routing.PageContact: {
		Title:       "Contact Us | KlimaPro PH",
		Description: "Schedule your service or get a free estimate from KlimaPro PH. Call us or fill out our online form for fast, friendly service in Metro Manila and across the Philippines.",
	},
}

// For returns the metadata for a resolved page. Service pages derive it
// from the matched record; everything else uses the fixed table, with the
// home defaults covering unrecognized routes.
func For(page routing.Page, _ routing.Route) routing.Meta {
	if page.Kind == routing.PageService && page.Service != nil {
		return routing.Meta{
			Title:       page.Service.Name + " | KlimaPro PH in Metro Manila",
			Description: page.Service.Description,
		}
	}
	if m, ok := pageMeta[page.Kind]; ok {
		return m
	}
	return routing.Meta{Title: defaultTitle, Description: defaultDescription}
}
