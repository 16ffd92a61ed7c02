package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Whilreal0/Klima-Pro/internal/catalog"
	"github.com/Whilreal0/Klima-Pro/internal/routing"
	"github.com/Whilreal0/Klima-Pro/internal/seo"
)

// Pages renders the site pages and exposes the route-resolution and
// catalog JSON APIs.
type Pages struct {
	services         *catalog.Catalog
	tmpl             *template.Template
	md               goldmark.Markdown
	baseURL          string
	recaptchaSiteKey string
}

// NewPages parses the page template and prepares the markdown renderer.
func NewPages(services *catalog.Catalog, baseURL, recaptchaSiteKey string) (*Pages, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Pages{
		services:         services,
		tmpl:             tmpl,
		md:               goldmark.New(goldmark.WithExtensions(extension.GFM)),
		baseURL:          strings.TrimSuffix(baseURL, "/"),
		recaptchaSiteKey: recaptchaSiteKey,
	}, nil
}

// RegisterRoutes mounts the page handler, static assets, and JSON APIs.
func (p *Pages) RegisterRoutes(r chi.Router) {
	r.Get("/static/style.css", p.handleStylesheet)
	r.Get("/api/resolve", p.handleResolve)
	r.Get("/api/services", p.handleServiceList)
	r.Get("/api/services/{slug}", p.handleServiceDetail)
	r.Get("/*", p.handlePage)
}

// pageView is the data passed to the page template.
type pageView struct {
	Kind             routing.PageKind
	Meta             routing.Meta
	CanonicalURL     string
	Service          *catalog.ServiceDetail
	DescriptionHTML  template.HTML
	Summaries        []catalog.ServiceSummary
	MegaMenu         []catalog.MenuGroup
	TrustBadges      []catalog.TrustBadge
	RepairProcess    []catalog.ProcessStep
	SellingPoints    []catalog.SellingPoint
	Testimonials     []catalog.Testimonial
	FAQs             []catalog.FAQ
	RecaptchaSiteKey string
	Year             int
}

// handlePage serves every site page. Resolution never 404s: unknown
// paths and unknown service slugs render the home page.
func (p *Pages) handlePage(w http.ResponseWriter, r *http.Request) {
	route := routing.Normalize(r.URL.Path)
	page := routing.Resolve(route, p.services)
	meta := seo.For(page, route)

	view := pageView{
		Kind:             page.Kind,
		Meta:             meta,
		Service:          page.Service,
		Summaries:        catalog.Summaries,
		MegaMenu:         catalog.MegaMenu,
		TrustBadges:      catalog.TrustBadges,
		RepairProcess:    catalog.RepairProcess,
		SellingPoints:    catalog.SellingPoints,
		Testimonials:     catalog.Testimonials,
		FAQs:             catalog.FAQs,
		RecaptchaSiteKey: p.recaptchaSiteKey,
		Year:             time.Now().Year(),
	}
	if p.baseURL != "" {
		view.CanonicalURL = p.baseURL + string(route)
	}
	if page.Service != nil {
		view.DescriptionHTML = p.renderMarkdown(page.Service.Description)
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, view); err != nil {
		log.Printf("web: rendering %s: %v", route, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (p *Pages) renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(src), &buf); err != nil {
		// Fall back to the raw text, escaped by the template engine.
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func (p *Pages) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(cssContent))
}

// resolveResponse is the JSON shape of /api/resolve.
type resolveResponse struct {
	Route routing.Route    `json:"route"`
	Kind  routing.PageKind `json:"kind"`
	Slug  string           `json:"slug,omitempty"`
	Meta  routing.Meta     `json:"meta"`
}

// handleResolve runs one navigation through a request-scoped dispatcher
// and reports where it landed. The raw path comes from the "path" query
// parameter so callers can probe fragments and un-prefixed paths.
func (p *Pages) handleResolve(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("path")

	sink := &routing.MemorySink{}
	loc := routing.NewMemoryLocation("/")
	d := routing.NewDispatcher(loc, p.services, routing.WithMetadata(sink, seo.For))
	d.NavigateTo(raw)

	resp := resolveResponse{
		Route: d.CurrentRoute(),
		Kind:  d.CurrentPage().Kind,
		Meta:  sink.Current,
	}
	if svc := d.CurrentPage().Service; svc != nil {
		resp.Slug = svc.Slug
	}
	writeJSON(w, http.StatusOK, resp)
}

func (p *Pages) handleServiceList(w http.ResponseWriter, r *http.Request) {
	out := make([]catalog.ServiceDetail, 0, p.services.Len())
	for _, slug := range p.services.Slugs() {
		if svc, ok := p.services.Lookup(slug); ok {
			out = append(out, svc)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (p *Pages) handleServiceDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	svc, ok := p.services.Lookup(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown service: " + slug})
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("web: encoding response: %v", err)
	}
}
