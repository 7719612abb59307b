// Package site defines the closed set of pages the website serves.
package site

// Kind distinguishes regular pages from the not-found fallback.
type Kind int

const (
	KindPage Kind = iota
	KindNotFound
)

// Route describes one page: where it lives, which view renders it, and how it
// appears in navigation, metadata and the sitemap.
type Route struct {
	Kind Kind
	Path string
	View string
	// Slug names the markdown document for legal pages.
	Slug           string
	LabelKey       string
	TitleKey       string
	DescriptionKey string
	OGType         string
	ChangeFreq     string
	Priority       float64
	InNav          bool
}

var routes = []Route{
	{
		Path: "/", View: "home", LabelKey: "nav.home",
		TitleKey: "seo.home.title", DescriptionKey: "seo.home.description",
		OGType: "website", ChangeFreq: "weekly", Priority: 1.0, InNav: true,
	},
	{
		Path: "/services", View: "services", LabelKey: "nav.services",
		TitleKey: "seo.services.title", DescriptionKey: "seo.services.description",
		OGType: "website", ChangeFreq: "monthly", Priority: 0.9, InNav: true,
	},
	{
		Path: "/gallery", View: "gallery", LabelKey: "nav.gallery",
		TitleKey: "seo.gallery.title", DescriptionKey: "seo.gallery.description",
		OGType: "website", ChangeFreq: "weekly", Priority: 0.8, InNav: true,
	},
	{
		Path: "/privacy-policy", View: "legal", Slug: "privacy-policy", LabelKey: "nav.privacy",
		TitleKey: "seo.privacy.title", DescriptionKey: "seo.privacy.description",
		OGType: "article", ChangeFreq: "yearly", Priority: 0.3,
	},
	{
		Path: "/terms-of-service", View: "legal", Slug: "terms-of-service", LabelKey: "nav.terms",
		TitleKey: "seo.terms.title", DescriptionKey: "seo.terms.description",
		OGType: "article", ChangeFreq: "yearly", Priority: 0.3,
	},
}

// NotFound is rendered for every path no other route matches.
var NotFound = Route{
	Kind:           KindNotFound,
	View:           "notfound",
	LabelKey:       "notfound.heading",
	TitleKey:       "seo.notfound.title",
	DescriptionKey: "seo.notfound.description",
	OGType:         "website",
}

// Routes returns the page routes in registration order.
func Routes() []Route {
	return append([]Route(nil), routes...)
}

// Lookup matches path exactly against the page routes. The NotFound route is
// the final arm and is returned when nothing else matches.
func Lookup(path string) Route {
	for _, r := range routes {
		if r.Path == path {
			return r
		}
	}
	return NotFound
}

// Views returns the distinct view names used by all routes, NotFound included.
func Views() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range append(Routes(), NotFound) {
		if !seen[r.View] {
			seen[r.View] = true
			out = append(out, r.View)
		}
	}
	return out
}
