package handlers

import (
	"html/template"
	"strings"

	"nailsbyceline.se/salon-web/internal/catalog"
	"nailsbyceline.se/salon-web/internal/i18n"
	"nailsbyceline.se/salon-web/internal/legal"
	"nailsbyceline.se/salon-web/internal/nav"
	"nailsbyceline.se/salon-web/internal/seo"
	"nailsbyceline.se/salon-web/internal/site"
)

// PageData is the per-request view model shared by every view. It is built
// fresh for each request and never cached.
type PageData struct {
	Lang    string
	Locale  i18n.Resolution
	Route   site.Route
	Path    string
	Meta    seo.Meta
	Profile catalog.Profile
	Tagline string
	TelHref template.URL

	Nav         []nav.RenderedItem
	FooterNav   []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	SwitchHref  string

	JSONLD []any
	Legal  *legal.Page

	Year          int
	AssetVersion  string
	ServiceWorker bool
	AnalyticsID   string

	defaultLang string
}

// Link returns a site-relative link to path that keeps the current language.
func (d PageData) Link(path string) string {
	return nav.Href(path, d.Lang, d.defaultLang)
}

// BuildPageData merges the business profile with the route's SEO override,
// the resolved locale and the navigation for the page at path.
func (s *Site) BuildPageData(route site.Route, loc i18n.Resolution, path string) (PageData, error) {
	profile := s.catalog.Profile()
	defaultLang := s.bundle.Fallback()
	lang := loc.Lang

	var doc *legal.Page
	if route.Slug != "" {
		p, err := s.legal.Page(route.Slug, lang)
		if err != nil {
			return PageData{}, err
		}
		doc = &p
	}

	data := PageData{
		Lang:          lang,
		Locale:        loc,
		Route:         route,
		Path:          path,
		Profile:       profile,
		Tagline:       profile.Tagline,
		TelHref:       template.URL(profile.TelURI()),
		Nav:           nav.Build(nav.Main(), path, lang, defaultLang),
		FooterNav:     nav.Build(nav.Footer(), path, lang, defaultLang),
		SwitchHref:    nav.Href(path, loc.Other, defaultLang),
		Legal:         doc,
		Year:          s.now().Year(),
		AssetVersion:  s.assetVersion,
		ServiceWorker: s.serviceWorker != nil,
		AnalyticsID:   s.analytics.GA4MeasurementID,
		defaultLang:   defaultLang,
	}
	// The catalog speaks the default language; other languages use their table.
	if v, ok := loc.Lookup("business.tagline"); ok && v != "" && (!loc.IsDefault() || profile.Tagline == "") {
		data.Tagline = v
	}
	data.Meta = s.meta(route, loc, profile, doc)
	if route.Kind == site.KindPage {
		data.Breadcrumbs = nav.Breadcrumbs(route, lang, defaultLang)
	}
	data.JSONLD = s.jsonLD(route, loc, profile, data.Breadcrumbs)
	return data, nil
}

func (s *Site) meta(route site.Route, loc i18n.Resolution, profile catalog.Profile, doc *legal.Page) seo.Meta {
	defaultLang := s.bundle.Fallback()
	title := loc.T(route.TitleKey)
	description := loc.T(route.DescriptionKey)
	if route.Path == "/" && profile.SEO != nil {
		if _, ok := loc.Lookup(route.TitleKey); (!ok || loc.IsDefault()) && profile.SEO.Title != "" {
			title = profile.SEO.Title
		}
		if _, ok := loc.Lookup(route.DescriptionKey); (!ok || loc.IsDefault()) && profile.SEO.Description != "" {
			description = profile.SEO.Description
		}
	}
	if doc != nil {
		if doc.SEO.Title != "" {
			title = doc.SEO.Title
		}
		if doc.SEO.Description != "" {
			description = doc.SEO.Description
		}
	}

	var keywords, image string
	if profile.SEO != nil {
		keywords = profile.SEO.Keywords
		image = profile.SEO.ImageURL
		if image != "" && !strings.HasPrefix(image, "http://") && !strings.HasPrefix(image, "https://") {
			image = seo.Absolute(s.baseURL, image)
		}
	}

	m := seo.Meta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		OG: seo.OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			Type:        route.OGType,
			SiteName:    profile.Name,
			Locale:      loc.T("lang.og_locale"),
		},
		Twitter: seo.Twitter{Card: "summary_large_image", Image: image},
	}
	if route.Kind == site.KindNotFound {
		m.Robots = "noindex, follow"
		return m
	}
	m.Robots = "index, follow"
	m.Canonical = seo.LocalizedURL(s.baseURL, route.Path, loc.Lang, defaultLang)
	m.OG.URL = m.Canonical
	m.Alternates = seo.Alternates(s.baseURL, route.Path, s.bundle.Supported(), defaultLang)
	return m
}

func (s *Site) jsonLD(route site.Route, loc i18n.Resolution, profile catalog.Profile, crumbs []nav.Crumb) []any {
	if route.Kind != site.KindPage {
		return nil
	}
	home := seo.Absolute(s.baseURL, "/")
	var out []any
	switch route.View {
	case "home":
		out = append(out, seo.WebSite(profile.Name, home, loc.Lang), seo.NailSalon(profile, home, true))
	case "services":
		out = append(out, seo.NailSalon(profile, home, true))
	}
	if len(crumbs) > 1 {
		items := make([]seo.BreadcrumbItem, 0, len(crumbs))
		for _, c := range crumbs {
			items = append(items, seo.BreadcrumbItem{
				Name: loc.T(c.LabelKey),
				Item: seo.LocalizedURL(s.baseURL, c.Path, loc.Lang, s.bundle.Fallback()),
			})
		}
		out = append(out, seo.BreadcrumbList(items))
	}
	return out
}
