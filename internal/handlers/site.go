package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"nailsbyceline.se/salon-web/internal/assetcache"
	"nailsbyceline.se/salon-web/internal/catalog"
	"nailsbyceline.se/salon-web/internal/config"
	"nailsbyceline.se/salon-web/internal/i18n"
	"nailsbyceline.se/salon-web/internal/legal"
	"nailsbyceline.se/salon-web/internal/middleware"
	"nailsbyceline.se/salon-web/internal/observability"
	"nailsbyceline.se/salon-web/internal/render"
	"nailsbyceline.se/salon-web/internal/site"
	"nailsbyceline.se/salon-web/internal/sitemap"
)

// Options wires the read-only inputs of every page.
type Options struct {
	Catalog  *catalog.Catalog
	Bundle   *i18n.Bundle
	Renderer *render.Renderer
	Legal    *legal.Library
	// BaseURL is the canonical origin, e.g. https://nailsbyceline.se.
	BaseURL      string
	AssetVersion string
	Analytics    config.Analytics
	// Manifest enables /sw.js when set.
	Manifest *assetcache.Manifest
	Now      func() time.Time
}

// Site serves the pages, the generated documents and the service worker.
type Site struct {
	catalog       *catalog.Catalog
	bundle        *i18n.Bundle
	renderer      *render.Renderer
	legal         *legal.Library
	baseURL       string
	assetVersion  string
	analytics     config.Analytics
	serviceWorker []byte
	now           func() time.Time
}

// New checks every route has a view and every legal route a document.
func New(opts Options) (*Site, error) {
	switch {
	case opts.Catalog == nil:
		return nil, errors.New("handlers: catalog is required")
	case opts.Bundle == nil:
		return nil, errors.New("handlers: locale bundle is required")
	case opts.Renderer == nil:
		return nil, errors.New("handlers: renderer is required")
	case opts.Legal == nil:
		return nil, errors.New("handlers: legal library is required")
	case strings.TrimSpace(opts.BaseURL) == "":
		return nil, errors.New("handlers: base URL is required")
	}
	for _, view := range site.Views() {
		if !opts.Renderer.Has(view) {
			return nil, errors.New("handlers: missing template for view " + view)
		}
	}
	for _, r := range site.Routes() {
		if r.Slug != "" && !opts.Legal.Has(r.Slug) {
			return nil, errors.New("handlers: missing document " + r.Slug)
		}
	}

	s := &Site{
		catalog:      opts.Catalog,
		bundle:       opts.Bundle,
		renderer:     opts.Renderer,
		legal:        opts.Legal,
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		assetVersion: opts.AssetVersion,
		analytics:    opts.Analytics,
		now:          opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.Manifest != nil {
		js, err := assetcache.ServiceWorker(*opts.Manifest)
		if err != nil {
			return nil, err
		}
		s.serviceWorker = js
	}
	return s, nil
}

// BaseURL returns the canonical origin without a trailing slash.
func (s *Site) BaseURL() string { return s.baseURL }

func (s *Site) locale(r *http.Request) i18n.Resolution {
	if res, ok := middleware.LocaleFromContext(r.Context()); ok {
		return res
	}
	return s.bundle.Resolve(r.URL.Query().Get(middleware.LangParam))
}

// Page renders route with status 200.
func (s *Site) Page(route site.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serve(w, r, route, http.StatusOK)
	}
}

// NotFound renders the not-found view with status 404.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, site.NotFound, http.StatusNotFound)
}

func (s *Site) serve(w http.ResponseWriter, r *http.Request, route site.Route, status int) {
	logger := observability.FromContext(r.Context())
	data, err := s.BuildPageData(route, s.locale(r), r.URL.Path)
	if err != nil {
		logger.Error("build page data", zap.String("view", route.View), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := s.renderer.Render(w, status, route.View, data); err != nil {
		logger.Error("render page", zap.String("view", route.View), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// SitemapEntries lists every page route for the sitemap.
func SitemapEntries() []sitemap.Entry {
	routes := site.Routes()
	out := make([]sitemap.Entry, 0, len(routes))
	for _, r := range routes {
		out = append(out, sitemap.Entry{Path: r.Path, ChangeFreq: r.ChangeFreq, Priority: r.Priority})
	}
	return out
}

// Sitemap writes the sitemap with today's UTC date as lastmod.
func (s *Site) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := sitemap.Build(s.baseURL, SitemapEntries(), s.now())
	if err != nil {
		observability.FromContext(r.Context()).Error("build sitemap", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Robots writes robots.txt pointing at the sitemap.
func (s *Site) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(sitemap.Robots(s.baseURL, sitemap.DefaultDisallow)))
}

// ServiceWorker serves the precache worker. Browsers must revalidate it so a
// version bump reaches clients.
func (s *Site) ServiceWorker(w http.ResponseWriter, r *http.Request) {
	if s.serviceWorker == nil {
		s.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Service-Worker-Allowed", "/")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.serviceWorker)
}

// Healthz answers ok.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
