package server

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"nailsbyceline.se/salon-web/content"
	"nailsbyceline.se/salon-web/internal/assetcache"
	"nailsbyceline.se/salon-web/internal/catalog"
	"nailsbyceline.se/salon-web/internal/config"
	"nailsbyceline.se/salon-web/internal/handlers"
	"nailsbyceline.se/salon-web/internal/i18n"
	"nailsbyceline.se/salon-web/internal/legal"
	mw "nailsbyceline.se/salon-web/internal/middleware"
	"nailsbyceline.se/salon-web/internal/render"
	"nailsbyceline.se/salon-web/internal/site"
	"nailsbyceline.se/salon-web/locales"
	"nailsbyceline.se/salon-web/public"
	"nailsbyceline.se/salon-web/templates"
)

const (
	DefaultLang    = "en"
	requestTimeout = 30 * time.Second
)

// SupportedLangs lists the locales with a complete string table.
var SupportedLangs = []string{"en", "sv"}

// staticRoutes are served from the public file system.
var staticRoutes = []string{"/css/*", "/js/*", "/images/*", "/favicon.svg", "/manifest.webmanifest"}

// App is the assembled site: every read-only input loaded and validated, and
// the router built on top of them.
type App struct {
	Config   config.Config
	Profile  catalog.Profile
	Site     *handlers.Site
	Bundle   *i18n.Bundle
	Manifest assetcache.Manifest
	Handler  http.Handler
	Logger   *zap.Logger
}

// Option customises Build.
type Option func(*buildOptions)

type buildOptions struct {
	logger  *zap.Logger
	now     func() time.Time
	profile *catalog.Profile
}

// WithLogger sets the base logger carried on each request context.
func WithLogger(logger *zap.Logger) Option {
	return func(o *buildOptions) { o.logger = logger }
}

// WithClock overrides time.Now for the sitemap date and footer year.
func WithClock(now func() time.Time) Option {
	return func(o *buildOptions) { o.now = now }
}

// WithProfile replaces the configured business profile.
func WithProfile(p catalog.Profile) Option {
	return func(o *buildOptions) { o.profile = &p }
}

// Build loads the catalog, locale tables, templates and legal documents and
// wires the router. Any failure is a startup error.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	options := buildOptions{logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = zap.NewNop()
	}

	profile, err := loadProfile(cfg, options.profile)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.New(profile)
	if err != nil {
		return nil, err
	}

	bundle, err := i18n.Load(locales.FS, DefaultLang, SupportedLangs)
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}

	var tmplFS fs.FS = templates.FS
	if cfg.Site.TemplatesDir != "" {
		tmplFS = os.DirFS(cfg.Site.TemplatesDir)
	}
	renderer, err := render.New(render.Options{FS: tmplFS, Dev: cfg.Dev})
	if err != nil {
		return nil, err
	}

	legalFS, err := content.LegalFS()
	if err != nil {
		return nil, fmt.Errorf("embed legal content: %w", err)
	}
	library, err := legal.Load(legalFS, DefaultLang)
	if err != nil {
		return nil, err
	}

	manifest := assetcache.DefaultManifest(cfg.Site.AssetVersion)
	s, err := handlers.New(handlers.Options{
		Catalog:      cat,
		Bundle:       bundle,
		Renderer:     renderer,
		Legal:        library,
		BaseURL:      resolveBaseURL(cfg, cat),
		AssetVersion: cfg.Site.AssetVersion,
		Analytics:    cfg.Analytics,
		Manifest:     &manifest,
		Now:          options.now,
	})
	if err != nil {
		return nil, err
	}

	staticFS, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}
	assets, err := mw.Assets(staticFS, mw.AssetOptions{
		Minify:   cfg.Site.MinifyAssets,
		NotFound: http.HandlerFunc(s.NotFound),
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Profile:  cat.Profile(),
		Site:     s,
		Bundle:   bundle,
		Manifest: manifest,
		Handler:  newRouter(s, bundle, assets, options.logger),
		Logger:   options.logger,
	}, nil
}

func loadProfile(cfg config.Config, override *catalog.Profile) (catalog.Profile, error) {
	switch {
	case override != nil:
		return *override, nil
	case cfg.Site.CatalogPath != "":
		return catalog.Load(cfg.Site.CatalogPath)
	}
	return catalog.Default(), nil
}

func resolveBaseURL(cfg config.Config, cat *catalog.Catalog) string {
	if cfg.Site.BaseURL != "" {
		return cfg.Site.BaseURL
	}
	if base := cat.BaseURL(); base != "" {
		return base
	}
	return "http://localhost:" + cfg.Server.Port
}

func newRouter(s *handlers.Site, bundle *i18n.Bundle, assets http.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(mw.InjectLogger(logger))
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.Locale(bundle))
	r.Use(mw.Logger)
	r.Use(mw.Recoverer)
	r.Use(mw.SecurityHeaders)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(chimw.GetHead)

	r.Get("/healthz", handlers.Healthz)

	for _, route := range site.Routes() {
		r.Get(route.Path, s.Page(route))
	}
	r.Get("/sitemap.xml", s.Sitemap)
	r.Get("/robots.txt", s.Robots)
	r.Get("/sw.js", s.ServiceWorker)

	for _, pattern := range staticRoutes {
		r.Get(pattern, assets.ServeHTTP)
	}

	// Registered last: every other path is the NotFound route.
	r.NotFound(s.NotFound)
	return r
}

// HTTPServer wraps the handler with the configured timeouts.
func (a *App) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           a.Handler,
		ReadHeaderTimeout: a.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       a.Config.Server.ReadTimeout,
		WriteTimeout:      a.Config.Server.WriteTimeout,
		IdleTimeout:       a.Config.Server.IdleTimeout,
	}
}
