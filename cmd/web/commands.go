package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"nailsbyceline.se/salon-web/internal/assetcache"
	"nailsbyceline.se/salon-web/internal/config"
	"nailsbyceline.se/salon-web/internal/handlers"
	"nailsbyceline.se/salon-web/internal/observability"
	"nailsbyceline.se/salon-web/internal/server"
	"nailsbyceline.se/salon-web/internal/site"
	"nailsbyceline.se/salon-web/internal/sitemap"
)

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "addr", Usage: "HTTP listen address (default from SALON_WEB_PORT / PORT)"},
		&cli.BoolFlag{Name: "dev", Usage: "re-parse templates on every request"},
	}
}

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the web server",
	Flags:  serveFlags(),
	Action: serve,
}

var sitemapCommand = &cli.Command{
	Name:  "sitemap",
	Usage: "Print sitemap.xml for today",
	Action: func(c *cli.Context) error {
		app, err := buildApp()
		if err != nil {
			return cli.Exit(err, 1)
		}
		body, err := sitemap.Build(app.Site.BaseURL(), handlers.SitemapEntries(), time.Now())
		if err != nil {
			return cli.Exit(err, 1)
		}
		_, err = c.App.Writer.Write(body)
		return err
	},
}

var robotsCommand = &cli.Command{
	Name:  "robots",
	Usage: "Print robots.txt",
	Action: func(c *cli.Context) error {
		app, err := buildApp()
		if err != nil {
			return cli.Exit(err, 1)
		}
		_, err = fmt.Fprint(c.App.Writer, sitemap.Robots(app.Site.BaseURL(), sitemap.DefaultDisallow))
		return err
	},
}

var checkCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate configuration, catalog, locales and templates, then render every page",
	Action: func(c *cli.Context) error {
		app, err := buildApp()
		if err != nil {
			fmt.Fprintf(c.App.Writer, "❌ startup: %v\n", err)
			return cli.Exit("check failed", 1)
		}
		w := c.App.Writer
		failed := false

		for _, lang := range app.Bundle.Supported() {
			if missing := app.Bundle.Missing(lang); len(missing) > 0 {
				failed = true
				fmt.Fprintf(w, "❌ locale %s missing keys: %s\n", lang, strings.Join(missing, ", "))
			}
		}

		for _, lang := range app.Bundle.Supported() {
			for _, route := range site.Routes() {
				status := renderStatus(app.Handler, route.Path+"?lang="+lang)
				if status != http.StatusOK {
					failed = true
					fmt.Fprintf(w, "❌ %s [%s] → %d\n", route.Path, lang, status)
					continue
				}
				fmt.Fprintf(w, "✅ %s [%s]\n", route.Path, lang)
			}
		}
		if status := renderStatus(app.Handler, "/__check-not-found"); status != http.StatusNotFound {
			failed = true
			fmt.Fprintf(w, "❌ not found page → %d\n", status)
		}

		if failed {
			return cli.Exit("check failed", 1)
		}
		fmt.Fprintln(w, "All pages rendered successfully.")
		return nil
	},
}

var verifyAssetsCommand = &cli.Command{
	Name:  "verify-assets",
	Usage: "Precache the service worker manifest against a running site (or an in-process one)",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "base-url", Usage: "site to fetch from; empty starts the site on a local port"},
		&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "overall deadline"},
	},
	Action: func(c *cli.Context) error {
		app, err := buildApp()
		if err != nil {
			return cli.Exit(err, 1)
		}
		ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
		defer cancel()

		base := strings.TrimSpace(c.String("base-url"))
		if base == "" {
			ln, err := net.Listen("tcp", "127.0.0.1:0")
			if err != nil {
				return cli.Exit(err, 1)
			}
			srv := &http.Server{Handler: app.Handler, ReadHeaderTimeout: app.Config.Server.ReadHeaderTimeout}
			go func() { _ = srv.Serve(ln) }()
			defer srv.Close()
			base = "http://" + ln.Addr().String()
		}

		store := assetcache.NewMemoryStore()
		inst, err := assetcache.NewInstaller(assetcache.HTTPFetcher{BaseURL: base}, store, assetcache.WithLogger(app.Logger))
		if err != nil {
			return cli.Exit(err, 1)
		}
		if err := inst.Install(ctx, app.Manifest); err != nil {
			return cli.Exit(err, 1)
		}
		for _, stale := range inst.Activate(app.Manifest) {
			fmt.Fprintf(c.App.Writer, "pruned %s\n", stale)
		}
		name := app.Manifest.CacheName()
		for _, u := range store.Keys(name) {
			fmt.Fprintf(c.App.Writer, "✅ %s\n", u)
		}
		fmt.Fprintf(c.App.Writer, "installed %s (%d entries)\n", name, len(store.Keys(name)))
		return nil
	},
}

func renderStatus(h http.Handler, target string) int {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec.Code
}

// buildApp assembles the site for the offline commands. They log nothing so
// stdout stays clean for redirection.
func buildApp() (*server.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return server.Build(cfg)
}

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.Bool("dev") {
		cfg.Dev = true
	}
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := server.Build(cfg, server.WithLogger(logger))
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}
	srv := app.HTTPServer()
	if addr := c.String("addr"); addr != "" {
		srv.Addr = addr
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("web listening",
		zap.String("addr", srv.Addr),
		zap.Bool("dev", cfg.Dev),
		zap.String("base_url", app.Site.BaseURL()),
		zap.String("cache", app.Manifest.CacheName()),
	)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("http server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
