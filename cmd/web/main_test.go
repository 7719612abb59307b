package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SALON_WEB_BASE_URL", "https://nailsbyceline.se")
	t.Setenv("LOG_LEVEL", "")

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"salon-web"}, args...))
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var coder cli.ExitCoder
	require.True(t, errors.As(err, &coder), "expected cli.ExitCoder, got %T", err)
	return coder.ExitCode()
}

func TestSitemapCommand(t *testing.T) {
	out, err := runCLI(t, "sitemap")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Equal(t, 5, strings.Count(out, "<url>"))
	assert.Contains(t, out, "<loc>https://nailsbyceline.se/services</loc>")
}

func TestRobotsCommand(t *testing.T) {
	out, err := runCLI(t, "robots")
	require.NoError(t, err)
	assert.Contains(t, out, "User-agent: *")
	assert.Contains(t, out, "Sitemap: https://nailsbyceline.se/sitemap.xml")
}

func TestCheckCommandRendersEveryPage(t *testing.T) {
	out, err := runCLI(t, "check")
	require.NoError(t, err)
	for _, want := range []string{"✅ / [en]", "✅ /services [sv]", "✅ /terms-of-service [en]", "All pages rendered successfully."} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "❌")
}

func TestCheckCommandReportsBadConfig(t *testing.T) {
	t.Setenv("SALON_WEB_PORT", "70000")
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{"salon-web", "check"})
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out.String(), "❌ startup")
}

func TestVerifyAssetsInProcess(t *testing.T) {
	out, err := runCLI(t, "verify-assets")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ /css/styles.css")
	assert.Contains(t, out, "installed nailsbyceline-v1 (3 entries)")
	assert.NotContains(t, out, "pruned")
}

func TestVerifyAssetsUsesAssetVersion(t *testing.T) {
	t.Setenv("SALON_WEB_ASSET_VERSION", "v2")
	out, err := runCLI(t, "verify-assets")
	require.NoError(t, err)
	assert.Contains(t, out, "installed nailsbyceline-v2 (3 entries)")
}

func TestVerifyAssetsFailsWhenAnyAssetIsMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/images/og-image.jpg" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)

	out, err := runCLI(t, "verify-assets", "--base-url", srv.URL)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.NotContains(t, out, "installed")
	assert.Contains(t, err.Error(), "/images/og-image.jpg")
}
