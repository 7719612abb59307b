package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"nailsbyceline.se/salon-web/internal/i18n"
	"nailsbyceline.se/salon-web/locales"
)

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestLocaleFromQuery(t *testing.T) {
	bundle, err := i18n.Load(locales.FS, "en", []string{"en", "sv"})
	require.NoError(t, err)

	var got i18n.Resolution
	h := Locale(bundle)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = LocaleFromContext(r.Context())
		require.True(t, ok)
	}))

	cases := []struct {
		target, lang, other string
	}{
		{"/?lang=sv", "sv", "en"},
		{"/?lang=SV-se", "sv", "en"},
		{"/?lang=xx", "en", "sv"},
		{"/", "en", "sv"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
		assert.Equal(t, tc.lang, got.Lang, tc.target)
		assert.Equal(t, tc.other, got.Other, tc.target)
		assert.Equal(t, tc.lang, rec.Header().Get("Content-Language"), tc.target)
	}
}

func TestLangWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "en", Lang(req, "en"))
}

func assetFS() fstest.MapFS {
	return fstest.MapFS{
		"css/styles.css":       {Data: []byte("body {\n  color: red;\n}\n")},
		"js/site.js":           {Data: []byte("(function () {\n  var answer = 42;\n  console.log(answer);\n})();\n")},
		"images/og-image.jpg":  {Data: []byte{0xff, 0xd8, 0xff, 0xd9}},
		"manifest.webmanifest": {Data: []byte(`{"name":"x"}`)},
	}
}

func TestAssetsHeaders(t *testing.T) {
	h, err := Assets(assetFS(), AssetOptions{})
	require.NoError(t, err)

	cases := map[string]string{
		"/css/styles.css":       "text/css; charset=utf-8",
		"/js/site.js":           "application/javascript; charset=utf-8",
		"/images/og-image.jpg":  "image/jpeg",
		"/manifest.webmanifest": "application/manifest+json",
	}
	for target, ctype := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, ctype, rec.Header().Get("Content-Type"), target)
		assert.Equal(t, "public, max-age=31536000", rec.Header().Get("Cache-Control"), target)
		assert.True(t, strings.HasPrefix(rec.Header().Get("ETag"), `W/"`), target)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/styles.css", nil))
	assert.Equal(t, "body {\n  color: red;\n}\n", rec.Body.String())
}

func TestAssetsNotModified(t *testing.T) {
	h, err := Assets(assetFS(), AssetOptions{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/styles.css", nil))
	tag := rec.Header().Get("ETag")
	require.NotEmpty(t, tag)

	req := httptest.NewRequest(http.MethodGet, "/css/styles.css", nil)
	req.Header.Set("If-None-Match", tag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAssetsNotFound(t *testing.T) {
	h, err := Assets(assetFS(), AssetOptions{NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("custom"))
	})})
	require.NoError(t, err)

	for _, target := range []string{"/css/missing.css", "/css/", "/images"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "custom", rec.Body.String(), target)
	}
}

func TestAssetsMinify(t *testing.T) {
	h, err := Assets(assetFS(), AssetOptions{Minify: true})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/styles.css", nil))
	assert.Equal(t, "body{color:red}", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/js/site.js", nil))
	assert.Less(t, rec.Body.Len(), len(assetFS()["js/site.js"].Data))
	assert.Equal(t, "application/javascript; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	r := chi.NewRouter()
	r.Use(InjectLogger(logger))
	r.Use(Logger)
	r.Use(Recoverer)
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	r.NotFound(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) })

	for _, target := range []string{"/ok", "/missing", "/boom"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 3)
	assert.Equal(t, zapcore.InfoLevel, completed[0].Level)
	assert.Equal(t, "/ok", completed[0].ContextMap()["route"])
	assert.Equal(t, int64(2), completed[0].ContextMap()["bytes"])
	assert.Equal(t, zapcore.WarnLevel, completed[1].Level)
	assert.Equal(t, int64(http.StatusNotFound), completed[1].ContextMap()["status"])
	assert.Equal(t, zapcore.ErrorLevel, completed[2].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), completed[2].ContextMap()["status"])

	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
