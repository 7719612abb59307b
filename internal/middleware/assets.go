package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minjs "github.com/tdewolff/minify/v2/js"
)

const (
	assetCacheControl = "public, max-age=31536000"
	cssContentType    = "text/css; charset=utf-8"
	jsContentType     = "application/javascript; charset=utf-8"
)

// AssetOptions configures the static asset handler.
type AssetOptions struct {
	// Minify serves minified CSS and JavaScript.
	Minify bool
	// NotFound answers paths that do not name a file. Defaults to http.NotFound.
	NotFound http.Handler
}

type asset struct {
	body        []byte
	etag        string
	contentType string
}

// Assets serves the files in fsys byte-exact (or minified when enabled) with a
// one year public Cache-Control, explicit CSS/JS content types and weak ETags.
// Files are read once up front.
func Assets(fsys fs.FS, opts AssetOptions) (http.Handler, error) {
	var m *minify.M
	if opts.Minify {
		m = minify.New()
		m.AddFunc("text/css", mincss.Minify)
		m.AddFunc("application/javascript", minjs.Minify)
	}

	files := map[string]asset{}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		ctype := assetContentType(p)
		if m != nil && (strings.HasSuffix(p, ".css") || strings.HasSuffix(p, ".js")) {
			mediaType, _, _ := mime.ParseMediaType(ctype)
			minified, err := m.Bytes(mediaType, body)
			if err != nil {
				return fmt.Errorf("minify %s: %w", p, err)
			}
			body = minified
		}
		files["/"+p] = asset{body: body, etag: etag(body), contentType: ctype}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	notFound := opts.NotFound
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, ok := files[path.Clean("/"+r.URL.Path)]
		if !ok {
			notFound.ServeHTTP(w, r)
			return
		}
		h := w.Header()
		h.Set("Cache-Control", assetCacheControl)
		h.Set("Vary", "Accept-Encoding")
		h.Set("ETag", a.etag)
		if a.contentType != "" {
			h.Set("Content-Type", a.contentType)
		}
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == a.etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		http.ServeContent(w, r, path.Base(r.URL.Path), time.Time{}, bytes.NewReader(a.body))
	}), nil
}

func assetContentType(p string) string {
	switch path.Ext(p) {
	case ".css":
		return cssContentType
	case ".js":
		return jsContentType
	case ".webmanifest":
		return "application/manifest+json"
	}
	return mime.TypeByExtension(path.Ext(p))
}

func etag(body []byte) string {
	sum := sha256.Sum256(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}
