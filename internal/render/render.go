// Package render executes the site's HTML views.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/sprig/v3"

	"nailsbyceline.se/salon-web/internal/format"
)

// Options configures a Renderer.
type Options struct {
	// FS holds layout/*.tmpl, partials/*.tmpl and pages/<view>.tmpl.
	FS fs.FS
	// Dev re-parses templates on every render.
	Dev   bool
	Funcs template.FuncMap
}

// Renderer executes the "base" layout with a page's "content" block.
type Renderer struct {
	fsys  fs.FS
	dev   bool
	funcs template.FuncMap
	views map[string]*template.Template
}

// New parses every view once. Parse failures are returned so the caller can abort startup.
func New(opts Options) (*Renderer, error) {
	if opts.FS == nil {
		return nil, fmt.Errorf("render: no template filesystem")
	}
	funcs := sprig.HtmlFuncMap()
	for k, v := range defaultFuncs() {
		funcs[k] = v
	}
	for k, v := range opts.Funcs {
		funcs[k] = v
	}
	r := &Renderer{fsys: opts.FS, dev: opts.Dev, funcs: funcs}
	views, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.views = views
	return r, nil
}

func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// jsonld embeds v inside a <script type="application/ld+json"> element.
		"jsonld": func(v any) (template.JS, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return template.JS(b), nil
		},
		// literal escapes only <>&'" so text such as "+46" stays byte-exact.
		"literal": func(s string) template.HTML {
			return template.HTML(template.HTMLEscapeString(s))
		},
		"date":      format.FmtDate,
		"isodate":   format.ISODate,
		"timerange": format.FmtTimeRange,
	}
}

func (r *Renderer) parse() (map[string]*template.Template, error) {
	patterns := []string{"layout/*.tmpl"}
	if partials, _ := fs.Glob(r.fsys, "partials/*.tmpl"); len(partials) > 0 {
		patterns = append(patterns, "partials/*.tmpl")
	}
	base, err := template.New("_root").Funcs(r.funcs).ParseFS(r.fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("render: parse layout: %w", err)
	}
	if base.Lookup("base") == nil {
		return nil, fmt.Errorf("render: layout does not define \"base\"")
	}
	pages, err := fs.Glob(r.fsys, "pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: list pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("render: no page templates found")
	}
	views := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		name := strings.TrimSuffix(path.Base(p), ".tmpl")
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("render: clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(r.fsys, p); err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", p, err)
		}
		views[name] = t
	}
	return views, nil
}

// Views lists the parsed view names.
func (r *Renderer) Views() []string {
	out := make([]string, 0, len(r.views))
	for k := range r.views {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Has reports whether view exists.
func (r *Renderer) Has(view string) bool {
	_, ok := r.views[view]
	return ok
}

// Execute writes view rendered with data to w.
func (r *Renderer) Execute(w io.Writer, view string, data any) error {
	views := r.views
	if r.dev {
		fresh, err := r.parse()
		if err != nil {
			return err
		}
		views = fresh
	}
	t, ok := views[view]
	if !ok {
		return fmt.Errorf("render: unknown view %q", view)
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render: execute %s: %w", view, err)
	}
	return nil
}

// Render executes view into a buffer before writing headers, status and body.
func (r *Renderer) Render(w http.ResponseWriter, status int, view string, data any) error {
	var buf bytes.Buffer
	if err := r.Execute(&buf, view, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
