// Package legal loads the localized policy documents shown on the legal pages.
package legal

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// ErrNotFound is returned when no document exists for a slug in any language.
var ErrNotFound = errors.New("legal: document not found")

// Page is a rendered legal document.
type Page struct {
	Slug          string
	Lang          string
	Title         string
	Summary       string
	HTML          template.HTML
	EffectiveDate time.Time
	UpdatedAt     time.Time
	Version       string
	SEO           SEO
}

// SEO holds optional metadata overrides for a document.
type SEO struct {
	Title       string
	Description string
}

type frontMatter struct {
	Title         string `yaml:"title"`
	Summary       string `yaml:"summary"`
	Lang          string `yaml:"lang"`
	EffectiveDate string `yaml:"effective_date"`
	UpdatedAt     string `yaml:"updated_at"`
	Version       string `yaml:"version"`
	SEO           struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"seo"`
}

// Library holds every document rendered once at load time. It is read-only.
type Library struct {
	pages    map[string]Page
	fallback string
}

var headingID = regexp.MustCompile(`^[a-z0-9-]+$`)

// Load walks fsys for files laid out as <lang>/<slug>.md and renders them.
func Load(fsys fs.FS, fallback string) (*Library, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").Matching(headingID).OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	lib := &Library{pages: map[string]Page{}, fallback: fallback}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}
		lang, slug, ok := splitDocPath(p)
		if !ok {
			return nil
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		page, err := renderDocument(md, policy, raw, slug, lang)
		if err != nil {
			return fmt.Errorf("legal: %s: %w", p, err)
		}
		lib.pages[key(page.Lang, slug)] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lib, nil
}

func splitDocPath(p string) (lang, slug string, ok bool) {
	parts := strings.Split(p, "/")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".md"), true
}

func renderDocument(md goldmark.Markdown, policy *bluemonday.Policy, raw []byte, slug, lang string) (Page, error) {
	var front frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &front)
	if err != nil {
		return Page{}, fmt.Errorf("parse front matter: %w", err)
	}
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("render markdown: %w", err)
	}
	page := Page{
		Slug:          slug,
		Lang:          firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:         strings.TrimSpace(front.Title),
		Summary:       strings.TrimSpace(front.Summary),
		HTML:          template.HTML(policy.SanitizeBytes(buf.Bytes())),
		EffectiveDate: parseDate(front.EffectiveDate),
		UpdatedAt:     parseDate(front.UpdatedAt),
		Version:       strings.TrimSpace(front.Version),
		SEO: SEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
		},
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

// Page returns the document for slug in lang, falling back to the default language.
func (l *Library) Page(slug, lang string) (Page, error) {
	for _, candidate := range []string{lang, l.fallback} {
		if p, ok := l.pages[key(candidate, slug)]; ok {
			return p, nil
		}
	}
	return Page{}, ErrNotFound
}

// Has reports whether slug exists in the default language.
func (l *Library) Has(slug string) bool {
	_, ok := l.pages[key(l.fallback, slug)]
	return ok
}

func key(lang, slug string) string { return lang + "|" + slug }

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
