// Package sitemap renders sitemap.xml and robots.txt for the site.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nailsbyceline.se/salon-web/internal/seo"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Entry is one indexable page.
type Entry struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlEntry
}

type urlEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority"`
}

// Build renders the sitemap. lastmod is the UTC date of now.
func Build(baseURL string, entries []Entry, now time.Time) ([]byte, error) {
	lastmod := now.UTC().Format("2006-01-02")
	set := urlSet{Xmlns: xmlns, URLs: make([]urlEntry, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        seo.Absolute(baseURL, e.Path),
			LastMod:    lastmod,
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("sitemap: encode: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// DefaultDisallow lists the path prefixes crawlers are asked to skip.
var DefaultDisallow = []string{"/api/", "/admin/"}

// Robots renders robots.txt allowing everything except disallow and pointing
// crawlers at the sitemap.
func Robots(baseURL string, disallow []string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, d := range disallow {
		b.WriteString("Disallow: " + d + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Sitemap: " + strings.TrimRight(baseURL, "/") + "/sitemap.xml\n")
	return b.String()
}
