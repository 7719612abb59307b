package seo

import (
	"net/url"
	"strings"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Alternate is an hreflang link to the same page in another language.
type Alternate struct {
	Href     string
	Hreflang string
}

type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
}

// Absolute joins base and path into an absolute URL.
func Absolute(base, path string) string {
	base = strings.TrimRight(base, "/")
	if path == "" || path == "/" {
		return base + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// LocalizedURL returns the absolute URL of path in lang. The default language
// has no query parameter so it matches the canonical URL.
func LocalizedURL(base, path, lang, defaultLang string) string {
	abs := Absolute(base, path)
	if lang == "" || lang == defaultLang {
		return abs
	}
	return abs + "?" + url.Values{"lang": {lang}}.Encode()
}

// Alternates builds hreflang links for every language plus x-default.
func Alternates(base, path string, langs []string, defaultLang string) []Alternate {
	out := make([]Alternate, 0, len(langs)+1)
	for _, l := range langs {
		out = append(out, Alternate{Href: LocalizedURL(base, path, l, defaultLang), Hreflang: l})
	}
	out = append(out, Alternate{Href: Absolute(base, path), Hreflang: "x-default"})
	return out
}
