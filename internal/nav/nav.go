package nav

import (
	"net/url"
	"strings"

	"nailsbyceline.se/salon-web/internal/site"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/services"
	LabelKey string // i18n key, e.g. "nav.services"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href     string
	Path     string
	LabelKey string
	Active   bool
}

// Main returns the primary navigation derived from the route table.
func Main() []Item {
	var items []Item
	for _, r := range site.Routes() {
		if r.InNav {
			items = append(items, Item{Path: r.Path, LabelKey: r.LabelKey})
		}
	}
	return items
}

// Footer returns the secondary links shown in the page footer.
func Footer() []Item {
	var items []Item
	for _, r := range site.Routes() {
		if !r.InNav {
			items = append(items, Item{Path: r.Path, LabelKey: r.LabelKey})
		}
	}
	return items
}

// Build renders items with active state given the current path. Links carry
// the lang query parameter when lang is not the default language.
func Build(items []Item, currentPath, lang, defaultLang string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		out = append(out, RenderedItem{
			Href:     Href(it.Path, lang, defaultLang),
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return out
}

// Href returns a site-relative link to path in lang.
func Href(path, lang, defaultLang string) string {
	if lang == "" || lang == defaultLang {
		return path
	}
	return path + "?" + url.Values{"lang": {lang}}.Encode()
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds Home > current page. The home page yields a single crumb.
func Breadcrumbs(route site.Route, lang, defaultLang string) []Crumb {
	home := Crumb{Href: Href("/", lang, defaultLang), Path: "/", LabelKey: "nav.home"}
	if route.Path == "/" {
		home.Active = true
		return []Crumb{home}
	}
	return []Crumb{home, {
		Href:     Href(route.Path, lang, defaultLang),
		Path:     route.Path,
		LabelKey: route.LabelKey,
		Active:   true,
	}}
}
