package seo

import (
	"encoding/json"

	"nailsbyceline.se/salon-web/internal/catalog"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, inLanguage string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if inLanguage != "" {
		m["inLanguage"] = inLanguage
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// NailSalon describes the business as a schema.org NailSalon. When withOffers is
// set the service list is attached as an OfferCatalog.
func NailSalon(p catalog.Profile, url string, withOffers bool) map[string]any {
	m := map[string]any{
		"@context":  "https://schema.org",
		"@type":     "NailSalon",
		"name":      p.Name,
		"telephone": p.Phone,
	}
	if url != "" {
		m["url"] = url
	}
	if p.Email != "" {
		m["email"] = p.Email
	}
	if p.Tagline != "" {
		m["slogan"] = p.Tagline
	}
	if p.SEO != nil {
		if p.SEO.Description != "" {
			m["description"] = p.SEO.Description
		}
		if p.SEO.ImageURL != "" {
			m["image"] = p.SEO.ImageURL
		}
	}
	if l := p.Location; l != nil {
		addr := map[string]any{"@type": "PostalAddress"}
		setIf(addr, "streetAddress", l.Address)
		setIf(addr, "addressLocality", l.City)
		setIf(addr, "addressRegion", l.Region)
		setIf(addr, "postalCode", l.PostalCode)
		setIf(addr, "addressCountry", l.Country)
		m["address"] = addr
	}
	if len(p.Hours.Schedule) > 0 {
		specs := make([]map[string]any, 0, len(p.Hours.Schedule))
		for _, h := range p.Hours.Schedule {
			specs = append(specs, map[string]any{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": "https://schema.org/" + h.Day,
				"opens":     h.Opens,
				"closes":    h.Closes,
			})
		}
		m["openingHoursSpecification"] = specs
	}
	if links := p.SocialLinks(); len(links) > 0 {
		same := make([]string, 0, len(links))
		for _, l := range links {
			if l.URL != "" {
				same = append(same, l.URL)
			}
		}
		if len(same) > 0 {
			m["sameAs"] = same
		}
	}
	if r := p.Reviews; r != nil && r.Count > 0 {
		m["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": r.Rating,
			"reviewCount": r.Count,
			"bestRating":  r.Best,
			"worstRating": r.Worst,
		}
	}
	if withOffers && len(p.Services) > 0 {
		offers := make([]map[string]any, 0, len(p.Services))
		for _, s := range p.Services {
			svc := map[string]any{
				"@type": "Service",
				"name":  s.Name,
			}
			setIf(svc, "description", s.Description)
			setIf(svc, "keywords", s.Keywords)
			offers = append(offers, map[string]any{
				"@type":       "Offer",
				"itemOffered": svc,
				"description": s.Price,
			})
		}
		m["hasOfferCatalog"] = map[string]any{
			"@type":           "OfferCatalog",
			"name":            "Services",
			"itemListElement": offers,
		}
	}
	return m
}

func setIf(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
