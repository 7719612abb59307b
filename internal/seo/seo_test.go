package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nailsbyceline.se/salon-web/internal/catalog"
)

func TestAbsolute(t *testing.T) {
	assert.Equal(t, "https://example.com/", Absolute("https://example.com/", "/"))
	assert.Equal(t, "https://example.com/services", Absolute("https://example.com", "services"))
	assert.Equal(t, "https://example.com/gallery", Absolute("https://example.com//", "/gallery"))
}

func TestAlternates(t *testing.T) {
	alts := Alternates("https://example.com", "/services", []string{"en", "sv"}, "en")
	require.Len(t, alts, 3)
	assert.Equal(t, Alternate{Href: "https://example.com/services", Hreflang: "en"}, alts[0])
	assert.Equal(t, Alternate{Href: "https://example.com/services?lang=sv", Hreflang: "sv"}, alts[1])
	assert.Equal(t, "x-default", alts[2].Hreflang)
}

func TestNailSalonSchema(t *testing.T) {
	p := catalog.Default()
	p.Reviews = &catalog.Reviews{Rating: 4.9, Count: 12, Best: 5, Worst: 1}

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(JSON(NailSalon(p, "https://nailsbyceline.se/", true))), &doc))

	assert.Equal(t, "NailSalon", doc["@type"])
	assert.Equal(t, "+46 76-709 84 88", doc["telephone"])
	assert.Len(t, doc["openingHoursSpecification"], 7)
	assert.Len(t, doc["sameAs"], 2)
	rating := doc["aggregateRating"].(map[string]any)
	assert.Equal(t, 4.9, rating["ratingValue"])
	offers := doc["hasOfferCatalog"].(map[string]any)["itemListElement"].([]any)
	require.Len(t, offers, 4)
	first := offers[0].(map[string]any)["itemOffered"].(map[string]any)
	assert.Equal(t, p.Services[0].Keywords, first["keywords"])
}

func TestNailSalonWithoutOptionalBlocks(t *testing.T) {
	p := catalog.Default()
	p.SEO = nil
	p.Location = nil
	p.Social = nil

	m := NailSalon(p, "", false)
	assert.NotContains(t, m, "address")
	assert.NotContains(t, m, "sameAs")
	assert.NotContains(t, m, "hasOfferCatalog")
	assert.NotContains(t, m, "aggregateRating")
}

func TestJSONEscapesMarkup(t *testing.T) {
	out := JSON(WebSite("</script><b>", "https://example.com/", "en"))
	assert.False(t, strings.Contains(out, "</script>"))
}

func TestBreadcrumbList(t *testing.T) {
	m := BreadcrumbList([]BreadcrumbItem{{Name: "Home", Item: "https://x/"}, {Name: "Gallery", Item: "https://x/gallery"}})
	items := m["itemListElement"].([]map[string]any)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[1]["position"])
}
