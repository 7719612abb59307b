package legal

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nailsbyceline.se/salon-web/content"
)

func TestLoadRendersMarkdown(t *testing.T) {
	fsys := fstest.MapFS{
		"en/privacy-policy.md": {Data: []byte("---\ntitle: Privacy\neffective_date: \"2025-02-01\"\nseo:\n  title: Privacy | Test\n---\n\n## Data we keep\n\nOnly **bookings**.\n")},
		"en/cookies.md":        {Data: []byte("No front matter here.\n")},
		"sv/privacy-policy.md": {Data: []byte("---\ntitle: Integritet\n---\n\nText.\n")},
		"README.txt":           {Data: []byte("ignored")},
	}
	lib, err := Load(fsys, "en")
	require.NoError(t, err)

	p, err := lib.Page("privacy-policy", "en")
	require.NoError(t, err)
	assert.Equal(t, "Privacy", p.Title)
	assert.Equal(t, "Privacy | Test", p.SEO.Title)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), p.EffectiveDate)
	assert.Contains(t, string(p.HTML), `<h2 id="data-we-keep">Data we keep</h2>`)
	assert.Contains(t, string(p.HTML), "<strong>bookings</strong>")

	cookies, err := lib.Page("cookies", "en")
	require.NoError(t, err)
	assert.Equal(t, "Cookies", cookies.Title, "title falls back to the slug")

	sv, err := lib.Page("privacy-policy", "sv")
	require.NoError(t, err)
	assert.Equal(t, "Integritet", sv.Title)
}

func TestPageFallsBackToDefaultLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"en/terms-of-service.md": {Data: []byte("# Terms\n")},
	}
	lib, err := Load(fsys, "en")
	require.NoError(t, err)

	p, err := lib.Page("terms-of-service", "sv")
	require.NoError(t, err)
	assert.Equal(t, "en", p.Lang)

	_, err = lib.Page("missing", "en")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadSanitizesHTML(t *testing.T) {
	fsys := fstest.MapFS{
		"en/x.md": {Data: []byte("Hello <script>alert(1)</script> <a href=\"javascript:alert(1)\">link</a>\n")},
	}
	lib, err := Load(fsys, "en")
	require.NoError(t, err)
	p, err := lib.Page("x", "en")
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(p.HTML), "<script>"))
	assert.False(t, strings.Contains(string(p.HTML), "javascript:"))
}

func TestShippedDocuments(t *testing.T) {
	fsys, err := content.LegalFS()
	require.NoError(t, err)
	lib, err := Load(fsys, "en")
	require.NoError(t, err)

	for _, slug := range []string{"privacy-policy", "terms-of-service"} {
		for _, lang := range []string{"en", "sv"} {
			p, err := lib.Page(slug, lang)
			require.NoError(t, err, "%s/%s", lang, slug)
			assert.Equal(t, lang, p.Lang)
			assert.NotEmpty(t, p.Title)
			assert.NotEmpty(t, p.HTML)
			assert.False(t, p.EffectiveDate.IsZero())
		}
		assert.True(t, lib.Has(slug))
	}
}
