package sitemap

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parsedSet struct {
	URLs []struct {
		Loc        string `xml:"loc"`
		LastMod    string `xml:"lastmod"`
		ChangeFreq string `xml:"changefreq"`
		Priority   string `xml:"priority"`
	} `xml:"url"`
}

func TestBuild(t *testing.T) {
	entries := []Entry{
		{Path: "/", ChangeFreq: "weekly", Priority: 1},
		{Path: "/services", ChangeFreq: "monthly", Priority: 0.9},
		{Path: "/terms-of-service", ChangeFreq: "yearly", Priority: 0.3},
	}
	// 23:30 in UTC-5 is already the next day in UTC.
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

	out, err := Build("https://nailsbyceline.se/", entries, now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), xml.Header))
	assert.Contains(t, string(out), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)

	var set parsedSet
	require.NoError(t, xml.Unmarshal(out, &set))
	require.Len(t, set.URLs, 3)
	assert.Equal(t, strings.Count(string(out), "<url>"), 3)

	assert.Equal(t, "https://nailsbyceline.se/", set.URLs[0].Loc)
	assert.Equal(t, "https://nailsbyceline.se/services", set.URLs[1].Loc)
	for _, u := range set.URLs {
		assert.True(t, strings.HasPrefix(u.Loc, "https://nailsbyceline.se"))
		assert.Equal(t, "2026-03-10", u.LastMod)
	}
	assert.Equal(t, "1.0", set.URLs[0].Priority)
	assert.Equal(t, "0.3", set.URLs[2].Priority)
	assert.Equal(t, "monthly", set.URLs[1].ChangeFreq)
}

func TestRobots(t *testing.T) {
	out := Robots("https://nailsbyceline.se/", DefaultDisallow)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "User-agent: *", lines[0])
	assert.Contains(t, lines, "Allow: /")
	assert.Contains(t, lines, "Disallow: /api/")
	assert.Contains(t, lines, "Disallow: /admin/")
	assert.Contains(t, lines, "Sitemap: https://nailsbyceline.se/sitemap.xml")
}
