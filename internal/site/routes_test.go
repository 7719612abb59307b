package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupExactMatch(t *testing.T) {
	assert.Equal(t, "home", Lookup("/").View)
	assert.Equal(t, "services", Lookup("/services").View)
	assert.Equal(t, "terms-of-service", Lookup("/terms-of-service").Slug)
}

func TestLookupFallsThroughToNotFound(t *testing.T) {
	for _, p := range []string{"", "/services/", "/Services", "/gallery/1", "/nope"} {
		r := Lookup(p)
		assert.Equal(t, KindNotFound, r.Kind, "path %q", p)
		assert.Equal(t, "notfound", r.View)
	}
}

func TestRoutesReturnsCopy(t *testing.T) {
	rs := Routes()
	rs[0].Path = "/changed"
	assert.Equal(t, "/", Routes()[0].Path)
}

func TestViews(t *testing.T) {
	assert.Equal(t, []string{"home", "services", "gallery", "legal", "notfound"}, Views())
}
