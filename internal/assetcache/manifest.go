// Package assetcache describes the browser-side precache: which URLs are
// stored under which versioned cache name, the service worker that installs
// them, and a server-side installer with the same all-or-nothing contract.
package assetcache

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultPrefix names the site's caches. Bumping the version invalidates them.
const DefaultPrefix = "nailsbyceline"

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Manifest enumerates the URLs precached under one versioned cache.
type Manifest struct {
	Prefix  string
	Version string
	URLs    []string
}

// DefaultManifest precaches the root document, the stylesheet and the preview image.
func DefaultManifest(version string) Manifest {
	return Manifest{
		Prefix:  DefaultPrefix,
		Version: version,
		URLs:    []string{"/", "/css/styles.css", "/images/og-image.jpg"},
	}
}

// CacheName returns prefix-version, e.g. nailsbyceline-v1.
func (m Manifest) CacheName() string {
	return m.Prefix + "-" + m.Version
}

// Validate checks the manifest can be embedded in a service worker.
func (m Manifest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Prefix, validation.Required, validation.Match(tokenPattern)),
		validation.Field(&m.Version, validation.Required, validation.Match(tokenPattern)),
		validation.Field(&m.URLs, validation.Required, validation.Each(validation.Required, validation.By(sitePath))),
	)
}

func sitePath(v any) error {
	s, _ := v.(string)
	if !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") {
		return validation.NewError("validation_site_path", "must be a site-relative path")
	}
	return nil
}
