// Package content embeds the markdown documents served by the site.
package content

import (
	"embed"
	"io/fs"
)

//go:embed legal
var files embed.FS

// LegalFS returns the legal documents laid out as <lang>/<slug>.md.
func LegalFS() (fs.FS, error) {
	return fs.Sub(files, "legal")
}
