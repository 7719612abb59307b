// Package locales embeds the display string tables, one JSON file per language.
package locales

import "embed"

//go:embed *.json
var FS embed.FS
