// Package templates embeds the HTML views. Pages under pages/ define
// "content"; the layout defines "base".
package templates

import "embed"

//go:embed layout/*.tmpl partials/*.tmpl pages/*.tmpl
var FS embed.FS
