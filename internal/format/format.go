package format

import (
	"strings"
	"time"
)

// FmtDate formats t in a locale-friendly form.
// Example: FmtDate(t, "sv") => "2025-01-10", FmtDate(t, "en") => "January 10, 2025"
func FmtDate(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	switch strings.ToLower(lang) {
	case "sv":
		return t.Format("2006-01-02")
	default:
		return t.Format("January 2, 2006")
	}
}

// FmtTimeRange joins opening and closing times with an en dash.
func FmtTimeRange(opens, closes string) string {
	opens, closes = strings.TrimSpace(opens), strings.TrimSpace(closes)
	switch {
	case opens == "" && closes == "":
		return ""
	case closes == "":
		return opens
	case opens == "":
		return closes
	}
	return opens + "–" + closes
}

// ISODate formats t as YYYY-MM-DD for machine-readable attributes.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
