package middleware

import (
	"net/http"

	"nailsbyceline.se/salon-web/internal/i18n"
)

// LangParam is the query parameter carrying the locale hint.
const LangParam = "lang"

// Locale resolves the request language from the `lang` query parameter and
// surfaces it as Content-Language. Unsupported values fall back silently.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := bundle.Resolve(r.URL.Query().Get(LangParam))
			w.Header().Set("Content-Language", res.Lang)
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), res)))
		})
	}
}

// Lang returns the resolved language for r, or fallback when the Locale
// middleware did not run.
func Lang(r *http.Request, fallback string) string {
	if res, ok := LocaleFromContext(r.Context()); ok && res.Lang != "" {
		return res.Lang
	}
	return fallback
}
