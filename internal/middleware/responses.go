package middleware

import "net/http"

// writeError answers with a plain-text status body unless headers are already out.
func writeError(w http.ResponseWriter, code int) {
	http.Error(w, http.StatusText(code), code)
}
