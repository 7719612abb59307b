package middleware

import (
	"context"

	"nailsbyceline.se/salon-web/internal/i18n"
)

// context keys are unexported to avoid collisions
type ctxKey string

const ctxKeyLocale ctxKey = "locale"

// WithLocale stores the resolved locale in context.
func WithLocale(ctx context.Context, res i18n.Resolution) context.Context {
	return context.WithValue(ctx, ctxKeyLocale, res)
}

// LocaleFromContext returns the locale resolved for this request, if any.
func LocaleFromContext(ctx context.Context) (i18n.Resolution, bool) {
	v, ok := ctx.Value(ctxKeyLocale).(i18n.Resolution)
	return v, ok
}
