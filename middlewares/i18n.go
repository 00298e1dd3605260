package middlewares

import (
	"context"
	"net/http"

	"github.com/oneshotleague/formrelay/pkg/i18n"
)

// translatorKey is the context key for storing the request translator.
type translatorKey struct{}

// Language returns middleware that resolves the request language from the
// Accept-Language header and stores a bound Translator in the context.
func Language(service *i18n.I18n) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"), service.Languages())
			tr := i18n.NewTranslator(service, lang)
			ctx := context.WithValue(r.Context(), translatorKey{}, tr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTranslator retrieves the request translator from the context.
// Returns nil if the Language middleware did not run.
func GetTranslator(ctx context.Context) *i18n.Translator {
	if tr, ok := ctx.Value(translatorKey{}).(*i18n.Translator); ok {
		return tr
	}
	return nil
}
