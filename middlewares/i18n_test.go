package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oneshotleague/formrelay/middlewares"
	"github.com/oneshotleague/formrelay/pkg/i18n"
)

func TestLanguage(t *testing.T) {
	t.Parallel()

	service, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", map[string]any{"greeting": "hello"}),
		i18n.WithTranslations("uk", map[string]any{"greeting": "привіт"}),
	)
	require.NoError(t, err)

	capture := func(out **i18n.Translator) http.Handler {
		return middlewares.Language(service)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*out = middlewares.GetTranslator(r.Context())
		}))
	}

	t.Run("resolves preferred language", func(t *testing.T) {
		t.Parallel()

		var tr *i18n.Translator
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "uk-UA,uk;q=0.9,en;q=0.8")

		capture(&tr).ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, tr)
		require.Equal(t, "uk", tr.Language())
		require.Equal(t, "привіт", tr.T("greeting"))
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()

		var tr *i18n.Translator
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-FR")

		capture(&tr).ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, tr)
		require.Equal(t, "en", tr.Language())
	})

	t.Run("GetTranslator returns nil without middleware", func(t *testing.T) {
		t.Parallel()

		require.Nil(t, middlewares.GetTranslator(t.Context()))
	})
}
