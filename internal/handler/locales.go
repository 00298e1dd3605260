package handler

import (
	"embed"
	"io/fs"

	"github.com/oneshotleague/formrelay/pkg/i18n"
)

//go:embed locales
var localesFS embed.FS

// DefaultLanguage is the fallback language for untranslatable requests.
const DefaultLanguage = "en"

// NewI18n builds the i18n service from the embedded locale catalogs.
func NewI18n() (*i18n.I18n, error) {
	catalogs, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return nil, err
	}
	return i18n.New(
		i18n.WithDefaultLanguage(DefaultLanguage),
		i18n.WithYAMLDir(catalogs),
	)
}
