package i18n

// Translator binds an I18n instance to a fixed language, removing the need
// to pass the language on every call.
type Translator struct {
	i18n     *I18n
	language string
}

// NewTranslator creates a Translator for the given language.
// An empty language falls back to the instance default.
func NewTranslator(i18n *I18n, language string) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	return &Translator{i18n: i18n, language: language}
}

// T translates a key in the translator's language.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, key, placeholders...)
}

// TranslateMessage translates a key with a single placeholder map.
// Its signature matches validator.TranslateFunc, allowing direct use as:
//
//	ve.Translate(translator.TranslateMessage)
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	return t.i18n.T(t.language, key, values)
}

// Language returns the translator's language code.
func (t *Translator) Language() string {
	return t.language
}
