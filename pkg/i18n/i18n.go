// Package i18n provides message catalogs with {{placeholder}} interpolation
// and Accept-Language negotiation. Instances are immutable after construction
// and safe for concurrent use.
package i18n

import (
	"fmt"
	"sort"
)

// DefaultLang is the fallback language when none is configured.
const DefaultLang = "en"

// M is a map of placeholder names to values.
type M map[string]any

// I18n holds flattened translations keyed "lang:key.path".
type I18n struct {
	translations map[string]string
	missingKey   func(lang, key string)
	defaultLang  string
	languages    []string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates an I18n instance. All configuration happens during
// construction, making the instance immutable and thread-safe from creation.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithTranslations registers translations for a language. The map can be
// nested; it is flattened to dot-separated keys internally.
func WithTranslations(lang string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		for key, value := range flatten(translations, "") {
			i.translations[lang+":"+key] = value
		}
		return nil
	}
}

// WithMissingKeyHandler sets a callback invoked when a key is not found in
// any language, the default fallback included. Useful for catching catalog
// gaps in development.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(i *I18n) error {
		i.missingKey = handler
		return nil
	}
}

// T returns the translation for key in lang, interpolating placeholders.
// Falls back to the default language, then to the key itself.
func (i *I18n) T(lang, key string, placeholders ...M) string {
	if msg, ok := i.translations[lang+":"+key]; ok {
		return replaceAll(msg, placeholders...)
	}
	if lang != i.defaultLang {
		if msg, ok := i.translations[i.defaultLang+":"+key]; ok {
			return replaceAll(msg, placeholders...)
		}
	}
	if i.missingKey != nil {
		i.missingKey(lang, key)
	}
	return key
}

// DefaultLanguage returns the configured fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Languages returns the available languages, default first.
func (i *I18n) Languages() []string {
	return i.languages
}

func (i *I18n) buildLanguagesList() []string {
	seen := map[string]bool{i.defaultLang: true}
	langs := []string{i.defaultLang}

	var others []string
	for key := range i.translations {
		for idx := 0; idx < len(key); idx++ {
			if key[idx] == ':' {
				lang := key[:idx]
				if !seen[lang] {
					seen[lang] = true
					others = append(others, lang)
				}
				break
			}
		}
	}
	sort.Strings(others)
	return append(langs, others...)
}

func flatten(src map[string]any, prefix string) map[string]string {
	out := make(map[string]string)
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			for nk, nv := range flatten(val, key) {
				out[nk] = nv
			}
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
	return out
}

func replaceAll(msg string, placeholders ...M) string {
	if len(placeholders) == 0 {
		return msg
	}
	merged := placeholders[0]
	if len(placeholders) > 1 {
		merged = make(M)
		for _, m := range placeholders {
			for k, v := range m {
				merged[k] = v
			}
		}
	}
	return ReplacePlaceholders(msg, merged)
}
