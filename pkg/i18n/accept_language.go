package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength guards against oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage returns the best supported language for an
// Accept-Language header value. Quality values are honored; an empty or
// unparsable header yields the first available language.
//
// Example header: "uk-UA,uk;q=0.9,en;q=0.8"
// Available: ["en", "uk"]
// Returns: "uk"
func MatchAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" || len(header) > maxAcceptLanguageLength {
		return available[0]
	}

	tags := make([]language.Tag, 0, len(available))
	for _, lang := range available {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return available[0]
	}

	wanted, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(wanted) == 0 {
		return available[0]
	}

	_, idx, conf := language.NewMatcher(tags).Match(wanted...)
	if conf == language.No {
		return available[0]
	}
	return available[idx]
}
