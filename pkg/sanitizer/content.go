package sanitizer

import "regexp"

// dangerousPatterns flags common injection payloads in plain-text form fields.
// This is a defense-in-depth heuristic, not a sanitizer: values are never
// rendered as HTML without escaping, but anything matching these patterns has
// no business in a contact form and is rejected outright.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[\s>]`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<\s*/?\s*(iframe|object|embed|form|link|meta|style)\b`),
	regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|UNION|ALTER|CREATE|EXEC)\s+`),
	regexp.MustCompile(`&#?\w+;`),
	regexp.MustCompile(`(?i)%3C|%3E|%22|%27`),
}

// IsSafe reports whether a plain-text field value is free of known injection
// indicators: script tags, javascript: URIs, inline event handlers, dangerous
// HTML tags, SQL keyword sequences, HTML entities, and URL-encoded angle or
// quote characters.
func IsSafe(value string) bool {
	for _, p := range dangerousPatterns {
		if p.MatchString(value) {
			return false
		}
	}
	return true
}
