package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes every HTML element and attribute from the input,
// returning plain text. Use before interpolating user-supplied values
// into HTML documents such as notification emails.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// StripHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func StripHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
