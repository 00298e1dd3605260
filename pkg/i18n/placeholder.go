package i18n

import (
	"fmt"
	"strings"
)

// ReplacePlaceholders replaces {{name}} tokens in the template with values
// from the map. Unknown placeholders remain unchanged.
//
// Example:
//
//	template: "must be at least {{min}} characters"
//	placeholders: M{"min": 10}
//	returns: "must be at least 10 characters"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 {
		return template
	}

	result := template
	for key, value := range placeholders {
		placeholder := "{{" + key + "}}"
		replacement := fmt.Sprintf("%v", value)
		result = strings.ReplaceAll(result, placeholder, replacement)
	}

	return result
}
