package engivault

import (
	"strings"
	"unicode"
)

// The API speaks camelCase on the wire; the SDK surfaces snake_case
// names in validation errors and diagnostics. The two functions below
// are deterministic inverses of each other for every field name this
// package declares.

// toCamel converts a snake_case name to its camelCase wire form.
func toCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

// toSnake converts a camelCase wire name to snake_case.
func toSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
