package identity

import "strings"

// Normalize lower-cases label, collapses every run of whitespace into a single
// underscore and trims leading/trailing underscores. It is pure and total; an
// input made only of whitespace or underscores yields "".
func Normalize(label string) string {
	if label == "" {
		return ""
	}
	words := strings.Fields(strings.ToLower(label))
	return strings.Trim(strings.Join(words, "_"), "_")
}

// Equal reports whether two labels share the same canonical identity.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
