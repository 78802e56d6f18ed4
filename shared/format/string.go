package format

import "strings"

// Preview shortens s to at most length runes, cutting at the last space when
// one is close enough and appending an ellipsis.
func Preview(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	cut := string(runes[:length])
	if i := strings.LastIndex(cut, " "); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
