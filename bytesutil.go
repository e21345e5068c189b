package bdrain

import (
	"unicode/utf8"

	"github.com/samber/lo"
)

// BytesToString decodes b as UTF-8 text. The second return reports whether the bytes
// were valid; invalid input yields ("", false) rather than an error since this is a
// pure query, not a draining operation.
func BytesToString(b []byte) (string, bool) {
	if !utf8.Valid(b) {
		return "", false
	}

	return string(b), true
}

// ConcatBytes concatenates the chunks in input order into a single freshly allocated
// slice. An empty input yields an empty slice.
func ConcatBytes(chunks [][]byte) []byte {
	result := make([]byte, 0, lo.SumBy(chunks, func(c []byte) int { return len(c) }))
	for _, chunk := range chunks {
		result = append(result, chunk...)
	}

	return result
}
