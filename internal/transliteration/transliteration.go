// Package transliteration converts Chuvash text between the Cyrillic, Latin
// and Arabic scripts with fixed per-character substitution tables.
//
// Substitution is context free: each code point is looked up on its own and
// replaced, or copied unchanged when the table has no row for it. Tables are
// built once at package init and never modified, so every function here is
// safe for concurrent use.
package transliteration

import (
	"strings"
	"unicode/utf8"
)

// Transliterate applies a forward table. Rows with alternatives always emit
// their first alternative.
func Transliterate(text string, table *Table) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		char := text[i : i+size]
		if e, ok := table.rows.values[char]; ok {
			b.WriteString(e.First())
		} else {
			b.WriteString(char)
		}
		i += size
	}
	return b.String()
}

// ReverseTransliterate applies a reverse table with the same per-character
// contract as Transliterate. Round trips are not guaranteed: a target that
// several sources shared maps back to only one of them.
func ReverseTransliterate(text string, table *ReverseTable) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		char := text[i : i+size]
		if v, ok := table.rows.values[char]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(char)
		}
		i += size
	}
	return b.String()
}
