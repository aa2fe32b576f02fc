// Package textfold provides the accent-insensitive text normalization used
// by menu search. Vietnamese names are stored with full diacritics but staff
// type queries on plain ASCII keyboards, so both sides are folded before
// matching.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold returns s with diacritics removed and lower-cased: the string is
// NFD-decomposed, combining marks are dropped and the two Vietnamese letters
// đ/Đ (which do not decompose) are mapped to d/D.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'đ':
			r = 'd'
		case 'Đ':
			r = 'D'
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
