// Package text provides character indexing for strings. A string is
// treated as reversibly convertible to a list of runes solely for
// indexing purposes; positions count runes, not bytes.
package text

import (
	"github.com/authcorp/optics"
	"github.com/authcorp/optics/collections/list"
)

// Runes is the reversible conversion between a string and its rune
// list.
func Runes() optics.Iso[string, list.List[rune]] {
	return optics.NewIso(
		func(s string) list.List[rune] {
			return list.New([]rune(s)...)
		},
		func(l list.List[rune]) string {
			return string(l.ToSlice())
		},
	)
}

// Index creates the Index instance for string, lifted through Runes
// onto the rune list's instance.
func Index() optics.Index[string, int, rune] {
	return optics.FromIso(Runes(), list.Index[rune]())
}
