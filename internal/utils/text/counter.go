// Package text provides small string helpers shared by the domain validators.
package text

import "unicode/utf8"

// CountRunes returns the number of Unicode code points in s.
// Field length limits are expressed in characters, so "Café" counts as 4, not 5.
//
//	CountRunes("Byte")    // 4
//	CountRunes("日本語")   // 3
//	CountRunes("")        // 0
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// RuneLengthBetween reports whether s has between lo and hi characters, inclusive.
func RuneLengthBetween(s string, lo, hi int) bool {
	n := CountRunes(s)
	return n >= lo && n <= hi
}
