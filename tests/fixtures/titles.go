// Package fixtures provides deterministic test data for the publishing graph.
package fixtures

import (
	"fmt"
	"strings"
)

// Title returns a title of exactly n characters built from repeated words.
// It returns "" for n <= 0.
//
// Example:
//
//	Title(5)  // "Go Go"
//	Title(12) // "Go Go Go Go "
func Title(n int) string {
	if n <= 0 {
		return ""
	}
	s := strings.Repeat("Go ", n/3+1)
	return s[:n]
}

// NumberedTitle returns a valid article title unique to i, such as "Article #007".
func NumberedTitle(i int) string {
	return fmt.Sprintf("Article #%03d", i)
}

// MagazineName returns a name of exactly n characters, such as "Mmmm" for n = 4.
func MagazineName(n int) string {
	if n <= 0 {
		return ""
	}
	return "M" + strings.Repeat("m", n-1)
}
