package normalize

import (
	"regexp"
	"strings"
)

var (
	reTitleNoise = regexp.MustCompile(`[\s\p{P}\p{S}]+`)
	reBrackets   = regexp.MustCompile(`[\[(【〈《].*?[\])】〉》]`)
	reWhitespace = regexp.MustCompile(`\s{2,}`)
)

// CleanTitle tidies a title for display: collapses whitespace, trims.
func CleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = reWhitespace.ReplaceAllString(s, " ")
	return s
}

// KeyTitle strips whitespace and punctuation variance so the same notice
// posted with cosmetic differences hashes identically. Bracketed prefixes
// like "[정정공고]" are dropped before stripping.
func KeyTitle(s string) string {
	s = reBrackets.ReplaceAllString(s, "")
	s = reTitleNoise.ReplaceAllString(s, "")
	return strings.ToLower(s)
}
