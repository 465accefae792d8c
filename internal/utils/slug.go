package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases name, folds accented letters to their base letter,
// collapses every run of characters outside [a-z0-9] into a single "-" and
// trims leading and trailing dashes.
func Slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(s, "-")
}

// SlugCandidate returns the n-th candidate for base: base itself for 0,
// base-n otherwise.
func SlugCandidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
