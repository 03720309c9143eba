// Package preprocess handles normalisation and parsing of keyword fields and
// abstract texts.
package preprocess

import (
	"regexp"
	"strings"

	"github.com/hscells/go-unidecode"
)

var (
	spaces, _ = regexp.Compile(`\s+`)

	// Delimiters tried in priority order when parsing a raw keyword field.
	delimiters = []string{";", ",", "\t"}
)

// Clean normalises a keyword phrase: ASCII folding, lowercasing, and
// whitespace collapsing. An all-whitespace phrase cleans to the empty string.
func Clean(phrase string) string {
	p := unidecode.Unidecode(phrase)
	p = strings.ToLower(p)
	p = spaces.ReplaceAllString(p, " ")
	return strings.TrimSpace(p)
}

// ParseKeywords splits a raw delimited keyword field into cleaned phrases.
// The field is split on the first of semicolon, comma, or tab found in it,
// falling back to the literal " to" used by run-on BibTeX keyword fields.
// Fragments are additionally split on "---". Phrases that clean to the empty
// string are dropped.
func ParseKeywords(field string) []string {
	delimiter := " to"
	for _, d := range delimiters {
		if strings.Contains(field, d) {
			delimiter = d
			break
		}
	}

	var keywords []string
	for _, fragment := range strings.Split(field, delimiter) {
		for _, phrase := range strings.Split(fragment, "---") {
			if p := Clean(phrase); len(p) > 0 {
				keywords = append(keywords, p)
			}
		}
	}
	return keywords
}
