package preprocess

import (
	"strings"
	"unicode"

	"github.com/dan-locke/clean-html"
	"github.com/hscells/go-unidecode"
)

// Tokenise splits an abstract into lowercased word tokens. Markup is stripped
// first, since abstracts in bibliographic exports often carry residual HTML,
// and the text is ASCII-folded. Number-only and punctuation-only runs are
// discarded.
func Tokenise(text string) ([]string, error) {
	txt := unidecode.Unidecode(strings.ToLower(text))

	portions, err := clean_html.TextPos([]byte(txt))
	if err != nil {
		return nil, err
	}

	var tokens []string
	var word strings.Builder
	hasLetter := false
	flush := func() {
		if word.Len() > 0 && hasLetter {
			tokens = append(tokens, word.String())
		}
		word.Reset()
		hasLetter = false
	}

	for i := range portions.Positions {
		for _, r := range txt[portions.Positions[i][0]:portions.Positions[i][1]] {
			if unicode.IsLetter(r) {
				word.WriteRune(unicode.ToLower(r))
				hasLetter = true
			} else if unicode.IsNumber(r) {
				word.WriteRune(r)
			} else {
				flush()
			}
		}
		flush()
	}

	return tokens, nil
}
