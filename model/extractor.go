// Package model provides keyword extraction models that can be evaluated
// against gold-standard keyword sets.
package model

import (
	"github.com/hscells/keyeval/eval"
)

// Extractor produces the top-n keyword phrases for a piece of text. Name
// identifies the model in logs and output file names.
type Extractor interface {
	Extract(text string, topN int) (eval.KeywordSet, error)
	Name() string
}
