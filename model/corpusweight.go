package model

import (
	"sort"
	"strings"

	"github.com/hscells/keyeval/eval"
	"github.com/hscells/keyeval/preprocess"
	"github.com/xtgo/set"
)

// maxPhraseLen bounds candidate n-grams; gold keyword phrases in the TUG
// bibliographies are overwhelmingly three words or fewer.
const maxPhraseLen = 3

// Weights are relative frequencies of keyword phrases and their tokens,
// learned from the gold keywords of a reference corpus.
type Weights struct {
	Phrase map[string]float64
	Token  map[string]float64
}

// TrainWeights computes phrase and token weights from a corpus of gold
// keyword sets.
func TrainWeights(gold []eval.KeywordSet) Weights {
	w := Weights{
		Phrase: make(map[string]float64),
		Token:  make(map[string]float64),
	}
	phrases, tokens := 0.0, 0.0
	for _, keywords := range gold {
		for _, keyword := range keywords {
			phrase := preprocess.Clean(keyword)
			if len(phrase) == 0 {
				continue
			}
			w.Phrase[phrase]++
			phrases++
			for _, token := range strings.Fields(phrase) {
				w.Token[token]++
				tokens++
			}
		}
	}
	for phrase := range w.Phrase {
		w.Phrase[phrase] /= phrases
	}
	for token := range w.Token {
		w.Token[token] /= tokens
	}
	return w
}

// CorpusWeight scores candidate phrases of a text by how strongly their
// tokens are represented among the gold keywords of a reference corpus. It is
// the model retrained per run when a weights dataset is configured.
type CorpusWeight struct {
	Weights Weights
}

// NewCorpusWeight creates a corpus-weighted extractor from trained weights.
func NewCorpusWeight(weights Weights) CorpusWeight {
	return CorpusWeight{Weights: weights}
}

func (CorpusWeight) Name() string {
	return "CorpusWeight"
}

func (c CorpusWeight) score(phrase string) float64 {
	tokens := strings.Fields(phrase)
	s := 0.0
	for _, token := range tokens {
		s += c.Weights.Token[token]
	}
	s /= float64(len(tokens))
	// A phrase seen verbatim as a gold keyword outranks its tokens.
	return s + c.Weights.Phrase[phrase]
}

func (c CorpusWeight) Extract(text string, topN int) (eval.KeywordSet, error) {
	tokens, err := preprocess.Tokenise(text)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for i := range tokens {
		for n := 1; n <= maxPhraseLen && i+n <= len(tokens); n++ {
			candidates = append(candidates, strings.Join(tokens[i:i+n], " "))
		}
	}

	sort.Strings(candidates)
	candidates = candidates[:set.Uniq(sort.StringSlice(candidates))]

	sort.Slice(candidates, func(i, j int) bool {
		si, sj := c.score(candidates[i]), c.score(candidates[j])
		if si == sj {
			return candidates[i] < candidates[j]
		}
		return si > sj
	})

	if topN > 0 && topN < len(candidates) {
		candidates = candidates[:topN]
	}
	return eval.KeywordSet(candidates), nil
}
