package model

import (
	"sort"

	"github.com/bbalet/stopwords"
	"github.com/hscells/keyeval/eval"
	"github.com/hscells/keyeval/preprocess"
	"github.com/reiver/go-porterstemmer"
)

// TermFreq extracts the most frequent content words of a text. Stopwords are
// stripped before tokenisation and counts are folded together by Porter stem,
// with the first surface form of each stem reported. It is the frequency
// baseline the stronger models are compared against.
type TermFreq struct{}

func (TermFreq) Name() string {
	return "TermFreq"
}

func (TermFreq) Extract(text string, topN int) (eval.KeywordSet, error) {
	tokens, err := preprocess.Tokenise(stopwords.CleanString(text, "en", false))
	if err != nil {
		return nil, err
	}

	tf := make(map[string]float64)
	surface := make(map[string]string)
	first := make(map[string]int)
	for i, token := range tokens {
		stem := porterstemmer.StemString(token)
		tf[stem]++
		if _, ok := surface[stem]; !ok {
			surface[stem] = token
			first[stem] = i
		}
	}

	stems := make([]string, 0, len(tf))
	for stem := range tf {
		stems = append(stems, stem)
	}
	// Rank by frequency, breaking ties by first occurrence.
	sort.Slice(stems, func(i, j int) bool {
		if tf[stems[i]] == tf[stems[j]] {
			return first[stems[i]] < first[stems[j]]
		}
		return tf[stems[i]] > tf[stems[j]]
	})

	if topN > 0 && topN < len(stems) {
		stems = stems[:topN]
	}
	keywords := make(eval.KeywordSet, len(stems))
	for i, stem := range stems {
		keywords[i] = surface[stem]
	}
	return keywords, nil
}
