package model

import (
	"sort"
	"strings"

	"github.com/hscells/keyeval/eval"
	"github.com/hscells/keyeval/preprocess"
	"github.com/jdkato/prose/v2"
)

// NounPhrase extracts candidate phrases as maximal runs of adjectives and
// nouns, the usual candidate shape for author-assigned keywords. Candidates
// are ranked by how often the phrase recurs in the text, then by length.
type NounPhrase struct{}

func (NounPhrase) Name() string {
	return "NounPhrase"
}

func (NounPhrase) Extract(text string, topN int) (eval.KeywordSet, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	first := make(map[string]int)
	var phrases []string
	var run []string

	flush := func(pos int) {
		if len(run) == 0 {
			return
		}
		phrase := preprocess.Clean(strings.Join(run, " "))
		run = run[:0]
		if len(phrase) == 0 {
			return
		}
		if _, ok := counts[phrase]; !ok {
			phrases = append(phrases, phrase)
			first[phrase] = pos
		}
		counts[phrase]++
	}

	for i, token := range doc.Tokens() {
		if strings.HasPrefix(token.Tag, "NN") || strings.HasPrefix(token.Tag, "JJ") {
			run = append(run, token.Text)
		} else {
			flush(i)
		}
	}
	flush(len(doc.Tokens()))

	sort.Slice(phrases, func(i, j int) bool {
		if counts[phrases[i]] == counts[phrases[j]] {
			li, lj := len(strings.Fields(phrases[i])), len(strings.Fields(phrases[j]))
			if li == lj {
				return first[phrases[i]] < first[phrases[j]]
			}
			return li > lj
		}
		return counts[phrases[i]] > counts[phrases[j]]
	})

	if topN > 0 && topN < len(phrases) {
		phrases = phrases[:topN]
	}
	return eval.KeywordSet(phrases), nil
}
