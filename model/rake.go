package model

import (
	rake "github.com/afjoseph/RAKE.Go"
	"github.com/hscells/keyeval/eval"
	"github.com/hscells/keyeval/preprocess"
)

// RAKE extracts keywords using rapid automatic keyword extraction. Candidates
// are ranked by their RAKE score and the top-n cleaned phrases are returned.
type RAKE struct{}

func (RAKE) Name() string {
	return "RAKE"
}

func (RAKE) Extract(text string, topN int) (eval.KeywordSet, error) {
	candidates := rake.RunRake(text)

	var keywords eval.KeywordSet
	for _, candidate := range candidates {
		if topN > 0 && len(keywords) >= topN {
			break
		}
		if phrase := preprocess.Clean(candidate.Key); len(phrase) > 0 {
			keywords = append(keywords, phrase)
		}
	}
	return keywords, nil
}
