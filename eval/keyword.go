// Package eval provides evaluation measures for comparing predicted keyword
// sets against gold-standard keyword sets.
package eval

import (
	"strings"

	"github.com/pkg/errors"
)

// KeywordSet is an ordered list of normalised keyword phrases. Duplicates are
// kept; multiplicity counts towards the denominators of the set measures.
type KeywordSet []string

// Scores holds the four measures computed for one gold/predicted pair.
type Scores struct {
	F1         float64
	Recall     float64
	Precision  float64
	RPrecision float64
}

// ScorePair holds the base scores and, when an adjusted gold set could be
// built from the source text, the adjusted scores. AdjustedOK reports whether
// Adjusted was computed; an empty adjusted gold set omits the record rather
// than forcing it to zero.
type ScorePair struct {
	Base       Scores
	Adjusted   Scores
	AdjustedOK bool
}

var (
	// ErrEmptyGold is returned when a measure requires a non-empty gold set.
	ErrEmptyGold = errors.New("empty gold keyword set")
	// ErrEmptyPredicted is returned when a measure requires a non-empty predicted set.
	ErrEmptyPredicted = errors.New("empty predicted keyword set")
)

func (k KeywordSet) contains(phrase string) bool {
	for _, p := range k {
		if p == phrase {
			return true
		}
	}
	return false
}

// Slice returns the scores in the order they are logged: f1, recall,
// precision, r-precision.
func (s Scores) Slice() []float64 {
	return []float64{s.F1, s.Recall, s.Precision, s.RPrecision}
}

// Recall computes the fraction of the gold set found in the predicted set.
// The gold set must be non-empty.
func Recall(gold, predicted KeywordSet) (float64, error) {
	if len(gold) == 0 {
		return 0, ErrEmptyGold
	}
	n := 0.0
	for _, p := range predicted {
		if gold.contains(p) {
			n++
		}
	}
	return n / float64(len(gold)), nil
}

// Precision computes the fraction of the predicted set found in the gold set.
// The predicted set must be non-empty.
func Precision(gold, predicted KeywordSet) (float64, error) {
	if len(predicted) == 0 {
		return 0, ErrEmptyPredicted
	}
	n := 0.0
	for _, p := range predicted {
		if gold.contains(p) {
			n++
		}
	}
	return n / float64(len(predicted)), nil
}

// F1 computes the harmonic mean of recall and precision, or 0 when both are 0.
func F1(recall, precision float64) float64 {
	if recall+precision == 0 {
		return 0.0
	}
	return (2.0 * precision * recall) / (precision + recall)
}

// RelaxedRPrecision computes word-level overlap between two phrases. It is
// relaxed since tokens of phrase2 only need to appear as a substring of
// phrase1, not at matching positions. The overlap count is normalised by the
// longer of the two phrases.
func RelaxedRPrecision(phrase1, phrase2 string) float64 {
	tokens1 := strings.Fields(phrase1)
	tokens2 := strings.Fields(phrase2)
	d := float64(len(tokens1))
	if len(tokens2) > len(tokens1) {
		d = float64(len(tokens2))
	}
	if d == 0 {
		return 0.0
	}
	n := 0.0
	for _, w := range tokens2 {
		if strings.Contains(phrase1, w) {
			n++
		}
	}
	return n / d
}

// AggregateRPrecision averages, over the gold phrases, the best relaxed
// r-precision each gold phrase achieves against any predicted phrase. Both
// sets must be non-empty.
func AggregateRPrecision(gold, predicted KeywordSet) (float64, error) {
	if len(gold) == 0 {
		return 0, ErrEmptyGold
	}
	if len(predicted) == 0 {
		return 0, ErrEmptyPredicted
	}
	sum := 0.0
	for _, gphrase := range gold {
		best := 0.0
		for _, pphrase := range predicted {
			if r := RelaxedRPrecision(gphrase, pphrase); r > best {
				best = r
			}
		}
		sum += best
	}
	return sum / float64(len(gold)), nil
}

// Score computes all four measures for a gold/predicted pair.
func Score(gold, predicted KeywordSet) (Scores, error) {
	recall, err := Recall(gold, predicted)
	if err != nil {
		return Scores{}, err
	}
	precision, err := Precision(gold, predicted)
	if err != nil {
		return Scores{}, err
	}
	rprecision, err := AggregateRPrecision(gold, predicted)
	if err != nil {
		return Scores{}, err
	}
	return Scores{
		F1:         F1(recall, precision),
		Recall:     recall,
		Precision:  precision,
		RPrecision: rprecision,
	}, nil
}

// AdjustGold restricts the gold set to phrases appearing verbatim in text.
func AdjustGold(gold KeywordSet, text string) KeywordSet {
	var adjusted KeywordSet
	for _, phrase := range gold {
		if strings.Contains(text, phrase) {
			adjusted = append(adjusted, phrase)
		}
	}
	return adjusted
}

// AllScores computes the base scores and, when adjust is set and text is
// non-empty, the scores against the gold phrases present in text. When no
// gold phrase occurs in the text the adjusted scores are omitted.
func AllScores(gold, predicted KeywordSet, text string, adjust bool) (ScorePair, error) {
	base, err := Score(gold, predicted)
	if err != nil {
		return ScorePair{}, err
	}
	pair := ScorePair{Base: base}
	if adjust && len(text) > 0 {
		adjustedGold := AdjustGold(gold, text)
		if len(adjustedGold) > 0 {
			adjusted, err := Score(adjustedGold, predicted)
			if err != nil {
				return pair, err
			}
			pair.Adjusted = adjusted
			pair.AdjustedOK = true
		}
	}
	return pair, nil
}
