package keyeval

import (
	"time"

	"github.com/hscells/keyeval/eval"
)

// DocumentResult is the outcome of evaluating one document.
type DocumentResult struct {
	Abstract  string
	Gold      eval.KeywordSet
	Predicted eval.KeywordSet
	Scores    eval.ScorePair

	// Failed reports that extraction or scoring raised and the scores were
	// zeroed rather than computed.
	Failed bool
}

// Result is the aggregated outcome of one evaluation run.
type Result struct {
	Label string
	RunID string

	// Counts holds the number of documents contributing to the base mean and
	// to the adjusted mean respectively.
	Counts [2]int

	Mean         eval.Scores
	MeanAdjusted eval.Scores

	Elapsed   time.Duration
	Documents []DocumentResult

	// YearFilterApplied is carried through from the dataset load.
	YearFilterApplied bool
}
