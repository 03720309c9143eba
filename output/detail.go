package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/hscells/keyeval/eval"
	"github.com/pkg/errors"
)

// DetailLog writes one row per evaluated document to a per-model TSV file,
// followed by a trailing mean-summary row. The file is truncated at the start
// of a run and must be closed when the run ends.
type DetailLog struct {
	f *os.File
	w *csv.Writer
}

// NewDetailLog creates the detail log for a model inside dir. The file is
// named after the lowercased model name.
func NewDetailLog(dir, modelName string) (*DetailLog, error) {
	path := filepath.Join(dir, strings.ToLower(modelName)+".tsv")
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating detail log")
	}
	w := csv.NewWriter(f)
	w.Comma = '\t'
	return &DetailLog{f: f, w: w}, nil
}

func scoreColumns(scores eval.Scores) []string {
	columns := make([]string, 0, 4)
	for _, v := range scores.Slice() {
		columns = append(columns, formatFloat(v))
	}
	return columns
}

// Document appends the detail row for a single evaluated document.
func (d *DetailLog) Document(abstract string, gold, predicted eval.KeywordSet, pair eval.ScorePair) error {
	row := []string{
		abstract,
		strings.Join(gold, "; "),
		strings.Join(predicted, "; "),
	}
	row = append(row, scoreColumns(pair.Base)...)
	if pair.AdjustedOK {
		row = append(row, scoreColumns(pair.Adjusted)...)
	} else {
		row = append(row, "", "", "", "")
	}
	return d.w.Write(row)
}

// Summary appends the trailing mean row. The adjusted means are only written
// when at least one document produced an adjusted score.
func (d *DetailLog) Summary(mean eval.Scores, meanAdjusted eval.Scores, adjusted bool) error {
	row := append([]string{"mean", "", ""}, scoreColumns(mean)...)
	if adjusted {
		row = append(row, scoreColumns(meanAdjusted)...)
	} else {
		row = append(row, "", "", "", "")
	}
	return d.w.Write(row)
}

// Close flushes and releases the underlying file.
func (d *DetailLog) Close() error {
	d.w.Flush()
	if err := d.w.Error(); err != nil {
		d.f.Close()
		return err
	}
	return d.f.Close()
}
