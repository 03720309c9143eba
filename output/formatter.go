// Package output writes evaluation run records and per-document detail logs.
package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// RunRecord is the record logged once per evaluation run.
type RunRecord struct {
	RunID          string    `json:"run_id"`
	Label          string    `json:"label"`
	FilePath       string    `json:"file_path"`
	Year1          int       `json:"year1"`
	Year2          int       `json:"year2"`
	BibFiles       []string  `json:"bib_files"`
	Types          []string  `json:"types"`
	Journals       []string  `json:"journals"`
	Limit          int       `json:"limit"`
	ModelName      string    `json:"model_name"`
	ModelParam     string    `json:"model_param"`
	Counts         [2]int    `json:"counts"`
	Scores         []float64 `json:"scores"`
	ScoresAdjusted []float64 `json:"scores_adjusted"`
	Time           float64   `json:"time"`
	Random         bool      `json:"random"`
}

func appendFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AppendJSON appends a run record to a JSON-lines file, one object per line.
// A run with no adjusted documents serialises an empty scores_adjusted list,
// not null.
func AppendJSON(path string, record RunRecord) error {
	f, err := appendFile(path)
	if err != nil {
		return errors.Wrap(err, "opening json output")
	}
	defer f.Close()
	if record.ScoresAdjusted == nil {
		record.ScoresAdjusted = []float64{}
	}
	return json.NewEncoder(f).Encode(record)
}

// AppendTSV appends a run record to a TSV file as a single row: label, model
// name, file path, both counts, the four base means, then the four adjusted
// means. Adjusted columns are blank when no document produced an adjusted
// score.
func AppendTSV(path string, record RunRecord) error {
	f, err := appendFile(path)
	if err != nil {
		return errors.Wrap(err, "opening tsv output")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	row := []string{
		record.Label,
		record.ModelName,
		record.FilePath,
		strconv.Itoa(record.Counts[0]),
		strconv.Itoa(record.Counts[1]),
	}
	for _, score := range record.Scores {
		row = append(row, formatFloat(score))
	}
	for i := 0; i < 4; i++ {
		if i < len(record.ScoresAdjusted) {
			row = append(row, formatFloat(record.ScoresAdjusted[i]))
		} else {
			row = append(row, "")
		}
	}

	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
