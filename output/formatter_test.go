package output_test

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hscells/keyeval/eval"
	"github.com/hscells/keyeval/output"
)

func record() output.RunRecord {
	return output.RunRecord{
		RunID:          "5726c5d4-4773-4b94-a05c-bd1c37f42a37",
		Label:          "a1B2c3D4",
		FilePath:       "bib.csv",
		Year1:          1900,
		Year2:          2020,
		ModelName:      "RAKE",
		Counts:         [2]int{10, 7},
		Scores:         []float64{0.5, 0.5, 0.5, 0.25},
		ScoresAdjusted: []float64{0.6, 0.7, 0.5, 0.3},
		Time:           1.5,
	}
}

func TestAppendJSON(t *testing.T) {
	dir, err := ioutil.TempDir("", "output")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "output.json")

	if err := output.AppendJSON(path, record()); err != nil {
		t.Fatal(err)
	}
	if err := output.AppendJSON(path, record()); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec output.RunRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatal(err)
		}
		if rec.Label != "a1B2c3D4" {
			t.Errorf("got label %q", rec.Label)
		}
		if rec.Counts != [2]int{10, 7} {
			t.Errorf("got counts %v", rec.Counts)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("expected one object per line, got %d lines", lines)
	}
}

func TestAppendJSONEmptyAdjusted(t *testing.T) {
	dir, err := ioutil.TempDir("", "output")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "output.json")

	rec := record()
	rec.ScoresAdjusted = nil
	if err := output.AppendJSON(path, rec); err != nil {
		t.Fatal(err)
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"scores_adjusted":[]`) {
		t.Fatalf("expected an empty list, got %s", b)
	}
}

func TestAppendTSV(t *testing.T) {
	dir, err := ioutil.TempDir("", "output")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "output.tsv")

	if err := output.AppendTSV(path, record()); err != nil {
		t.Fatal(err)
	}

	rec := record()
	rec.ScoresAdjusted = nil
	if err := output.AppendTSV(path, rec); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != 13 {
		t.Fatalf("expected 13 columns, got %d", len(rows[0]))
	}
	if rows[0][0] != "a1B2c3D4" || rows[0][1] != "RAKE" {
		t.Errorf("unexpected row: %v", rows[0])
	}
	// Adjusted columns are blank when no adjusted scores were recorded.
	for i := 9; i < 13; i++ {
		if rows[1][i] != "" {
			t.Errorf("expected blank adjusted column, got %q", rows[1][i])
		}
	}
}

func TestDetailLog(t *testing.T) {
	dir, err := ioutil.TempDir("", "output")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	detail, err := output.NewDetailLog(dir, "RAKE")
	if err != nil {
		t.Fatal(err)
	}

	pair := eval.ScorePair{
		Base:       eval.Scores{F1: 0.5, Recall: 0.5, Precision: 0.5, RPrecision: 0.25},
		AdjustedOK: false,
	}
	if err := detail.Document("an abstract", eval.KeywordSet{"a", "b"}, eval.KeywordSet{"a"}, pair); err != nil {
		t.Fatal(err)
	}
	if err := detail.Summary(pair.Base, eval.Scores{}, false); err != nil {
		t.Fatal(err)
	}
	if err := detail.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "rake.tsv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected document row and summary row, got %d rows", len(rows))
	}
	if rows[0][1] != "a; b" {
		t.Errorf("gold keywords not joined: %q", rows[0][1])
	}
	if rows[1][0] != "mean" {
		t.Errorf("expected trailing mean row, got %v", rows[1])
	}
}
