// Package dataset loads and filters tabular bibliographic metadata for
// evaluation. A dataset is a CSV or TSV file with one row per record,
// carrying at least the bib file, journal, year, keywords, and abstract
// columns.
package dataset

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hscells/keyeval/eval"
	"github.com/hscells/keyeval/preprocess"
	"github.com/pkg/errors"
)

// Record is one row of a bibliographic dataset.
type Record struct {
	BibFile     string
	Journal     string
	Year        int
	RawKeywords string
	Keywords    []string
	Abstract    string
}

// Columns maps each logical column onto an ordered list of accepted header
// names. The first alias present in the file header is used; a column with no
// alias present is an error rather than a silent fallback.
type Columns struct {
	BibFile  []string
	Journal  []string
	Year     []string
	Keywords []string
	Abstract []string
}

// DefaultColumns returns the column aliases used by the TUG bibliography
// exports, where older dumps name the bib file column "bibsource".
func DefaultColumns() Columns {
	return Columns{
		BibFile:  []string{"bib_file", "bibsource"},
		Journal:  []string{"journal"},
		Year:     []string{"year"},
		Keywords: []string{"keywords"},
		Abstract: []string{"abstract"},
	}
}

// Filter restricts which records of a dataset are loaded. A zero YearFrom and
// YearTo disables the year filter. When Random is set, Limit records are
// sampled using Seed; otherwise the first Limit records are taken.
type Filter struct {
	YearFrom int
	YearTo   int
	BibFiles []string
	Types    []string
	Journals []string
	Limit    int
	Random   bool
	Seed     int64
}

// Collection is a filtered dataset ready for evaluation. Gold and Abstracts
// are aligned by index with Records.
type Collection struct {
	Gold      []eval.KeywordSet
	Abstracts []string
	Records   []Record

	// YearFilterApplied reports whether a year restriction was in effect.
	YearFilterApplied bool
}

// Source loads a filtered collection of records.
type Source interface {
	Load(filter Filter) (*Collection, error)
}

// FileSource reads a CSV or TSV dataset from disk. Files with a .tsv
// extension are read tab-separated. Type filters are expanded to bib file
// identifiers through the bib info side table.
type FileSource struct {
	Path        string
	BibInfoPath string
	Columns     Columns
}

// NewFileSource creates a file source with the default column aliases.
func NewFileSource(path, bibInfoPath string) FileSource {
	return FileSource{
		Path:        path,
		BibInfoPath: bibInfoPath,
		Columns:     DefaultColumns(),
	}
}

func resolve(header []string, aliases []string) (int, error) {
	for _, alias := range aliases {
		for i, column := range header {
			if column == alias {
				return i, nil
			}
		}
	}
	return 0, errors.Errorf("no column matching %v in header %v", aliases, header)
}

func member(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// Load reads the dataset and applies the filter. Rows whose year does not
// parse are skipped only when a year filter is active; otherwise they are
// kept with a zero year.
func (s FileSource) Load(filter Filter) (*Collection, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrap(err, "opening dataset")
	}
	defer f.Close()

	r := csv.NewReader(f)
	if filepath.Ext(s.Path) == ".tsv" {
		r.Comma = '\t'
	}
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading dataset header")
	}

	bibFile, err := resolve(header, s.Columns.BibFile)
	if err != nil {
		return nil, err
	}
	journal, err := resolve(header, s.Columns.Journal)
	if err != nil {
		return nil, err
	}
	year, err := resolve(header, s.Columns.Year)
	if err != nil {
		return nil, err
	}
	keywords, err := resolve(header, s.Columns.Keywords)
	if err != nil {
		return nil, err
	}
	abstract, err := resolve(header, s.Columns.Abstract)
	if err != nil {
		return nil, err
	}

	// Expand type categories into concrete bib file identifiers.
	var typeBibFiles []string
	if len(filter.Types) > 0 {
		info, err := LoadBibInfo(s.BibInfoPath)
		if err != nil {
			return nil, err
		}
		typeBibFiles, err = info.Expand(filter.Types)
		if err != nil {
			return nil, err
		}
	}

	yearFilter := filter.YearFrom > 0 || filter.YearTo > 0

	var records []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "reading dataset row")
		}

		record := Record{
			BibFile:     row[bibFile],
			Journal:     row[journal],
			RawKeywords: row[keywords],
			Abstract:    row[abstract],
		}

		if len(filter.BibFiles) > 0 && !member(filter.BibFiles, record.BibFile) {
			continue
		}
		if len(typeBibFiles) > 0 && !member(typeBibFiles, record.BibFile) {
			continue
		}
		if len(filter.Journals) > 0 && !member(filter.Journals, record.Journal) {
			continue
		}

		y, err := strconv.Atoi(row[year])
		if err != nil {
			if yearFilter {
				continue
			}
			y = 0
		}
		record.Year = y
		if yearFilter {
			if filter.YearFrom > 0 && y < filter.YearFrom {
				continue
			}
			if filter.YearTo > 0 && y > filter.YearTo {
				continue
			}
		}

		records = append(records, record)
	}

	if filter.Limit > 0 && filter.Random {
		rng := rand.New(rand.NewSource(filter.Seed))
		rng.Shuffle(len(records), func(i, j int) {
			records[i], records[j] = records[j], records[i]
		})
	}
	if filter.Limit > 0 && filter.Limit < len(records) {
		records = records[:filter.Limit]
	}

	collection := &Collection{
		Gold:              make([]eval.KeywordSet, len(records)),
		Abstracts:         make([]string, len(records)),
		Records:           records,
		YearFilterApplied: yearFilter,
	}
	for i, record := range records {
		records[i].Keywords = preprocess.ParseKeywords(record.RawKeywords)
		collection.Gold[i] = records[i].Keywords
		collection.Abstracts[i] = record.Abstract
	}

	return collection, nil
}
