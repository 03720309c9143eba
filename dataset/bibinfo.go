package dataset

import (
	"encoding/json"
	"io/ioutil"
	"sort"

	"github.com/pkg/errors"
)

// BibInfo maps a bibliography category (e.g. "compsci", "siam") onto the bib
// file identifiers it covers. It is loaded from the bib_info.json side table,
// a two-element JSON array where the first element maps each category to a
// list of single-entry objects keyed by bib file identifier.
type BibInfo map[string][]string

// LoadBibInfo reads a bib_info.json side table.
func LoadBibInfo(path string) (BibInfo, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening bib info")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(b, &elements); err != nil {
		return nil, errors.Wrap(err, "parsing bib info")
	}
	if len(elements) < 1 {
		return nil, errors.New("bib info contains no tables")
	}

	var tables map[string][]map[string]json.RawMessage
	if err := json.Unmarshal(elements[0], &tables); err != nil {
		return nil, errors.Wrap(err, "parsing bib info tables")
	}

	info := make(BibInfo, len(tables))
	for category, files := range tables {
		for _, file := range files {
			for name := range file {
				info[category] = append(info[category], name)
			}
		}
		sort.Strings(info[category])
	}

	return info, nil
}

// Expand flattens a list of categories into the bib file identifiers they
// cover. An unknown category is an error.
func (b BibInfo) Expand(types []string) ([]string, error) {
	var bibFiles []string
	for _, t := range types {
		files, ok := b[t]
		if !ok {
			return nil, errors.Errorf("unknown bibliography category %q", t)
		}
		bibFiles = append(bibFiles, files...)
	}
	return bibFiles, nil
}
