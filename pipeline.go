// Package keyeval provides a pipeline for evaluating keyword extraction
// models against gold-standard bibliographic metadata.
package keyeval

import (
	"log"
	"math/rand"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/hscells/keyeval/dataset"
	"github.com/hscells/keyeval/eval"
	"github.com/hscells/keyeval/model"
	"github.com/hscells/keyeval/output"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

const labelAlphabet = "1234567890qwertyuiopasdfghjklzxcvbnmQWERTYUIOPASDFGHJKLZXCVBNM"

// labelRng is seeded once so that runs created within the same clock tick
// still draw distinct labels.
var labelRng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Pipeline contains all the information for executing one evaluation run of a
// keyword extraction model over a filtered dataset.
type Pipeline struct {
	Source dataset.Source
	Filter dataset.Filter
	Model  model.Extractor

	TopN       int
	Adjust     bool
	ModelParam string

	// WeightsSource, when set, provides the reference corpus used to retrain
	// a corpus-weighted model for this run, replacing Model.
	WeightsSource dataset.Source
	WeightsFilter dataset.Filter

	JSONPath  string
	TSVPath   string
	DetailDir string
	Log       bool
	Progress  bool

	// FilePath names the dataset in the run record.
	FilePath string
}

// TopN sets how many predicted keywords are requested per document.
func TopN(n int) func(p *Pipeline) {
	return func(p *Pipeline) {
		p.TopN = n
	}
}

// Adjust enables adjusted scoring against the gold keywords present in each
// abstract.
func Adjust() func(p *Pipeline) {
	return func(p *Pipeline) {
		p.Adjust = true
	}
}

// Filter sets the dataset filter.
func Filter(filter dataset.Filter) func(p *Pipeline) {
	return func(p *Pipeline) {
		p.Filter = filter
	}
}

// ModelParam records a free-form model parameter string in the run record.
func ModelParam(param string) func(p *Pipeline) {
	return func(p *Pipeline) {
		p.ModelParam = param
	}
}

// Weights configures a reference corpus from which a corpus-weighted model is
// trained for this run.
func Weights(source dataset.Source, filter dataset.Filter) func(p *Pipeline) {
	return func(p *Pipeline) {
		p.WeightsSource = source
		p.WeightsFilter = filter
	}
}

// LogTo enables run-record logging to a JSON-lines file and a TSV file.
func LogTo(jsonPath, tsvPath string) func(p *Pipeline) {
	return func(p *Pipeline) {
		p.JSONPath = jsonPath
		p.TSVPath = tsvPath
		p.Log = true
	}
}

// DetailTo sets the directory the per-model detail log is written to.
func DetailTo(dir string) func(p *Pipeline) {
	return func(p *Pipeline) {
		p.DetailDir = dir
	}
}

// Progress enables a progress bar over the document loop.
func Progress() func(p *Pipeline) {
	return func(p *Pipeline) {
		p.Progress = true
	}
}

// NewPipeline creates an evaluation pipeline for a dataset source and a
// model. Further components are provided via the optional functional
// arguments.
func NewPipeline(source dataset.Source, extractor model.Extractor, options ...func(p *Pipeline)) Pipeline {
	p := &Pipeline{
		Source: source,
		Model:  extractor,
		TopN:   10,
	}
	if fs, ok := source.(dataset.FileSource); ok {
		p.FilePath = fs.Path
	}
	for _, option := range options {
		option(p)
	}
	return *p
}

func label() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = labelAlphabet[labelRng.Intn(len(labelAlphabet))]
	}
	return string(b)
}

// Execute runs the evaluation. Documents are processed sequentially;
// extraction or scoring failures on a single document record a zeroed score
// pair and do not abort the run. Dataset loading and output writing failures
// are fatal to the run.
func (p Pipeline) Execute() (Result, error) {
	start := time.Now()

	collection, err := p.Source.Load(p.Filter)
	if err != nil {
		return Result{}, err
	}

	extractor := p.Model
	if p.WeightsSource != nil {
		weights, err := p.WeightsSource.Load(p.WeightsFilter)
		if err != nil {
			return Result{}, errors.Wrap(err, "loading weights corpus")
		}
		extractor = model.NewCorpusWeight(model.TrainWeights(weights.Gold))
	}
	if extractor == nil {
		return Result{}, errors.New("no model configured")
	}

	var detail *output.DetailLog
	if len(p.DetailDir) > 0 {
		detail, err = output.NewDetailLog(p.DetailDir, extractor.Name())
		if err != nil {
			return Result{}, err
		}
		defer detail.Close()
	}

	var bar *pb.ProgressBar
	if p.Progress {
		bar = pb.StartNew(len(collection.Gold))
	}

	// Per-measure accumulators for the means. base[i] is column i of every
	// document's base tuple; adjusted only collects documents whose adjusted
	// gold set was non-empty.
	var base, adjusted [4][]float64
	documents := make([]DocumentResult, len(collection.Gold))

	for i, gold := range collection.Gold {
		abstract := collection.Abstracts[i]

		var pair eval.ScorePair
		predicted, err := extractor.Extract(abstract, p.TopN)
		if err == nil {
			pair, err = eval.AllScores(gold, predicted, abstract, p.Adjust)
		}
		failed := err != nil
		if failed {
			// A failed document contributes a zero tuple to both means when
			// adjusting, so the adjusted count does not silently drop it.
			pair = eval.ScorePair{AdjustedOK: p.Adjust}
		}

		documents[i] = DocumentResult{
			Abstract:  abstract,
			Gold:      gold,
			Predicted: predicted,
			Scores:    pair,
			Failed:    failed,
		}

		if detail != nil {
			if err := detail.Document(abstract, gold, predicted, pair); err != nil {
				return Result{}, err
			}
		}

		for j, v := range pair.Base.Slice() {
			base[j] = append(base[j], v)
		}
		if pair.AdjustedOK {
			for j, v := range pair.Adjusted.Slice() {
				adjusted[j] = append(adjusted[j], v)
			}
		}

		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	result := Result{
		Label:             label(),
		RunID:             uuid.New().String(),
		Counts:            [2]int{len(base[0]), len(adjusted[0])},
		Elapsed:           time.Since(start),
		Documents:         documents,
		YearFilterApplied: collection.YearFilterApplied,
	}
	result.Mean = means(base)
	if result.Counts[1] > 0 {
		result.MeanAdjusted = means(adjusted)
	}

	if detail != nil {
		if err := detail.Summary(result.Mean, result.MeanAdjusted, result.Counts[1] > 0); err != nil {
			return Result{}, err
		}
	}

	if p.Log {
		record := p.record(result, extractor)
		if err := output.AppendJSON(p.JSONPath, record); err != nil {
			return Result{}, err
		}
		if err := output.AppendTSV(p.TSVPath, record); err != nil {
			return Result{}, err
		}
	}

	log.Printf("evaluated %d documents (%d adjusted) with %s in %v\n",
		result.Counts[0], result.Counts[1], extractor.Name(), result.Elapsed)

	return result, nil
}

func means(columns [4][]float64) eval.Scores {
	if len(columns[0]) == 0 {
		return eval.Scores{}
	}
	return eval.Scores{
		F1:         stat.Mean(columns[0], nil),
		Recall:     stat.Mean(columns[1], nil),
		Precision:  stat.Mean(columns[2], nil),
		RPrecision: stat.Mean(columns[3], nil),
	}
}

func (p Pipeline) record(result Result, extractor model.Extractor) output.RunRecord {
	record := output.RunRecord{
		RunID:      result.RunID,
		Label:      result.Label,
		FilePath:   p.FilePath,
		Year1:      p.Filter.YearFrom,
		Year2:      p.Filter.YearTo,
		BibFiles:   p.Filter.BibFiles,
		Types:      p.Filter.Types,
		Journals:   p.Filter.Journals,
		Limit:      p.Filter.Limit,
		ModelName:  extractor.Name(),
		ModelParam: p.ModelParam,
		Counts:     result.Counts,
		Scores:     result.Mean.Slice(),
		Time:       result.Elapsed.Seconds(),
		Random:     p.Filter.Random,
	}
	if result.Counts[1] > 0 {
		record.ScoresAdjusted = result.MeanAdjusted.Slice()
	}
	return record
}
