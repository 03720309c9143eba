package main

import (
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/alexflint/go-arg"
	"github.com/hscells/keyeval"
	"github.com/hscells/keyeval/dataset"
	"github.com/hscells/keyeval/model"
)

var (
	name    = "keyeval"
	version = "21.Aug.2026"
	author  = "Harry Scells"
)

type args struct {
	Dataset    string   `help:"Path to the dataset file (csv or tsv)" arg:"required,positional"`
	Model      string   `help:"Model to evaluate (rake, termfreq, nounphrase, corpusweight)" arg:"-m"`
	Year1      int      `help:"Earliest publication year to include" arg:"-y"`
	Year2      int      `help:"Latest publication year to include" arg:"-Y"`
	BibFiles   []string `help:"Bib files to filter by" arg:"-b,separate"`
	Types      []string `help:"Bibliography categories to filter by" arg:"-t,separate"`
	Journals   []string `help:"Journals to filter by" arg:"-j,separate"`
	Limit      int      `help:"Maximum number of documents to evaluate" arg:"-l"`
	Random     bool     `help:"Sample documents randomly instead of taking the head" arg:"-r"`
	Seed       int64    `help:"Seed for random sampling" arg:"-s"`
	TopN       int      `help:"Number of predicted keywords per document" arg:"-n"`
	Adjust     bool     `help:"Also score against gold keywords present in the abstract" arg:"-a"`
	ModelParam string   `help:"Free-form model parameter recorded in the run record" arg:"-p"`
	Weights    string   `help:"Path to a reference dataset for training a corpus-weighted model" arg:"-w"`
	Config     string   `help:"Path to config file" arg:"-c"`
	NoLog      bool     `help:"Do not append the run record to the output files"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

type config struct {
	BibInfo    string `toml:"bib_info"`
	JSONOutput string `toml:"json_output"`
	TSVOutput  string `toml:"tsv_output"`
	DetailDir  string `toml:"detail_dir"`
}

func main() {
	var args args
	args.Model = "rake"
	args.TopN = 10
	args.Config = "keyeval.toml"
	arg.MustParse(&args)

	c := config{
		BibInfo:    "bib_info.json",
		JSONOutput: "output.json",
		TSVOutput:  "output.tsv",
		DetailDir:  ".",
	}
	if _, err := os.Stat(args.Config); err == nil {
		if _, err := toml.DecodeFile(args.Config, &c); err != nil {
			log.Fatalln(err)
		}
	}

	var extractor model.Extractor
	switch args.Model {
	case "rake":
		extractor = model.RAKE{}
	case "termfreq":
		extractor = model.TermFreq{}
	case "nounphrase":
		extractor = model.NounPhrase{}
	case "corpusweight":
		if len(args.Weights) == 0 {
			log.Fatalln("corpusweight requires a weights dataset (-w)")
		}
	default:
		log.Fatalf("unknown model %q\n", args.Model)
	}

	source := dataset.NewFileSource(args.Dataset, c.BibInfo)
	options := []func(p *keyeval.Pipeline){
		keyeval.TopN(args.TopN),
		keyeval.Filter(dataset.Filter{
			YearFrom: args.Year1,
			YearTo:   args.Year2,
			BibFiles: args.BibFiles,
			Types:    args.Types,
			Journals: args.Journals,
			Limit:    args.Limit,
			Random:   args.Random,
			Seed:     args.Seed,
		}),
		keyeval.DetailTo(c.DetailDir),
		keyeval.Progress(),
	}
	if args.Adjust {
		options = append(options, keyeval.Adjust())
	}
	if len(args.ModelParam) > 0 {
		options = append(options, keyeval.ModelParam(args.ModelParam))
	}
	if len(args.Weights) > 0 {
		options = append(options, keyeval.Weights(dataset.NewFileSource(args.Weights, c.BibInfo), dataset.Filter{}))
	}
	if !args.NoLog {
		options = append(options, keyeval.LogTo(c.JSONOutput, c.TSVOutput))
	}

	result, err := keyeval.NewPipeline(source, extractor, options...).Execute()
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("label: %s\n", result.Label)
	fmt.Printf("f1: %f recall: %f precision: %f r-precision: %f\n",
		result.Mean.F1, result.Mean.Recall, result.Mean.Precision, result.Mean.RPrecision)
	if result.Counts[1] > 0 {
		fmt.Printf("adjusted (%d docs) f1: %f recall: %f precision: %f r-precision: %f\n",
			result.Counts[1], result.MeanAdjusted.F1, result.MeanAdjusted.Recall,
			result.MeanAdjusted.Precision, result.MeanAdjusted.RPrecision)
	}
}
