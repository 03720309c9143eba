package model_test

import (
	"strings"
	"testing"

	"github.com/hscells/keyeval/eval"
	"github.com/hscells/keyeval/model"
)

func TestRAKE(t *testing.T) {
	keywords, err := model.RAKE{}.Extract("Keyword extraction is the automatic identification of terms that best describe the subject of a document.", 5)
	if err != nil {
		t.Fatal(err)
	}
	t.Log(keywords)
	if len(keywords) == 0 {
		t.Fatal("expected keywords")
	}
	if len(keywords) > 5 {
		t.Fatalf("top-n not respected: %d keywords", len(keywords))
	}
	for _, keyword := range keywords {
		if keyword != strings.ToLower(keyword) {
			t.Errorf("keyword not cleaned: %q", keyword)
		}
	}
}

func TestTermFreq(t *testing.T) {
	text := "Sorting networks. Sorting is studied through sorting networks, and the networks are sorted."
	keywords, err := model.TermFreq{}.Extract(text, 2)
	if err != nil {
		t.Fatal(err)
	}
	t.Log(keywords)
	if len(keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %v", keywords)
	}
	// "sorting", "sorted" and "sorts" fold to the same stem; the first
	// surface form wins.
	if keywords[0] != "sorting" {
		t.Errorf("expected sorting first, got %q", keywords[0])
	}
	if keywords[1] != "networks" {
		t.Errorf("expected networks second, got %q", keywords[1])
	}
}

func TestNounPhrase(t *testing.T) {
	keywords, err := model.NounPhrase{}.Extract("Neural networks improve performance. Neural networks are trained with gradient descent.", 5)
	if err != nil {
		t.Fatal(err)
	}
	t.Log(keywords)
	if len(keywords) == 0 {
		t.Fatal("expected noun phrases")
	}
	if len(keywords) > 5 {
		t.Fatalf("top-n not respected: %d keywords", len(keywords))
	}
}

func TestTrainWeights(t *testing.T) {
	weights := model.TrainWeights([]eval.KeywordSet{
		{"neural networks"},
		{"deep learning"},
	})
	if weights.Phrase["neural networks"] != 0.5 {
		t.Errorf("expected phrase weight 0.5, got %f", weights.Phrase["neural networks"])
	}
	if weights.Token["networks"] != 0.25 {
		t.Errorf("expected token weight 0.25, got %f", weights.Token["networks"])
	}
}

func TestCorpusWeight(t *testing.T) {
	weights := model.TrainWeights([]eval.KeywordSet{
		{"neural networks"},
		{"deep learning"},
	})
	extractor := model.NewCorpusWeight(weights)

	keywords, err := extractor.Extract("we study neural networks and deep learning", 2)
	if err != nil {
		t.Fatal(err)
	}
	t.Log(keywords)
	if len(keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %v", keywords)
	}
	got := map[string]bool{}
	for _, keyword := range keywords {
		got[keyword] = true
	}
	if !got["neural networks"] || !got["deep learning"] {
		t.Fatalf("expected the gold phrases to rank first, got %v", keywords)
	}
}
