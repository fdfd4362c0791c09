package liwc

import (
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/dict"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/feature"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/internalerr"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/textseg"
)

// Analyzer is the main text analysis facade
type Analyzer struct {
	dict          *dict.Dictionary
	includeWC     bool
	appendNumbers bool
}

// Options configures an Analyzer instance
type Options struct {
	// IncludeWordCount prepends the raw token count to every vector.
	IncludeWordCount bool
	// AllowMissingNumbers accepts dictionaries without a NUMBERS category.
	// The numeral share is then reported as a trailing NUMBERS field.
	AllowMissingNumbers bool
}

// New creates an Analyzer over a parsed dictionary
func New(d *dict.Dictionary, opts Options) (*Analyzer, error) {
	hasNumbers := d.Has(dict.NumbersCategory)
	if !hasNumbers && !opts.AllowMissingNumbers {
		return nil, internalerr.ErrMissingNumbersCategory
	}
	return &Analyzer{
		dict:          d,
		includeWC:     opts.IncludeWordCount,
		appendNumbers: !hasNumbers,
	}, nil
}

// Analyze converts raw text into the ordered feature vector
func (a *Analyzer) Analyze(text string) (*feature.Vector, error) {
	tokens := textseg.Tokenize(text)
	if len(tokens) == 0 {
		return nil, internalerr.ErrEmptyInput
	}

	in := feature.Input{
		Text:      text,
		Tokens:    tokens,
		Sentences: textseg.SplitSentences(text),
	}
	return feature.Build(in, a.dict.Categories(), feature.Options{
		IncludeWordCount: a.includeWC,
		AppendNumbers:    a.appendNumbers,
	}), nil
}
