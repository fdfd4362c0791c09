package feature

import (
	"regexp"
	"strings"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc/dict"
)

var (
	abbreviations = regexp.MustCompile(`\w\.(\w\.)+`)
	emoticons     = regexp.MustCompile(`[:;8%]-[\)\(\@\[\]\|]+`)
	qmarks        = regexp.MustCompile(`\w\s*\?`)
	numeral       = regexp.MustCompile(`^-?[,\d+]*\.?\d+$`)
)

// Input carries one text together with its segmentation. Tokens and
// Sentences must come from the same text and must not be empty.
type Input struct {
	Text      string
	Tokens    []string
	Sentences []string
}

// Options selects the optional fields of a built vector.
type Options struct {
	// IncludeWordCount emits the raw token count as a leading WC field.
	IncludeWordCount bool
	// AppendNumbers emits the numeral share as a trailing NUMBERS field
	// when the dictionary defines no NUMBERS category to fold it into.
	AppendNumbers bool
}

// Build computes every structural, punctuation and dictionary feature of
// in and assembles them in the fixed order: optional WC, WPS, UNIQUE,
// SIXLTR, ABBREVIATIONS, EMOTICONS, QMARKS, the eleven punctuation
// shares, ALLPCT, one field per category in dictionary order, DIC. The
// share of numeral tokens is added to the NUMBERS category in place.
//
// Except for WC, WPS and QMARKS every value is a percentage of the token
// count. QMARKS is a percentage of the sentence count.
func Build(in Input, cats []dict.Category, opts Options) *Vector {
	tokens := in.Tokens
	total := float64(len(tokens))
	percFactor := 100.0 / total

	v := NewVector()
	if opts.IncludeWordCount {
		v.Set("WC", total)
	}
	v.Set("WPS", total/float64(len(in.Sentences)))

	types := make(map[string]struct{}, len(tokens))
	sixltr := 0
	numerals := 0
	for _, tok := range tokens {
		types[tok] = struct{}{}
		if len(tok) > 6 {
			sixltr++
		}
		if numeral.MatchString(tok) {
			numerals++
		}
	}
	v.Set("UNIQUE", percFactor*float64(len(types)))
	v.Set("SIXLTR", percFactor*float64(sixltr))
	v.Set("ABBREVIATIONS", percFactor*float64(countMatches(abbreviations, in.Text)))
	v.Set("EMOTICONS", percFactor*float64(countMatches(emoticons, in.Text)))
	v.Set("QMARKS", 100.0*float64(countMatches(qmarks, in.Text))/float64(len(in.Sentences)))

	punct := CountPunct(in.Text)
	v.Set("PERIOD", percFactor*float64(punct.Period))
	v.Set("COMMA", percFactor*float64(punct.Comma))
	v.Set("COLON", percFactor*float64(punct.Colon))
	v.Set("SEMIC", percFactor*float64(punct.Semicolon))
	v.Set("QMARK", percFactor*float64(punct.QMark))
	v.Set("EXCLAM", percFactor*float64(punct.Exclam))
	v.Set("DASH", percFactor*float64(punct.Dash))
	v.Set("QUOTE", percFactor*float64(punct.Quote))
	v.Set("APOSTRO", percFactor*float64(punct.Apostrophe))
	v.Set("PARENTH", percFactor*float64(punct.Parenth))
	v.Set("OTHERP", percFactor*float64(punct.Other))
	v.Set("ALLPCT", percFactor*float64(punct.Total()))

	scores, matched := MatchCategories(tokens, cats)
	for i, cat := range cats {
		v.Set(cat.Name, scores[i])
	}
	v.Set("DIC", percFactor*float64(matched))

	// Not percFactor: rounding errors
	share := 100.0 * float64(numerals) / total
	if current, ok := v.Get(dict.NumbersCategory); ok {
		v.Set(dict.NumbersCategory, current+share)
	} else if opts.AppendNumbers {
		v.Set(dict.NumbersCategory, share)
	}

	return v
}

// MatchCategories scans every token, lowercased, against every category
// pattern. Counting is per token, and a pattern may match more than once
// inside a single token. Scores are percentages of the token count; the
// second result is the number of token positions matched by at least one
// category.
func MatchCategories(tokens []string, cats []dict.Category) ([]float64, int) {
	scores := make([]float64, len(cats))
	if len(tokens) == 0 {
		return scores, 0
	}

	lowered := make([]string, len(tokens))
	for i, tok := range tokens {
		lowered[i] = strings.ToLower(tok)
	}

	inDict := make([]bool, len(tokens))
	for ci, cat := range cats {
		count := 0
		for i, tok := range lowered {
			hits := cat.Pattern.FindAllStringIndex(tok, -1)
			if len(hits) == 0 {
				continue
			}
			count += len(hits)
			inDict[i] = true
		}
		scores[ci] = 100.0 * float64(count) / float64(len(tokens))
	}

	matched := 0
	for _, hit := range inDict {
		if hit {
			matched++
		}
	}
	return scores, matched
}

func countMatches(p *regexp.Regexp, text string) int {
	return len(p.FindAllStringIndex(text, -1))
}
