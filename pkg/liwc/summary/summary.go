package summary

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc/feature"
)

// Aggregator accumulates feature vectors across subjects.
type Aggregator struct {
	order  []string
	values map[string][]float64
	count  int
}

// New creates an empty aggregator.
func New() *Aggregator {
	return &Aggregator{
		values: make(map[string][]float64),
	}
}

// Add consumes one subject's feature vector.
func (a *Aggregator) Add(vec *feature.Vector) {
	a.count++
	for _, f := range vec.Fields() {
		if _, ok := a.values[f.Name]; !ok {
			a.order = append(a.order, f.Name)
		}
		a.values[f.Name] = append(a.values[f.Name], f.Value)
	}
}

// Count returns the number of vectors added.
func (a *Aggregator) Count() int {
	return a.count
}

// FeatureSummary describes one feature across all added vectors.
type FeatureSummary struct {
	Feature string  `json:"feature"`
	N       int     `json:"n"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Summary returns per-feature statistics in first-seen field order.
func (a *Aggregator) Summary() []FeatureSummary {
	out := make([]FeatureSummary, 0, len(a.order))
	for _, name := range a.order {
		vals := a.values[name]
		s := FeatureSummary{
			Feature: name,
			N:       len(vals),
			Mean:    stat.Mean(vals, nil),
			Min:     floats.Min(vals),
			Max:     floats.Max(vals),
		}
		if len(vals) > 1 {
			s.StdDev = stat.StdDev(vals, nil)
		}
		out = append(out, s)
	}
	return out
}
