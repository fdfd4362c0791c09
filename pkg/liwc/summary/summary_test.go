package summary

import (
	"math"
	"testing"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc/feature"
)

func TestSummaryStats(t *testing.T) {
	agg := New()
	agg.Add(vecOf(t, "POSITIVE", 10))
	agg.Add(vecOf(t, "POSITIVE", 20))

	summaries := agg.Summary()
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 summary, got %d", len(summaries))
	}

	s := summaries[0]
	if s.Feature != "POSITIVE" || s.N != 2 {
		t.Errorf("summary = %+v", s)
	}
	if s.Mean != 15 {
		t.Errorf("Mean = %v, want 15", s.Mean)
	}
	if math.Abs(s.StdDev-math.Sqrt(50)) > 1e-9 {
		t.Errorf("StdDev = %v, want %v", s.StdDev, math.Sqrt(50))
	}
	if s.Min != 10 || s.Max != 20 {
		t.Errorf("Min/Max = %v/%v, want 10/20", s.Min, s.Max)
	}
}

func TestSummarySingleVector(t *testing.T) {
	agg := New()
	agg.Add(vecOf(t, "WPS", 4))

	s := agg.Summary()[0]
	if s.StdDev != 0 {
		t.Errorf("StdDev with one sample = %v, want 0", s.StdDev)
	}
	if s.Mean != 4 || s.Min != 4 || s.Max != 4 {
		t.Errorf("summary = %+v", s)
	}
}

func TestSummaryKeepsFieldOrder(t *testing.T) {
	agg := New()

	first := feature.NewVector()
	first.Set("WPS", 1)
	first.Set("POSITIVE", 2)
	agg.Add(first)

	second := feature.NewVector()
	second.Set("WPS", 3)
	second.Set("POSITIVE", 4)
	second.Set("NUMBERS", 5)
	agg.Add(second)

	summaries := agg.Summary()
	want := []string{"WPS", "POSITIVE", "NUMBERS"}
	if len(summaries) != len(want) {
		t.Fatalf("Expected %d summaries, got %d", len(want), len(summaries))
	}
	for i, name := range want {
		if summaries[i].Feature != name {
			t.Errorf("summary %d = %q, want %q", i, summaries[i].Feature, name)
		}
	}
	if summaries[2].N != 1 {
		t.Errorf("NUMBERS N = %d, want 1", summaries[2].N)
	}
}

func TestSummaryEmpty(t *testing.T) {
	agg := New()
	if agg.Count() != 0 {
		t.Errorf("Count = %d, want 0", agg.Count())
	}
	if got := agg.Summary(); len(got) != 0 {
		t.Errorf("Summary = %v, want empty", got)
	}
}

func vecOf(t *testing.T, name string, value float64) *feature.Vector {
	t.Helper()
	vec := feature.NewVector()
	vec.Set(name, value)
	return vec
}
