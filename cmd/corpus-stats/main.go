package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/eur-rsm/personality-recognizer/internal/textload"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/config"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/store/sqlite"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/summary"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Config file (optional)")
		dictPath     = flag.String("dict", "", "Dictionary file in LIWC.CAT format")
		corpusPath   = flag.String("corpus", "", "JSONL corpus to summarize")
		dbPath       = flag.String("db", "", "SQLite database with stored results")
		runID        = flag.String("run", "", "Run to summarize (with --db)")
		counts       = flag.Bool("counts", false, "Include the raw word count in each vector")
		allowMissing = flag.Bool("allow-missing-numbers", false, "Accept dictionaries without a NUMBERS category")
	)
	flag.Parse()

	if *corpusPath != "" && *dbPath != "" {
		log.Fatal("use only one of --corpus, --db")
	}
	if *corpusPath == "" && *dbPath == "" {
		log.Fatal("--corpus or --db required")
	}
	if *dbPath != "" && *runID == "" {
		log.Fatal("--run required with --db")
	}

	var (
		agg     *summary.Aggregator
		skipped int
		err     error
	)
	if *corpusPath != "" {
		agg, skipped, err = summarizeCorpus(*configPath, *dictPath, *corpusPath, *counts, *allowMissing)
	} else {
		agg, err = summarizeRun(context.Background(), *dbPath, *runID)
	}
	if err != nil {
		log.Fatal(err)
	}

	result := statsReport{
		Subjects: agg.Count(),
		Skipped:  skipped,
		Features: agg.Summary(),
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

type statsReport struct {
	Subjects int                      `json:"subjects"`
	Skipped  int                      `json:"skipped,omitempty"`
	Features []summary.FeatureSummary `json:"features"`
}

func summarizeCorpus(configPath, dictPath, corpusPath string, counts, allowMissing bool) (*summary.Aggregator, int, error) {
	loader := config.Loader{
		ConfigPath:          configPath,
		DictionaryPath:      dictPath,
		IncludeWordCount:    counts,
		AllowMissingNumbers: allowMissing,
	}
	components, err := loader.Load()
	if err != nil {
		return nil, 0, err
	}

	docs, err := textload.LoadCorpus(corpusPath)
	if err != nil {
		return nil, 0, err
	}

	agg := summary.New()
	skipped := 0
	for _, doc := range docs {
		vec, err := components.Analyzer.Analyze(doc.Text)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", doc.Subject, err)
			skipped++
			continue
		}
		agg.Add(vec)
	}
	if agg.Count() == 0 {
		return nil, skipped, fmt.Errorf("no analyzable documents in %s", corpusPath)
	}
	return agg, skipped, nil
}

func summarizeRun(ctx context.Context, dbPath, runID string) (*summary.Aggregator, error) {
	st, err := sqlite.OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	records, err := st.GetRecordsByRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records for run %s", runID)
	}

	agg := summary.New()
	for _, rec := range records {
		agg.Add(rec.Features)
	}
	return agg, nil
}
