package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/eur-rsm/personality-recognizer/internal/textload"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/config"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/report"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/store"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/store/sqlite"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Config file (optional)")
		dictPath     = flag.String("dict", "", "Dictionary file in LIWC.CAT format")
		inputPath    = flag.String("input", "", "Single text file to analyze")
		dirPath      = flag.String("dir", "", "Directory of text files to analyze")
		corpusPath   = flag.String("corpus", "", "JSONL corpus to analyze")
		dbPath       = flag.String("db", "", "SQLite database for results (optional)")
		counts       = flag.Bool("counts", false, "Include the raw word count in each vector")
		allowMissing = flag.Bool("allow-missing-numbers", false, "Accept dictionaries without a NUMBERS category")
	)
	flag.Parse()

	if countModes(*inputPath, *dirPath, *corpusPath) > 1 {
		log.Fatal("use only one of --input, --dir, --corpus")
	}

	loader := config.Loader{
		ConfigPath:          *configPath,
		DictionaryPath:      *dictPath,
		IncludeWordCount:    *counts,
		AllowMissingNumbers: *allowMissing,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Interactive mode
	if countModes(*inputPath, *dirPath, *corpusPath) == 0 {
		runInteractive(components.Analyzer)
		return
	}

	ctx := context.Background()

	st, cleanup, err := openStore(ctx, *dbPath, components.Config.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	docs, err := collectDocuments(*inputPath, *dirPath, *corpusPath)
	if err != nil {
		log.Fatal(err)
	}

	result, err := analyzeAll(ctx, components.Analyzer, st, docs)
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

// runReport is the JSON document printed after a batch run
type runReport struct {
	RunID    string          `json:"run_id"`
	Subjects int             `json:"subjects"`
	Skipped  int             `json:"skipped,omitempty"`
	Records  []report.Record `json:"records"`
}

func countModes(inputPath, dirPath, corpusPath string) int {
	modes := 0
	for _, path := range []string{inputPath, dirPath, corpusPath} {
		if path != "" {
			modes++
		}
	}
	return modes
}

func collectDocuments(inputPath, dirPath, corpusPath string) ([]textload.Document, error) {
	switch {
	case inputPath != "":
		doc, err := textload.ReadSubjectFile(inputPath)
		if err != nil {
			return nil, err
		}
		return []textload.Document{doc}, nil

	case dirPath != "":
		paths, err := textload.DiscoverInputs(dirPath)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no input files in %s", dirPath)
		}
		docs := make([]textload.Document, 0, len(paths))
		for _, path := range paths {
			doc, err := textload.ReadSubjectFile(path)
			if err != nil {
				log.Printf("Warning: skipping %s: %v", path, err)
				continue
			}
			docs = append(docs, doc)
		}
		return docs, nil

	case corpusPath != "":
		return textload.LoadCorpus(corpusPath)
	}
	return nil, nil
}

func analyzeAll(ctx context.Context, analyzer *liwc.Analyzer, st store.Store, docs []textload.Document) (*runReport, error) {
	builder := report.New()
	result := &runReport{
		RunID:   builder.RunID(),
		Records: []report.Record{},
	}

	for _, doc := range docs {
		vec, err := analyzer.Analyze(doc.Text)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", doc.Subject, err)
			result.Skipped++
			continue
		}

		rec := builder.Build(doc.Subject, vec)
		result.Records = append(result.Records, rec)

		if st != nil {
			if err := st.UpsertRecord(ctx, toStoreRecord(rec)); err != nil {
				return nil, fmt.Errorf("save record %s: %w", rec.ID, err)
			}
		}
	}

	result.Subjects = len(result.Records)
	if result.Subjects == 0 {
		return nil, fmt.Errorf("no analyzable documents")
	}
	return result, nil
}

func openStore(ctx context.Context, flagPath, configPath string) (store.Store, func(), error) {
	path := configPath
	if flagPath != "" {
		path = flagPath
	}
	if path == "" {
		return nil, func() {}, nil
	}

	st, err := sqlite.OpenSQLite(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, func() { st.Close() }, nil
}

func toStoreRecord(r report.Record) store.Record {
	return store.Record{
		ID:        r.ID,
		RunID:     r.RunID,
		Subject:   r.Subject,
		CreatedAt: r.CreatedAt,
		WordCount: r.WordCount,
		Features:  r.Features,
	}
}

func runInteractive(analyzer *liwc.Analyzer) {
	fmt.Println("===========================================")
	fmt.Println("  Personality Recognizer")
	fmt.Println("  LIWC-style text features")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Paste a text (Ctrl+D to exit):")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		vec, err := analyzer.Analyze(text)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		out, err := json.MarshalIndent(vec, "", "  ")
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(string(out))
	}

	fmt.Println("\nGoodbye!")
}
