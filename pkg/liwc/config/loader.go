package config

import (
	"fmt"

	"github.com/eur-rsm/personality-recognizer/pkg/liwc"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/dict"
	"github.com/eur-rsm/personality-recognizer/pkg/liwc/internalerr"
)

// Loader loads the configuration file and constructs analysis components.
// Field values set directly on the Loader override the configuration file.
type Loader struct {
	ConfigPath     string
	DictionaryPath string

	IncludeWordCount    bool
	AllowMissingNumbers bool
}

// Components holds all loaded analysis components
type Components struct {
	Config     *Config
	Dictionary *dict.Dictionary
	Analyzer   *liwc.Analyzer
}

// Load reads the configuration and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Config: &Config{}}

	// Load config file
	if l.ConfigPath != "" {
		cfg, err := Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		comp.Config = cfg
	}

	dictPath := comp.Config.Dictionary
	if l.DictionaryPath != "" {
		dictPath = l.DictionaryPath
	}
	if dictPath == "" {
		return nil, fmt.Errorf("no dictionary path given: %w", internalerr.ErrInvalidConfig)
	}

	// Load dictionary
	d, err := dict.Load(dictPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	comp.Dictionary = d

	// Build analyzer
	comp.Analyzer, err = liwc.New(d, liwc.Options{
		IncludeWordCount:    l.IncludeWordCount || comp.Config.IncludeWordCount,
		AllowMissingNumbers: l.AllowMissingNumbers || comp.Config.AllowMissingNumbers,
	})
	if err != nil {
		return nil, fmt.Errorf("build analyzer: %w", err)
	}

	return comp, nil
}
