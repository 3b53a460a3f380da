package engine

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const DefaultLang = "es"

// Stages selects which morphological submodules an engine runs.
type Stages struct {
	AffixAnalysis         bool
	CompoundAnalysis      bool
	MultiwordsDetection   bool
	NumbersDetection      bool
	DatesDetection        bool
	QuantitiesDetection   bool
	PunctuationDetection  bool
	DictionarySearch      bool
	ProbabilityAssignment bool
	NERecognition         bool
	RetokContractions     bool
}

// DefaultStages returns all submodules active, except compound analysis.
func DefaultStages() Stages {
	return Stages{
		AffixAnalysis:         true,
		MultiwordsDetection:   true,
		NumbersDetection:      true,
		DatesDetection:        true,
		QuantitiesDetection:   true,
		PunctuationDetection:  true,
		DictionarySearch:      true,
		ProbabilityAssignment: true,
		NERecognition:         true,
		RetokContractions:     true,
	}
}

// stageNames maps the configuration names of the stages to their flags.
func (s *Stages) stageNames() map[string]*bool {
	return map[string]*bool{
		"affix":        &s.AffixAnalysis,
		"compound":     &s.CompoundAnalysis,
		"multiwords":   &s.MultiwordsDetection,
		"numbers":      &s.NumbersDetection,
		"dates":        &s.DatesDetection,
		"quantities":   &s.QuantitiesDetection,
		"punctuation":  &s.PunctuationDetection,
		"dictionary":   &s.DictionarySearch,
		"probability":  &s.ProbabilityAssignment,
		"ner":          &s.NERecognition,
		"contractions": &s.RetokContractions,
	}
}

// StageNames returns the configuration names of the stages, sorted.
func StageNames() []string {
	var s Stages
	names := []string{}
	for name := range s.stageNames() {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Set switches the stage with the given configuration name.
func (s *Stages) Set(name string, on bool) error {
	flag, ok := s.stageNames()[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown stage %q, allowed values are %s", name, strings.Join(StageNames(), ", "))
	}

	*flag = on
	return nil
}

// Config is the immutable configuration an engine is built from. It is
// created once at startup.
type Config struct {
	// Lang is the analysis language code.
	Lang string

	// DataDir is the root of the engine data files.
	DataDir string

	// DictPath overrides the dictionary location. Empty means the language
	// default.
	DictPath string

	Stages Stages
}

// LangDir returns the directory holding the data files of the language.
func (c Config) LangDir() string {
	return filepath.Join(c.DataDir, c.Lang)
}

// LangFile returns the path of a data file of the language.
func (c Config) LangFile(name string) string {
	return filepath.Join(c.LangDir(), name)
}

// CommonFile returns the path of a language independent data file.
func (c Config) CommonFile(name string) string {
	return filepath.Join(c.DataDir, "common", name)
}
