package caser

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/erraggy/namecase/internal/naming"
	"github.com/erraggy/namecase/logging"
)

// Caser converts personal names to name case.
// A Caser is immutable and safe for concurrent use.
type Caser struct {
	language     language.Tag
	normalizeNFC bool
	logger       logging.Logger
	stages       []stage
}

// Result pairs an input name with its converted form.
type Result struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// defaultCaser backs the package-level ToNameCase.
var defaultCaser = newCaser(&config{language: language.Und, logger: logging.NopLogger{}})

// New creates a Caser configured by opts.
//
// Example:
//
//	c, err := caser.New(
//	    caser.WithLanguageString("nl"),
//	    caser.WithNormalizeNFC(true),
//	)
func New(opts ...Option) (*Caser, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("caser: invalid options: %w", err)
	}
	return newCaser(cfg), nil
}

func newCaser(cfg *config) *Caser {
	words := naming.NewWordCaser(cfg.language)
	stages := make([]stage, 0, len(ruleStages)+1)
	stages = append(stages, stage{
		name: "initial_caps",
		apply: func(s string) (string, error) {
			return words.CapitalizeRuns(s), nil
		},
	})
	stages = append(stages, ruleStages...)

	return &Caser{
		language:     cfg.language,
		normalizeNFC: cfg.normalizeNFC,
		logger:       cfg.logger,
		stages:       stages,
	}
}

// Language returns the language whose casing rules the Caser applies.
func (c *Caser) Language() language.Tag {
	return c.language
}

// Convert returns name in name case. The empty string is returned unchanged.
// Convert never fails: a stage that cannot match leaves its input as is.
func (c *Caser) Convert(name string) string {
	if name == "" {
		return name
	}
	if c.normalizeNFC {
		name = norm.NFC.String(name)
	}

	for _, st := range c.stages {
		out, err := st.apply(name)
		if err != nil {
			c.logger.Warn("name case stage skipped", "stage", st.name, "error", err)
			continue
		}
		if out != name {
			c.logger.Debug("name case stage applied", "stage", st.name, "input", name, "output", out)
		}
		name = out
	}
	return name
}

// ConvertAll converts each name, preserving order.
func (c *Caser) ConvertAll(names []string) []Result {
	if len(names) == 0 {
		return nil
	}
	results := make([]Result, len(names))
	for i, name := range names {
		results[i] = Result{Input: name, Output: c.Convert(name)}
	}
	return results
}

// ToNameCase converts name to name case using language-neutral casing rules.
//
//	caser.ToNameCase("MACDONALD")       // "MacDonald"
//	caser.ToNameCase("van der sar")     // "van der Sar"
//	caser.ToNameCase("LOUIS XVI")       // "Louis XVI"
//	caser.ToNameCase("")                // ""
func ToNameCase(name string) string {
	return defaultCaser.Convert(name)
}

// ToNameCasePtr is ToNameCase for optional values: nil stays nil.
func ToNameCasePtr(name *string) *string {
	if name == nil {
		return nil
	}
	out := ToNameCase(*name)
	return &out
}
