package caser

import (
	"golang.org/x/text/language"

	"github.com/erraggy/namecase/logging"
	"github.com/erraggy/namecase/nameerrors"
)

// Option is a function that configures a Caser
type Option func(*config) error

// config holds configuration for a Caser
type config struct {
	language     language.Tag
	normalizeNFC bool
	logger       logging.Logger
}

// applyOptions applies option functions over the defaults
func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		language: language.Und,
		logger:   logging.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithLanguage sets the language whose casing rules the initial capitalization
// uses. Dutch capitalizes a leading "ij" as "IJ"; Turkish and Azeri map
// dotted and dotless i correctly. Default: language.Und
func WithLanguage(tag language.Tag) Option {
	return func(cfg *config) error {
		cfg.language = tag
		return nil
	}
}

// WithLanguageString parses a BCP 47 tag such as "nl" or "tr-TR" and sets it as
// with WithLanguage. An empty string selects language.Und.
func WithLanguageString(tag string) Option {
	return func(cfg *config) error {
		if tag == "" {
			cfg.language = language.Und
			return nil
		}
		parsed, err := language.Parse(tag)
		if err != nil {
			return &nameerrors.ConfigError{
				Option:  "language",
				Value:   tag,
				Message: "invalid BCP 47 language tag",
				Cause:   err,
			}
		}
		cfg.language = parsed
		return nil
	}
}

// WithNormalizeNFC composes the input to Unicode NFC before casing, so
// decomposed accents ("e" + U+0301) become single letters ("é").
// Default: false
func WithNormalizeNFC(enabled bool) Option {
	return func(cfg *config) error {
		cfg.normalizeNFC = enabled
		return nil
	}
}

// WithLogger sets the logger that receives a debug record for every stage
// that changed the name. A nil logger is rejected.
// Default: logging.NopLogger{}
func WithLogger(logger logging.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return &nameerrors.ConfigError{Option: "logger", Message: "logger must not be nil"}
		}
		cfg.logger = logger
		return nil
	}
}
