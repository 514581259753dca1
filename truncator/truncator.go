package truncator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/namecase/logging"
	"github.com/erraggy/namecase/nameerrors"
)

// Truncator limits strings to a maximum rune count.
// A Truncator is immutable and safe for concurrent use.
type Truncator struct {
	maxLength int
	logger    logging.Logger
}

// Option is a function that configures a Truncator
type Option func(*config) error

type config struct {
	logger logging.Logger
}

// WithLogger sets the logger that receives a debug record for every truncation.
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

// New creates a Truncator that keeps at most maxLength runes.
// maxLength must be positive.
func New(maxLength int, opts ...Option) (*Truncator, error) {
	if maxLength <= 0 {
		return nil, fmt.Errorf("truncator: %w", &nameerrors.ConfigError{
			Option:  "maxLength",
			Value:   maxLength,
			Message: "must be greater than zero",
		})
	}

	cfg := &config{logger: logging.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("truncator: invalid options: %w", err)
		}
	}

	return &Truncator{maxLength: maxLength, logger: cfg.logger}, nil
}

// MaxLength returns the configured limit in runes.
func (t *Truncator) MaxLength() int {
	return t.maxLength
}

// Format returns s unchanged when it has at most MaxLength runes. Otherwise it
// returns the first MaxLength runes with leading and trailing whitespace removed.
func (t *Truncator) Format(s string) string {
	if utf8.RuneCountInString(s) <= t.maxLength {
		return s
	}

	// Cut at the byte offset of the first rune past the limit.
	n := 0
	cut := len(s)
	for i := range s {
		if n == t.maxLength {
			cut = i
			break
		}
		n++
	}

	out := strings.TrimSpace(s[:cut])
	t.logger.Debug("value truncated", "max_length", t.maxLength, "input", s, "output", out)
	return out
}
