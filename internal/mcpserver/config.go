package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/text/language"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Request limits.
	MaxBatch      int
	MaxNameLength int

	// name_case defaults, used when a call leaves the field unset.
	Language string
	NFC      bool

	// Number of configured casers kept in the caser cache.
	CacheMaxSize int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from NAMECASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxBatch:      envInt("NAMECASE_MAX_BATCH", 1000),
		MaxNameLength: envInt("NAMECASE_MAX_NAME_LENGTH", 1024),
		Language:      envLanguage("NAMECASE_LANGUAGE"),
		NFC:           envBool("NAMECASE_NFC", false),
		CacheMaxSize:  envInt("NAMECASE_CACHE_MAX_SIZE", 16),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

// envLanguage returns the canonical form of a BCP 47 tag, or "" when the
// variable is unset or unparseable.
func envLanguage(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	tag, err := language.Parse(v)
	if err != nil {
		slog.Warn("invalid language env var, ignoring", "key", key, "value", v)
		return ""
	}
	return tag.String()
}
