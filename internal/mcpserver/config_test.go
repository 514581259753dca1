package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearNAMECASEEnv clears all NAMECASE_* env vars to isolate tests from the ambient environment.
func clearNAMECASEEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NAMECASE_MAX_BATCH", "NAMECASE_MAX_NAME_LENGTH",
		"NAMECASE_LANGUAGE", "NAMECASE_NFC",
		"NAMECASE_CACHE_MAX_SIZE",
	} {
		t.Setenv(key, "")
	}
}

// withConfig swaps the active config for the duration of the test.
func withConfig(t *testing.T, mutate func(c *serverConfig)) {
	t.Helper()
	saved := cfg
	next := *cfg
	mutate(&next)
	cfg = &next
	t.Cleanup(func() { cfg = saved })
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearNAMECASEEnv(t)

	c := loadConfig()

	assert.Equal(t, 1000, c.MaxBatch)
	assert.Equal(t, 1024, c.MaxNameLength)
	assert.Empty(t, c.Language)
	assert.False(t, c.NFC)
	assert.Equal(t, 16, c.CacheMaxSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearNAMECASEEnv(t)
	t.Setenv("NAMECASE_MAX_BATCH", "10")
	t.Setenv("NAMECASE_MAX_NAME_LENGTH", "64")
	t.Setenv("NAMECASE_LANGUAGE", "nl")
	t.Setenv("NAMECASE_NFC", "true")
	t.Setenv("NAMECASE_CACHE_MAX_SIZE", "4")

	c := loadConfig()

	assert.Equal(t, 10, c.MaxBatch)
	assert.Equal(t, 64, c.MaxNameLength)
	assert.Equal(t, "nl", c.Language)
	assert.True(t, c.NFC)
	assert.Equal(t, 4, c.CacheMaxSize)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearNAMECASEEnv(t)
	t.Setenv("NAMECASE_MAX_BATCH", "lots")
	t.Setenv("NAMECASE_MAX_NAME_LENGTH", "-5")
	t.Setenv("NAMECASE_LANGUAGE", "not a tag!")
	t.Setenv("NAMECASE_NFC", "sometimes")
	t.Setenv("NAMECASE_CACHE_MAX_SIZE", "0")

	c := loadConfig()

	assert.Equal(t, 1000, c.MaxBatch)
	assert.Equal(t, 1024, c.MaxNameLength)
	assert.Empty(t, c.Language)
	assert.False(t, c.NFC)
	assert.Equal(t, 16, c.CacheMaxSize)
}

func TestEnvLanguage_Canonicalizes(t *testing.T) {
	t.Setenv("NAMECASE_LANGUAGE", "TR-tr")
	assert.Equal(t, "tr-TR", envLanguage("NAMECASE_LANGUAGE"))
}
