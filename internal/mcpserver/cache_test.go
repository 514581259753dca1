package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/namecase/nameerrors"
)

func TestCaserCache_ReusesEntries(t *testing.T) {
	c := newCaserCache(4)

	first, err := c.resolve("nl", false)
	require.NoError(t, err)
	second, err := c.resolve("nl", false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, c.size())

	other, err := c.resolve("nl", true)
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, c.size())
}

func TestCaserCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newCaserCache(2)

	_, err := c.resolve("", false)
	require.NoError(t, err)
	_, err = c.resolve("nl", false)
	require.NoError(t, err)
	_, err = c.resolve("tr", false)
	require.NoError(t, err)

	assert.Equal(t, 2, c.size())
	c.mu.Lock()
	_, hasTurkish := c.entries[caserCacheKey("tr", false)]
	c.mu.Unlock()
	assert.True(t, hasTurkish, "newest entry must survive eviction")
}

func TestCaserCache_InvalidLanguage(t *testing.T) {
	c := newCaserCache(2)

	got, err := c.resolve("not a tag!", false)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, nameerrors.ErrConfig)
	assert.Zero(t, c.size(), "failed builds must not be cached")
}

func TestCaserCache_Reset(t *testing.T) {
	c := newCaserCache(2)
	_, err := c.resolve("", false)
	require.NoError(t, err)

	c.reset()
	assert.Zero(t, c.size())
}
