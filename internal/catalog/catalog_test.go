package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quartz/pkg/xtal"
)

func attachTemp(t *testing.T) *Catalog {
	t.Helper()
	c := New()
	require.NoError(t, c.Attach(t.TempDir()))
	t.Cleanup(func() { _ = c.Detach() })
	return c
}

func TestAttachSeedsReferenceList(t *testing.T) {
	c := attachTemp(t)

	entries, err := c.All()
	require.NoError(t, err)
	assert.Equal(t, xtal.Count(), len(entries))

	// Ascending by frequency, with IDs assigned.
	for i, e := range entries {
		assert.NotEmpty(t, e.CrystalID)
		if i > 0 {
			assert.Greater(t, e.Hz, entries[i-1].Hz)
		}
	}
}

func TestAttachLifecycle(t *testing.T) {
	c := New()
	dir := t.TempDir()

	require.NoError(t, c.Attach(dir))
	assert.ErrorIs(t, c.Attach(dir), ErrAlreadyAttached)

	require.NoError(t, c.Detach())
	require.NoError(t, c.Detach(), "detach is idempotent")

	_, err := c.All()
	assert.ErrorIs(t, err, ErrDetached)
}

func TestReattachPreservesIDs(t *testing.T) {
	dir := t.TempDir()

	c := New()
	require.NoError(t, c.Attach(dir))
	first, err := c.Lookup(32_768)
	require.NoError(t, err)
	require.NoError(t, c.Detach())

	c2 := New()
	require.NoError(t, c2.Attach(dir))
	defer c2.Detach()

	second, err := c2.Lookup(32_768)
	require.NoError(t, err)
	assert.Equal(t, first.CrystalID, second.CrystalID)
}

func TestLookup(t *testing.T) {
	c := attachTemp(t)

	e, err := c.Lookup(32_768)
	require.NoError(t, err)
	assert.Equal(t, "32.768_kHz_XTAL", e.Name)
	assert.Contains(t, e.Notes, "RTC")

	_, err = c.Lookup(33_000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch(t *testing.T) {
	c := attachTemp(t)

	entries, err := c.Search("MSM5205")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Contains(t, e.Notes, "MSM5205")
	}

	none, err := c.Search("no such chip anywhere")
	require.NoError(t, err)
	assert.Empty(t, none)
}
