package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Version, table.Version())
	assert.Greater(t, table.Len(), 15)

	t.Run("canonical names unique case-insensitively", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, e := range table.Entries() {
			key := strings.ToLower(e.CanonicalName)
			assert.False(t, seen[key], "duplicate canonical name %q", e.CanonicalName)
			seen[key] = true
		}
	})

	t.Run("every entry carries a known category and level", func(t *testing.T) {
		for _, e := range table.Entries() {
			assert.True(t, KnownCategory(e.Category), "entry %q has category %q", e.CanonicalName, e.Category)
			assert.Greater(t, e.RiskLevel.Weight(), 0, "entry %q has level %q", e.CanonicalName, e.RiskLevel)
		}
	})
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New("test", []Entry{
		{CanonicalName: "Red 40", Category: CategoryArtificialDye, RiskLevel: RiskHigh},
		{CanonicalName: "RED 40", Category: CategoryArtificialDye, RiskLevel: RiskLow},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateCanonicalName)
}

func TestNew_RejectsEmptyCanonicalName(t *testing.T) {
	_, err := New("test", []Entry{{Category: CategoryPreservative, RiskLevel: RiskLow}})
	assert.Error(t, err)
}

func TestTable_Match(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	t.Run("substring of token", func(t *testing.T) {
		entry, ok := table.Match("sodium nitrite (preservative)")
		require.True(t, ok)
		assert.Equal(t, "sodium nitrite", entry.CanonicalName)
	})

	t.Run("insertion order breaks substring ties", func(t *testing.T) {
		entry, ok := table.Match("high fructose corn syrup")
		require.True(t, ok)
		assert.Equal(t, "high fructose corn syrup", entry.CanonicalName)
	})

	t.Run("synonym", func(t *testing.T) {
		entry, ok := table.Match("tartrazine")
		require.True(t, ok)
		assert.Equal(t, "yellow 5", entry.CanonicalName)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := table.Match("quinoa")
		assert.False(t, ok)
	})

	t.Run("blank token", func(t *testing.T) {
		_, ok := table.Match("   ")
		assert.False(t, ok)
	})
}

func TestRiskLevelWeight(t *testing.T) {
	assert.Equal(t, 1, RiskLow.Weight())
	assert.Equal(t, 2, RiskMedium.Weight())
	assert.Equal(t, 3, RiskHigh.Weight())
	assert.Equal(t, 4, RiskCritical.Weight())
	assert.Equal(t, 0, RiskLevel("").Weight())
}
