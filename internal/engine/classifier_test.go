package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fam-nudger/backend/internal/taxonomy"
)

func loadTable(t *testing.T) *taxonomy.Table {
	t.Helper()
	table, err := taxonomy.Load()
	require.NoError(t, err)
	return table
}

func TestRuleClassifier_Classify(t *testing.T) {
	classifier := NewRuleClassifier(loadTable(t))

	t.Run("exact canonical name", func(t *testing.T) {
		entry, tags := classifier.Classify("aspartame")
		require.NotNil(t, entry)
		assert.Equal(t, "aspartame", entry.CanonicalName)
		assert.Equal(t, []string{"child", "pregnant", "toddler"}, tags)
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		entry, _ := classifier.Classify("contains ASPARTAME as sweetener")
		require.NotNil(t, entry)
		assert.Equal(t, "aspartame", entry.CanonicalName)
	})

	t.Run("synonym match", func(t *testing.T) {
		entry, _ := classifier.Classify("sweetened with hfcs")
		require.NotNil(t, entry)
		assert.Equal(t, "high fructose corn syrup", entry.CanonicalName)
	})

	t.Run("first match wins, never combined", func(t *testing.T) {
		// "high fructose corn syrup" contains plain "corn syrup" too; the
		// earlier-declared entry must win.
		entry, tags := classifier.Classify("high fructose corn syrup")
		require.NotNil(t, entry)
		assert.Equal(t, "high fructose corn syrup", entry.CanonicalName)
		assert.Equal(t, entry.AffectedProfiles, tags)
	})

	t.Run("plain corn syrup matches its own entry", func(t *testing.T) {
		entry, _ := classifier.Classify("corn syrup")
		require.NotNil(t, entry)
		assert.Equal(t, "corn syrup", entry.CanonicalName)
	})

	t.Run("no match", func(t *testing.T) {
		entry, tags := classifier.Classify("organic oat flour")
		assert.Nil(t, entry)
		assert.Nil(t, tags)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first, firstTags := classifier.Classify("yellow 5 lake")
		second, secondTags := classifier.Classify("yellow 5 lake")
		require.NotNil(t, first)
		assert.Equal(t, first, second)
		assert.Equal(t, firstTags, secondTags)
		assert.Equal(t, "yellow 5", first.CanonicalName)
	})
}

func TestTaxonomy_DuplicateCanonicalName(t *testing.T) {
	_, err := taxonomy.New("test", []taxonomy.Entry{
		{CanonicalName: "Aspartame", Category: taxonomy.CategoryArtificialSweetener, RiskLevel: taxonomy.RiskHigh},
		{CanonicalName: "aspartame", Category: taxonomy.CategoryArtificialSweetener, RiskLevel: taxonomy.RiskLow},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, taxonomy.ErrDuplicateCanonicalName)
}
