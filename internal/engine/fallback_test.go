package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fam-nudger/backend/internal/llm"
	"github.com/fam-nudger/backend/internal/taxonomy"
)

func TestLLMFallbackClassifier_ClassifyIngredient(t *testing.T) {
	ctx := context.Background()

	t.Run("well-formed response", func(t *testing.T) {
		mock := &llm.MockClient{
			Response: `{"category":"stimulant","risk_tags":["pregnant","child"],"reasoning":"Caffeine analogue."}`,
		}
		classifier := NewLLMFallbackClassifier(mock, nil)

		result, err := classifier.ClassifyIngredient(ctx, "guarana extract")
		require.NoError(t, err)
		assert.Equal(t, taxonomy.CategoryStimulant, result.Category)
		assert.Equal(t, []string{"pregnant", "child"}, result.RiskTags)
		assert.Equal(t, "Caffeine analogue.", result.Reasoning)
	})

	t.Run("fenced response", func(t *testing.T) {
		mock := &llm.MockClient{
			Response: "```json\n{\"category\":\"preservative\",\"risk_tags\":[\"child\"],\"reasoning\":\"ok\"}\n```",
		}
		classifier := NewLLMFallbackClassifier(mock, nil)

		result, err := classifier.ClassifyIngredient(ctx, "potassium sorbate")
		require.NoError(t, err)
		assert.Equal(t, taxonomy.CategoryPreservative, result.Category)
	})

	t.Run("json buried in chatter", func(t *testing.T) {
		mock := &llm.MockClient{
			Response: `Sure! Here is the classification: {"category":"high_sugar","risk_tags":["diabetic"],"reasoning":"sugar"} Hope that helps.`,
		}
		classifier := NewLLMFallbackClassifier(mock, nil)

		result, err := classifier.ClassifyIngredient(ctx, "agave syrup")
		require.NoError(t, err)
		assert.Equal(t, taxonomy.CategoryHighSugar, result.Category)
		assert.Equal(t, []string{"diabetic"}, result.RiskTags)
	})

	t.Run("malformed output degrades to unparsable", func(t *testing.T) {
		for _, raw := range []string{
			"this ingredient is probably fine",
			`{"category": "preservative", "risk_tags": [`,
			"",
			`{"risk_tags":["child"],"reasoning":"no category"}`,
		} {
			mock := &llm.MockClient{Response: raw}
			classifier := NewLLMFallbackClassifier(mock, nil)

			result, err := classifier.ClassifyIngredient(ctx, "mystery gum")
			require.NoError(t, err, "raw %q must not error", raw)
			assert.Equal(t, taxonomy.CategoryUnknown, result.Category, "raw %q", raw)
			assert.Empty(t, result.RiskTags, "raw %q", raw)
			assert.Equal(t, UnparsableReasoning, result.Reasoning, "raw %q", raw)
		}
	})

	t.Run("unknown category coerced, tags kept", func(t *testing.T) {
		mock := &llm.MockClient{
			Response: `{"category":"emulsifier","risk_tags":["Child "," pregnant"],"reasoning":"made-up category"}`,
		}
		classifier := NewLLMFallbackClassifier(mock, nil)

		result, err := classifier.ClassifyIngredient(ctx, "polysorbate 80")
		require.NoError(t, err)
		assert.Equal(t, taxonomy.CategoryUnknown, result.Category)
		assert.Equal(t, []string{"child", "pregnant"}, result.RiskTags)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		mock := &llm.MockClient{Err: errors.New("connection refused")}
		classifier := NewLLMFallbackClassifier(mock, nil)

		_, err := classifier.ClassifyIngredient(ctx, "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("cancelled context propagates", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		mock := &llm.MockClient{Response: `{"category":"stimulant","risk_tags":[],"reasoning":"x"}`}
		classifier := NewLLMFallbackClassifier(mock, nil)

		_, err := classifier.ClassifyIngredient(cancelled, "anything")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
