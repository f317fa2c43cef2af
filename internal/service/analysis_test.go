package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fam-nudger/backend/internal/engine"
	"github.com/fam-nudger/backend/internal/llm"
	"github.com/fam-nudger/backend/internal/models"
	"github.com/fam-nudger/backend/internal/service"
	"github.com/fam-nudger/backend/internal/taxonomy"
	"github.com/fam-nudger/backend/internal/testdb"
)

func newAnalysisFixture(t *testing.T, opts ...engine.Option) (*service.AnalysisService, *service.MemberService, uuid.UUID) {
	t.Helper()
	db := testdb.Open(t)
	table, err := taxonomy.Load()
	require.NoError(t, err)

	members := service.NewMemberService(db)
	analysis := service.NewAnalysisService(db, nil, engine.New(table, opts...), members, nil)

	userID := uuid.New()
	_, err = members.CreateMember(context.Background(), userID, &models.FamilyMember{
		Name: "Maya", MemberType: "child", Age: 7,
	})
	require.NoError(t, err)
	_, err = members.CreateMember(context.Background(), userID, &models.FamilyMember{
		Name: "Rob", MemberType: "adult", Age: 41, Conditions: []string{"hypertensive"},
	})
	require.NoError(t, err)

	return analysis, members, userID
}

func TestAnalysisService_AnalyzeForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("scores against the household and persists", func(t *testing.T) {
		analysis, _, userID := newAnalysisFixture(t)

		response, err := analysis.AnalyzeForUser(ctx, userID, "0123456789012", "High Fructose Corn Syrup, Aspartame, Salt")
		require.NoError(t, err)

		assert.Equal(t, "0123456789012", response.ProductIdentity)
		assert.Len(t, response.Result.FlaggedIngredients, 2)
		assert.Less(t, response.Result.OverallScore, 100)
		assert.NotEmpty(t, response.Alternatives)
		assert.False(t, response.Cached)

		history, err := analysis.History(ctx, userID, 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "0123456789012", history[0].ProductIdentity)
		assert.Equal(t, response.Result.OverallScore, history[0].OverallScore)
		assert.NotEmpty(t, history[0].ProfileHash)
		assert.Equal(t, response.Result.TaxonomyVersion, history[0].TaxonomyVersion)
	})

	t.Run("empty household gets a clean score", func(t *testing.T) {
		db := testdb.Open(t)
		table, err := taxonomy.Load()
		require.NoError(t, err)
		members := service.NewMemberService(db)
		analysis := service.NewAnalysisService(db, nil, engine.New(table), members, nil)

		response, err := analysis.AnalyzeForUser(ctx, uuid.New(), "manual:abc", "aspartame, red 40")
		require.NoError(t, err)
		assert.Equal(t, 100, response.Result.OverallScore)
		assert.Empty(t, response.Result.FlaggedIngredients)
	})

	t.Run("degraded fallback result is served but not persisted", func(t *testing.T) {
		failing := engine.NewLLMFallbackClassifier(&llm.MockClient{Err: assert.AnError}, nil)
		analysis, _, userID := newAnalysisFixture(t, engine.WithFallback(failing, 2))

		response, err := analysis.AnalyzeForUser(ctx, userID, "manual:def", "aspartame, mystery gum")
		require.NoError(t, err)
		require.Len(t, response.Result.FlaggedIngredients, 1)
		assert.Equal(t, "aspartame", response.Result.FlaggedIngredients[0].Ingredient)

		history, err := analysis.History(ctx, userID, 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("history honors limit and recency", func(t *testing.T) {
		analysis, _, userID := newAnalysisFixture(t)

		for _, identity := range []string{"a", "b", "c"} {
			_, err := analysis.AnalyzeForUser(ctx, userID, identity, "salt")
			require.NoError(t, err)
		}

		history, err := analysis.History(ctx, userID, 2)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})
}
