package engine

import "github.com/fam-nudger/backend/internal/taxonomy"

// scorePenaltyPerWeight is the score subtracted per unit of severity weight
// of a flagged ingredient.
const scorePenaltyPerWeight = 10

// Score combines classified ingredients with the household's profile set
// into a numeric score, a risk bucket and the ordered flag list. It is
// deterministic: identical inputs always yield an identical result.
//
// An ingredient is flagged when its risk tags intersect the profile set, or
// unconditionally when its risk level is critical. An empty profile set
// means no restrictions apply and nothing is flagged.
func Score(ingredients []ClassifiedIngredient, profiles ProfileSet) AnalysisResult {
	flagged := make([]FlaggedIngredient, 0)
	totalWeight := 0

	if len(profiles) > 0 {
		for _, ing := range ingredients {
			if !isFlagged(ing, profiles) {
				continue
			}
			flagged = append(flagged, FlaggedIngredient{
				Ingredient:       ing.RawText,
				Category:         ing.Category,
				RiskLevel:        ing.RiskLevel,
				AffectedProfiles: ing.RiskTags,
				Reason:           ing.Reasoning,
			})
			totalWeight += ing.RiskLevel.Weight()
		}
	}

	score := 100 - totalWeight*scorePenaltyPerWeight
	if score < 0 {
		score = 0
	}

	return AnalysisResult{
		OverallScore:       score,
		RiskLevel:          BucketFor(score),
		FlaggedIngredients: flagged,
	}
}

func isFlagged(ing ClassifiedIngredient, profiles ProfileSet) bool {
	// Critical entries are unconditional: their risk applies regardless of
	// which profiles are present.
	if ing.RiskLevel == taxonomy.RiskCritical {
		return true
	}
	for _, tag := range ing.RiskTags {
		if profiles.Has(tag) {
			return true
		}
	}
	return false
}

// BucketFor maps an overall score to its risk bucket. Thresholds are exact
// at boundaries: 80 is safe, 79 is low, and so on.
func BucketFor(score int) RiskBucket {
	switch {
	case score >= 80:
		return BucketSafe
	case score >= 60:
		return BucketLow
	case score >= 40:
		return BucketMedium
	case score >= 20:
		return BucketHigh
	default:
		return BucketCritical
	}
}
