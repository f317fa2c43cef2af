package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fam-nudger/backend/internal/taxonomy"
)

var categoryAdvice = map[taxonomy.Category]string{
	taxonomy.CategoryArtificialSweetener: "Contains artificial sweeteners. Consider products with natural sweeteners like stevia.",
	taxonomy.CategoryArtificialDye:       "Contains artificial dyes. Look for products with natural colorings.",
	taxonomy.CategoryHighSugar:           "High in added sugars. Consider low-sugar or sugar-free alternatives.",
	taxonomy.CategoryPreservative:        "Contains preservatives of concern. Fresh or minimally processed options may be better.",
	taxonomy.CategoryHighSodium:          "High in sodium. Consider low-sodium alternatives.",
}

// Recommendations turns a flag list into human-readable guidance. Output is
// deterministic: category advice follows flag order, affected profiles are
// sorted.
func Recommendations(flagged []FlaggedIngredient, profiles ProfileSet) []string {
	if len(flagged) == 0 {
		return []string{"No significant concerns found for your health profile."}
	}

	recommendations := make([]string, 0, 4)

	highRisk := 0
	for _, f := range flagged {
		if f.RiskLevel == taxonomy.RiskHigh || f.RiskLevel == taxonomy.RiskCritical {
			highRisk++
		}
	}
	if highRisk > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Found %d high-risk ingredient(s). Consider avoiding this product or finding alternatives.", highRisk))
	}

	affected := make(map[string]bool)
	for _, f := range flagged {
		for _, p := range f.AffectedProfiles {
			if profiles.Has(p) {
				affected[p] = true
			}
		}
	}
	if len(affected) > 0 {
		names := make([]string, 0, len(affected))
		for p := range affected {
			names = append(names, p)
		}
		sort.Strings(names)
		recommendations = append(recommendations, fmt.Sprintf(
			"This product contains ingredients that may affect: %s.", strings.Join(names, ", ")))
	}

	seen := make(map[taxonomy.Category]bool)
	for _, f := range flagged {
		advice, ok := categoryAdvice[f.Category]
		if !ok || seen[f.Category] {
			continue
		}
		seen[f.Category] = true
		recommendations = append(recommendations, advice)
	}

	return recommendations
}
