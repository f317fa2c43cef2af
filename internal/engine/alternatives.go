package engine

import "github.com/fam-nudger/backend/internal/taxonomy"

// Alternative is a healthier-swap suggestion for a flagged ingredient
// category.
type Alternative struct {
	Name     string   `json:"name"`
	Reason   string   `json:"reason"`
	Benefits []string `json:"benefits"`
	Score    int      `json:"score"`
	Replaces string   `json:"replaces,omitempty"`
}

const maxAlternatives = 5

var alternativeSuggestions = map[taxonomy.Category]Alternative{
	taxonomy.CategoryArtificialSweetener: {
		Name:     "Products with natural sweeteners (stevia, monk fruit)",
		Reason:   "Natural sweeteners without metabolic concerns",
		Benefits: []string{"No artificial sweeteners", "Natural origin", "Lower glycemic impact"},
		Score:    85,
	},
	taxonomy.CategoryArtificialDye: {
		Name:     "Products with natural colorings",
		Reason:   "Natural colors from fruits and vegetables",
		Benefits: []string{"No artificial dyes", "Safe for children", "No hyperactivity concerns"},
		Score:    88,
	},
	taxonomy.CategoryHighSugar: {
		Name:     "Low-sugar or naturally sweetened alternatives",
		Reason:   "Reduced sugar content for better metabolic health",
		Benefits: []string{"Lower sugar", "Better for diabetics", "Reduced calorie intake"},
		Score:    82,
	},
	taxonomy.CategoryHighSodium: {
		Name:     "Low-sodium or no-salt-added alternatives",
		Reason:   "Less sodium for better blood pressure control",
		Benefits: []string{"Lower sodium", "Better for hypertension", "Heart-friendly"},
		Score:    84,
	},
	taxonomy.CategoryPreservative: {
		Name:     "Fresh or minimally preserved options",
		Reason:   "Fewer preservatives means fewer potential health concerns",
		Benefits: []string{"No harmful preservatives", "Fresher ingredients", "Cleaner label"},
		Score:    86,
	},
	taxonomy.CategoryHarmfulFat: {
		Name:     "Products with healthy fats (olive oil, avocado)",
		Reason:   "Heart-healthy fats instead of trans fats",
		Benefits: []string{"No trans fats", "Heart-healthy", "Anti-inflammatory"},
		Score:    90,
	},
	taxonomy.CategoryStimulant: {
		Name:     "Caffeine-free alternatives",
		Reason:   "No stimulants that affect sleep or blood pressure",
		Benefits: []string{"No caffeine", "Better for sleep", "Safe during pregnancy"},
		Score:    88,
	},
}

// Alternatives suggests healthier swaps for the flagged ingredient
// categories, one suggestion per category in flag order, capped at
// maxAlternatives. A clean flag list yields a single generic suggestion.
func Alternatives(flagged []FlaggedIngredient) []Alternative {
	if len(flagged) == 0 {
		return []Alternative{{
			Name:     "This product appears healthy for your profile",
			Reason:   "No concerning ingredients found",
			Benefits: []string{"No flagged ingredients"},
			Score:    90,
		}}
	}

	alternatives := make([]Alternative, 0, len(flagged))
	seen := make(map[taxonomy.Category]bool)

	for _, f := range flagged {
		if len(alternatives) >= maxAlternatives {
			break
		}
		suggestion, ok := alternativeSuggestions[f.Category]
		if !ok || seen[f.Category] {
			continue
		}
		seen[f.Category] = true
		suggestion.Replaces = f.Ingredient
		alternatives = append(alternatives, suggestion)
	}

	if len(alternatives) == 0 {
		alternatives = append(alternatives, Alternative{
			Name:     "Whole, unprocessed food alternative",
			Reason:   "Whole foods provide nutrients without additives",
			Benefits: []string{"No additives", "Nutrient-dense", "Minimally processed"},
			Score:    95,
		})
	}

	return alternatives
}
