package engine

import (
	"sort"

	"github.com/fam-nudger/backend/internal/taxonomy"
)

// Source records which classifier produced a ClassifiedIngredient.
type Source string

const (
	SourceRule    Source = "rule"
	SourceLLM     Source = "llm"
	SourceUnknown Source = "unknown"
)

// MemberType is the demographic slot of a family member.
type MemberType string

const (
	MemberAdult    MemberType = "adult"
	MemberChild    MemberType = "child"
	MemberToddler  MemberType = "toddler"
	MemberSenior   MemberType = "senior"
	MemberPregnant MemberType = "pregnant"
)

// Member is the read-only view of a family member the engine consumes.
// Ownership of the roster stays with the profile-management collaborator.
type Member struct {
	Name       string
	Type       MemberType
	Age        int
	Conditions []string
	Allergies  []string
}

// ProfileSet is the set of profile tags active for a household.
type ProfileSet map[string]bool

// Has reports whether tag is in the set.
func (p ProfileSet) Has(tag string) bool { return p[tag] }

// Tags returns the tags in sorted order, for deterministic hashing and
// logging.
func (p ProfileSet) Tags() []string {
	tags := make([]string, 0, len(p))
	for t := range p {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// ClassifiedIngredient is the per-token classification outcome. Ephemeral:
// created per scoring request.
type ClassifiedIngredient struct {
	RawText   string
	Entry     *taxonomy.Entry // non-nil only for rule matches
	Category  taxonomy.Category
	RiskLevel taxonomy.RiskLevel
	RiskTags  []string
	Source    Source
	Reasoning string
}

// FlaggedIngredient is one entry of an AnalysisResult's flag list.
type FlaggedIngredient struct {
	Ingredient       string             `json:"ingredient"`
	Category         taxonomy.Category  `json:"category"`
	RiskLevel        taxonomy.RiskLevel `json:"risk_level"`
	AffectedProfiles []string           `json:"affected_profiles"`
	Reason           string             `json:"reason"`
}

// RiskBucket is the coarse risk classification derived from the overall
// score.
type RiskBucket string

const (
	BucketSafe     RiskBucket = "safe"
	BucketLow      RiskBucket = "low"
	BucketMedium   RiskBucket = "medium"
	BucketHigh     RiskBucket = "high"
	BucketCritical RiskBucket = "critical"
)

// AnalysisResult is the scored outcome for one product and one household.
// It is a pure function of (ingredient list, profile set, taxonomy version).
type AnalysisResult struct {
	ProductID          string              `json:"product_id,omitempty"`
	OverallScore       int                 `json:"overall_score"`
	RiskLevel          RiskBucket          `json:"risk_level"`
	FlaggedIngredients []FlaggedIngredient `json:"flagged_ingredients"`
	Recommendations    []string            `json:"recommendations"`
	TaxonomyVersion    string              `json:"taxonomy_version"`
}
