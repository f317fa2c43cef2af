package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fam-nudger/backend/internal/llm"
	"github.com/fam-nudger/backend/internal/taxonomy"
)

// UnparsableReasoning is the reasoning recorded when the model's output
// could not be reconciled into the risk model.
const UnparsableReasoning = "Unparsable"

const fallbackSystemPrompt = "You are a nutrition and food-safety expert. " +
	"Respond only with JSON of the shape " +
	`{"category":"","risk_tags":[],"reasoning":""}.`

const fallbackUserPromptTemplate = `Classify the food ingredient %q for health risks.

Set "category" to one of: artificial_sweetener, artificial_dye, preservative,
harmful_fat, high_sugar, high_sodium, stimulant, flavor_enhancer, unknown.
Set "risk_tags" to the health profiles the ingredient is risky for, chosen from:
child, toddler, pregnant, adult, senior, diabetic, cardiac, hypertensive,
obesity, celiac, lactose_intolerant. Use an empty list when the ingredient is
benign. Set "reasoning" to one short sentence.`

// FallbackResult is a fallback classification mapped into the risk-tag
// vocabulary.
type FallbackResult struct {
	Category  taxonomy.Category `json:"category"`
	RiskTags  []string          `json:"risk_tags"`
	Reasoning string            `json:"reasoning"`
}

// FallbackClassifier classifies ingredients the rule table does not know.
// Implementations must absorb malformed model output (returning the safe
// unknown result) and surface only transport failures as errors.
type FallbackClassifier interface {
	ClassifyIngredient(ctx context.Context, ingredient string) (FallbackResult, error)
}

// LLMFallbackClassifier delegates to a generative model and reconciles its
// (potentially malformed) output into a FallbackResult.
type LLMFallbackClassifier struct {
	client llm.Client
	logger *zap.Logger
}

var _ FallbackClassifier = (*LLMFallbackClassifier)(nil)

// NewLLMFallbackClassifier creates a fallback classifier over the given
// model client.
func NewLLMFallbackClassifier(client llm.Client, logger *zap.Logger) *LLMFallbackClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMFallbackClassifier{client: client, logger: logger}
}

// ClassifyIngredient asks the model to classify one ingredient. A transport
// failure (unreachable model, timeout, cancellation) is returned as an error
// so the caller can decide about retries; a parse failure is absorbed here
// and degrades to the unknown result, because one bad completion must never
// abort scoring for a whole product.
func (c *LLMFallbackClassifier) ClassifyIngredient(ctx context.Context, ingredient string) (FallbackResult, error) {
	prompt := fmt.Sprintf(fallbackUserPromptTemplate, ingredient)

	raw, err := c.client.Chat(ctx, fallbackSystemPrompt, prompt)
	if err != nil {
		return FallbackResult{}, fmt.Errorf("fallback classification of %q: %w", ingredient, err)
	}

	result, ok := parseFallbackResponse(raw)
	if !ok {
		c.logger.Warn("unparsable fallback classifier output",
			zap.String("ingredient", ingredient),
			zap.String("raw", truncateForLog(raw)))
		return unparsableResult(), nil
	}
	return result, nil
}

func unparsableResult() FallbackResult {
	return FallbackResult{
		Category:  taxonomy.CategoryUnknown,
		RiskTags:  []string{},
		Reasoning: UnparsableReasoning,
	}
}

// parseFallbackResponse validates the model output against the strict
// expected shape. Fences and leading chatter are tolerated; anything that
// still fails to parse reports ok=false.
func parseFallbackResponse(raw string) (FallbackResult, bool) {
	cleaned := cleanModelResponse(raw)

	candidate := extractFirstJSONObject(cleaned)
	if candidate == "" {
		candidate = extractFirstJSONObject(raw)
	}
	if candidate == "" {
		return FallbackResult{}, false
	}

	var tmp struct {
		Category  string   `json:"category"`
		RiskTags  []string `json:"risk_tags"`
		Reasoning string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(candidate), &tmp); err != nil {
		return FallbackResult{}, false
	}
	if strings.TrimSpace(tmp.Category) == "" {
		return FallbackResult{}, false
	}

	// A category outside the fixed vocabulary is coerced to unknown rather
	// than trusted; risk tags are free vocabulary and pass through.
	category := taxonomy.Category(strings.ToLower(strings.TrimSpace(tmp.Category)))
	if !taxonomy.KnownCategory(category) {
		category = taxonomy.CategoryUnknown
	}

	tags := make([]string, 0, len(tmp.RiskTags))
	for _, t := range tmp.RiskTags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}

	return FallbackResult{
		Category:  category,
		RiskTags:  tags,
		Reasoning: strings.TrimSpace(tmp.Reasoning),
	}, true
}

func truncateForLog(s string) string {
	if len(s) > 256 {
		return s[:256]
	}
	return s
}
