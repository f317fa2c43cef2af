// Package engine implements the ingredient risk classification and
// family-profile scoring core: normalizing raw ingredient lists, classifying
// tokens against the risk taxonomy (with an optional generative-model
// fallback), resolving household profile tags and producing scored analysis
// results.
package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fam-nudger/backend/internal/taxonomy"
)

// ErrFallbackUnavailable marks a retryable transport failure of the fallback
// classifier. The accompanying AnalysisResult is still valid: ingredients
// the fallback could not reach are reported with source unknown.
var ErrFallbackUnavailable = errors.New("fallback classifier unavailable")

const defaultFallbackConcurrency = 4

// Engine ties the normalizer, rule classifier, optional fallback classifier
// and scorer together. It holds no mutable state beyond the immutable
// taxonomy, so one Engine serves concurrent scoring requests without locks.
type Engine struct {
	table    *taxonomy.Table
	rules    *RuleClassifier
	fallback FallbackClassifier
	limit    int
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithFallback enables the fallback classifier for tokens the rule table
// does not match. limit bounds concurrent fallback calls per request; values
// below 1 fall back to the default.
func WithFallback(fc FallbackClassifier, limit int) Option {
	return func(e *Engine) {
		e.fallback = fc
		if limit > 0 {
			e.limit = limit
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over the given taxonomy. Without WithFallback,
// unmatched tokens are reported as unknown and never block scoring.
func New(table *taxonomy.Table, opts ...Option) *Engine {
	e := &Engine{
		table:  table,
		rules:  NewRuleClassifier(table),
		limit:  defaultFallbackConcurrency,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TaxonomyVersion returns the version of the taxonomy the engine serves.
func (e *Engine) TaxonomyVersion() string { return e.table.Version() }

// AnalyzeProduct normalizes ingredientsText, classifies every token,
// resolves the household's profile set from members and scores the product.
//
// Empty ingredient text or an empty roster are not errors: they produce a
// degenerate but valid result (full score, no flags). When the fallback
// classifier fails at the transport level the returned error wraps
// ErrFallbackUnavailable and the result is still populated, covering every
// ingredient that could be classified.
func (e *Engine) AnalyzeProduct(ctx context.Context, ingredientsText string, members []Member) (*AnalysisResult, error) {
	tokens := NormalizeIngredients(ingredientsText)
	profiles := ResolveProfiles(members)

	classified, err := e.ClassifyAll(ctx, tokens)

	result := Score(classified, profiles)
	result.Recommendations = Recommendations(result.FlaggedIngredients, profiles)
	result.TaxonomyVersion = e.table.Version()

	return &result, err
}

// ClassifyAll classifies each token, consulting the fallback classifier for
// tokens the rule table does not match. Fallback calls are independent per
// ingredient and run concurrently under the configured limit; input order is
// preserved in the returned slice. The returned error, if any, wraps
// ErrFallbackUnavailable; the slice is always fully populated.
func (e *Engine) ClassifyAll(ctx context.Context, tokens []string) ([]ClassifiedIngredient, error) {
	classified := make([]ClassifiedIngredient, len(tokens))
	var pending []int

	for i, token := range tokens {
		entry, tags := e.rules.Classify(token)
		if entry != nil {
			classified[i] = ClassifiedIngredient{
				RawText:   token,
				Entry:     entry,
				Category:  entry.Category,
				RiskLevel: entry.RiskLevel,
				RiskTags:  tags,
				Source:    SourceRule,
				Reasoning: entry.Concern,
			}
			continue
		}
		classified[i] = ClassifiedIngredient{
			RawText:  token,
			Category: taxonomy.CategoryUnknown,
			Source:   SourceUnknown,
		}
		pending = append(pending, i)
	}

	if e.fallback == nil || len(pending) == 0 {
		return classified, nil
	}

	// No errgroup context here: a transport failure for one ingredient must
	// not cancel its siblings. Request cancellation still propagates through
	// ctx itself.
	g := new(errgroup.Group)
	g.SetLimit(e.limit)

	for _, idx := range pending {
		idx := idx
		g.Go(func() error {
			res, err := e.fallback.ClassifyIngredient(ctx, classified[idx].RawText)
			if err != nil {
				// Left as source unknown; caller decides about retrying.
				return fmt.Errorf("%w: %v", ErrFallbackUnavailable, err)
			}
			classified[idx] = ClassifiedIngredient{
				RawText:   classified[idx].RawText,
				Category:  res.Category,
				RiskLevel: fallbackRiskLevel(res),
				RiskTags:  res.RiskTags,
				Source:    SourceLLM,
				Reasoning: res.Reasoning,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.logger.Warn("fallback classification degraded", zap.Error(err))
		return classified, err
	}
	return classified, nil
}

// fallbackRiskLevel assigns the severity for model-classified ingredients.
// The fixed response shape carries no calibrated severity, so anything the
// model tags as risky weighs as medium.
func fallbackRiskLevel(res FallbackResult) taxonomy.RiskLevel {
	if len(res.RiskTags) == 0 {
		return ""
	}
	return taxonomy.RiskMedium
}
