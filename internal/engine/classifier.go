package engine

import (
	"github.com/fam-nudger/backend/internal/taxonomy"
)

// RuleClassifier matches normalized ingredient tokens against the risk
// taxonomy. It is pure: identical token and taxonomy version always yield
// identical output, and it holds no mutable state, so a single instance is
// safe for concurrent use.
type RuleClassifier struct {
	table *taxonomy.Table
}

// NewRuleClassifier creates a classifier over the given taxonomy.
func NewRuleClassifier(table *taxonomy.Table) *RuleClassifier {
	return &RuleClassifier{table: table}
}

// Classify returns the first taxonomy entry matching token and that entry's
// affected-profile tags. First match wins in taxonomy insertion order; a
// token never accumulates tags from more than one entry. No match returns
// (nil, nil).
func (c *RuleClassifier) Classify(token string) (*taxonomy.Entry, []string) {
	entry, ok := c.table.Match(token)
	if !ok {
		return nil, nil
	}
	return entry, entry.AffectedProfiles
}
