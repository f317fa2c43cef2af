package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateCanonicalName indicates the taxonomy contains two entries with
// the same canonical name (case-insensitive). The table is corrupt and must
// not be served.
var ErrDuplicateCanonicalName = errors.New("duplicate canonical name in risk taxonomy")

// Category classifies the kind of risk an ingredient carries.
type Category string

const (
	CategoryArtificialSweetener Category = "artificial_sweetener"
	CategoryArtificialDye       Category = "artificial_dye"
	CategoryPreservative        Category = "preservative"
	CategoryHarmfulFat          Category = "harmful_fat"
	CategoryHighSugar           Category = "high_sugar"
	CategoryHighSodium          Category = "high_sodium"
	CategoryStimulant           Category = "stimulant"
	CategoryFlavorEnhancer      Category = "flavor_enhancer"
	CategoryUnknown             Category = "unknown"
)

// KnownCategory reports whether c is part of the fixed category vocabulary.
func KnownCategory(c Category) bool {
	switch c {
	case CategoryArtificialSweetener, CategoryArtificialDye, CategoryPreservative,
		CategoryHarmfulFat, CategoryHighSugar, CategoryHighSodium,
		CategoryStimulant, CategoryFlavorEnhancer:
		return true
	}
	return false
}

// RiskLevel is the severity assigned to a risk entry.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Weight returns the severity weight used by the scorer.
func (l RiskLevel) Weight() int {
	switch l {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskCritical:
		return 4
	}
	return 0
}

// Entry is one canonical risk-bearing substance. Entries are reference data:
// loaded once at startup and never mutated.
type Entry struct {
	CanonicalName    string
	Synonyms         []string
	ENumber          string
	Category         Category
	RiskLevel        RiskLevel
	Concern          string
	AffectedProfiles []string
	Evidence         []string
}

// Table is an immutable, insertion-ordered risk taxonomy. Safe for
// unsynchronized concurrent reads.
type Table struct {
	version string
	entries []Entry
}

// New builds a table from the given entries, validating that canonical names
// are unique case-insensitively. Entry order is preserved: it is the
// tie-break order for substring matching.
func New(version string, entries []Entry) (*Table, error) {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := strings.ToLower(e.CanonicalName)
		if key == "" {
			return nil, fmt.Errorf("risk taxonomy entry with empty canonical name")
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCanonicalName, e.CanonicalName)
		}
		seen[key] = struct{}{}
	}
	return &Table{version: version, entries: entries}, nil
}

// Load returns the built-in risk taxonomy.
func Load() (*Table, error) {
	return New(Version, builtinEntries)
}

// Version identifies the taxonomy revision carried by the table.
func (t *Table) Version() string { return t.version }

// Entries returns the ordered entries. Callers must treat the slice as
// read-only.
func (t *Table) Entries() []Entry { return t.entries }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Match finds the first entry whose canonical name or synonym is a
// case-insensitive substring match for token. Earliest-declared entry wins;
// matches are never combined across entries.
func (t *Table) Match(token string) (*Entry, bool) {
	needle := strings.ToLower(strings.TrimSpace(token))
	if needle == "" {
		return nil, false
	}
	for i := range t.entries {
		e := &t.entries[i]
		if strings.Contains(needle, strings.ToLower(e.CanonicalName)) {
			return e, true
		}
		for _, syn := range e.Synonyms {
			if strings.Contains(needle, strings.ToLower(syn)) {
				return e, true
			}
		}
	}
	return nil, false
}
