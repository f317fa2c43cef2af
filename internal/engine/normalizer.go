package engine

import (
	"strings"
	"unicode"
)

// NormalizeIngredients splits a raw ingredient-list string into ordered,
// trimmed, lower-cased tokens. Commas, semicolons and periods delimit;
// empty and punctuation-only tokens are dropped; duplicates are preserved
// because flagged-ingredient reporting follows input order.
func NormalizeIngredients(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '.'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.ToLower(strings.TrimSpace(f))
		if tok == "" || !hasLetterOrDigit(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
