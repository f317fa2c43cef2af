package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIngredients(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma separated list",
			raw:  "Water, Sugar, Salt",
			want: []string{"water", "sugar", "salt"},
		},
		{
			name: "mixed delimiters and whitespace",
			raw:  "  Water ;Sugar.  Salt,  ",
			want: []string{"water", "sugar", "salt"},
		},
		{
			name: "empty text",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "   \t\n ",
			want: nil,
		},
		{
			name: "punctuation-only tokens dropped",
			raw:  "sugar, **, -, salt",
			want: []string{"sugar", "salt"},
		},
		{
			name: "duplicates preserved in order",
			raw:  "salt, sugar, salt",
			want: []string{"salt", "sugar", "salt"},
		},
		{
			name: "multi-word ingredient stays one token",
			raw:  "High Fructose Corn Syrup, Aspartame",
			want: []string{"high fructose corn syrup", "aspartame"},
		},
		{
			name: "parenthetical detail kept inside token",
			raw:  "color (red 40), salt",
			want: []string{"color (red 40)", "salt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIngredients(tt.raw))
		})
	}
}
