package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveProfiles(t *testing.T) {
	t.Run("empty roster yields empty set", func(t *testing.T) {
		profiles := ResolveProfiles(nil)
		assert.Empty(t, profiles)
	})

	t.Run("toddler implies child", func(t *testing.T) {
		profiles := ResolveProfiles([]Member{{Type: MemberToddler, Age: 2}})
		assert.True(t, profiles.Has("toddler"))
		assert.True(t, profiles.Has("child"))
	})

	t.Run("pregnant implies adult", func(t *testing.T) {
		profiles := ResolveProfiles([]Member{{Type: MemberPregnant, Age: 31}})
		assert.True(t, profiles.Has("pregnant"))
		assert.True(t, profiles.Has("adult"))
	})

	t.Run("cardiac condition implies hypertensive", func(t *testing.T) {
		profiles := ResolveProfiles([]Member{{Type: MemberAdult, Conditions: []string{"cardiac"}}})
		assert.True(t, profiles.Has("cardiac"))
		assert.True(t, profiles.Has("hypertensive"))
		assert.True(t, profiles.Has("adult"))
	})

	t.Run("lactose intolerance maps to snake case tag", func(t *testing.T) {
		profiles := ResolveProfiles([]Member{{Type: MemberSenior, Conditions: []string{"lactoseIntolerant"}}})
		assert.True(t, profiles.Has("lactose_intolerant"))
		assert.True(t, profiles.Has("senior"))
	})

	t.Run("allergies become verbatim lower-cased tags", func(t *testing.T) {
		profiles := ResolveProfiles([]Member{{
			Type:      MemberChild,
			Age:       8,
			Allergies: []string{"  Peanuts ", "Tree Nuts", ""},
		}})
		assert.True(t, profiles.Has("peanuts"))
		assert.True(t, profiles.Has("tree nuts"))
		assert.False(t, profiles.Has(""))
	})

	t.Run("union across members, order independent", func(t *testing.T) {
		a := Member{Type: MemberToddler}
		b := Member{Type: MemberAdult, Conditions: []string{"diabetic", "obesity"}}
		c := Member{Type: MemberPregnant, Allergies: []string{"Soy"}}

		forward := ResolveProfiles([]Member{a, b, c})
		reversed := ResolveProfiles([]Member{c, b, a})
		assert.Equal(t, forward, reversed)
		assert.Equal(t, forward.Tags(), reversed.Tags())
	})

	t.Run("idempotent under duplicate members", func(t *testing.T) {
		m := Member{Type: MemberChild, Conditions: []string{"celiac"}}
		once := ResolveProfiles([]Member{m})
		twice := ResolveProfiles([]Member{m, m})
		assert.Equal(t, once, twice)
	})
}
