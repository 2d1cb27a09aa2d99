package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rank(t *testing.T, id string) int {
	t.Helper()
	for i, tmpl := range Chords {
		if tmpl.ID == id {
			return i
		}
	}
	t.Fatalf("no template %q", id)
	return -1
}

func TestChordTemplatesWellFormed(t *testing.T) {
	assert := assert.New(t)

	seen := make(map[string]bool)
	for _, tmpl := range Chords {
		assert.False(seen[tmpl.ID], "duplicate template id %s", tmpl.ID)
		seen[tmpl.ID] = true

		assert.Contains(tmpl.Intervals, 0, "%s must contain its root", tmpl.ID)
		assert.NotEmpty(tmpl.Essential, "%s has no essential intervals", tmpl.ID)
		for _, e := range tmpl.Essential {
			assert.Contains(tmpl.Intervals, e, "%s essential %d not in intervals", tmpl.ID, e)
		}
	}
}

func TestChordPriorityOrdering(t *testing.T) {
	assert := assert.New(t)

	// Earlier rank wins score ties, so the more specific template has to
	// sit in front of the generic one it would otherwise lose to.
	assert.Less(rank(t, "half_diminished7"), rank(t, "minor6"))
	assert.Less(rank(t, "7b13_no5"), rank(t, "augmented7"))
	assert.Less(rank(t, "13b9"), rank(t, "dominant13"))
	assert.Less(rank(t, "major9#11"), rank(t, "major7#11"))
	assert.Less(rank(t, "13_shell"), rank(t, "6"))
	assert.Less(rank(t, "7b9"), rank(t, "altered"))
	assert.Less(rank(t, "7b9_no5"), rank(t, "altered"))
}

func TestChordLookup(t *testing.T) {
	assert := assert.New(t)

	dom, ok := Chord("dominant7")
	assert.True(ok)
	assert.Equal([]int{0, 4, 7, 10}, dom.Intervals)
	assert.Equal([]int{4, 10}, dom.Essential)

	_, ok = Chord("nope")
	assert.False(ok)
}

func TestScaleTemplates(t *testing.T) {
	assert := assert.New(t)

	for _, s := range Scales {
		assert.Contains(s.Intervals, 0, "%s must contain its tonic", s.Name)
		if s.Family == FamilyPentatonic || s.Family == FamilyBlues {
			assert.True(s.ClusteredOnly, "%s should be clustered-only", s.Name)
		}
		if s.Family.ModeFamily() {
			assert.Len(s.Intervals, 7, "%s mode should have 7 degrees", s.Name)
		}
	}

	assert.True(FamilyMajorMode.ModeFamily())
	assert.True(FamilyHarmonicMinorMode.ModeFamily())
	assert.False(FamilyPentatonic.ModeFamily())
}
