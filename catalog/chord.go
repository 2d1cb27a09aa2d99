// Package catalog holds the static chord and scale template tables the
// detection engine matches against. The tables are built once at process
// start and never mutated.
//
// Ordering is semantic: templates earlier in the Chords slice outrank later
// ones whenever two candidates score equally, so more specific templates
// (half-diminished before minor6, altered 13ths before dominant13, shell
// voicings after full voicings) must keep their positions.
package catalog

// ChordTemplate describes one chord quality as a set of intervals above its
// own root, split into essential intervals (must be present, at least one,
// to identify the quality) and optional intervals (omittable without
// changing identity; typically root and fifth).
type ChordTemplate struct {
	// ID is the stable template identifier used by the engine's rules.
	ID string
	// Symbol is the display suffix appended to the root letter name.
	// Diminished-family templates are rendered dynamically (dim vs dim7)
	// and ignore this field.
	Symbol string
	// Intervals always contains 0 (the root).
	Intervals []int
	Essential []int
	Optional  []int
}

func iv(ns ...int) []int { return ns }

// Chords is the ordered template catalog. Priority rank equals slice
// position: earlier templates win score ties.
var Chords = []ChordTemplate{
	// Triads
	{ID: "major", Symbol: "", Intervals: iv(0, 4, 7), Essential: iv(4), Optional: iv(0, 7)},
	{ID: "minor", Symbol: "m", Intervals: iv(0, 3, 7), Essential: iv(3), Optional: iv(0, 7)},
	{ID: "diminished", Symbol: "dim", Intervals: iv(0, 3, 6), Essential: iv(3, 6), Optional: iv(0)},
	{ID: "augmented", Symbol: "aug", Intervals: iv(0, 4, 8), Essential: iv(4, 8), Optional: iv(0)},
	{ID: "sus2", Symbol: "2", Intervals: iv(0, 2, 7), Essential: iv(2), Optional: iv(0, 7)},
	{ID: "sus4", Symbol: "4", Intervals: iv(0, 5, 7), Essential: iv(5), Optional: iv(0, 7)},

	// Sus extended chords (no 3rd)
	{ID: "7sus4", Symbol: "7sus4", Intervals: iv(0, 5, 7, 10), Essential: iv(5, 10), Optional: iv(0, 7)},
	{ID: "7sus2", Symbol: "7sus2", Intervals: iv(0, 2, 7, 10), Essential: iv(2, 10), Optional: iv(0, 7)},
	{ID: "9sus", Symbol: "9(sus)", Intervals: iv(0, 2, 5, 10), Essential: iv(2, 5, 10)},
	{ID: "9sus_with5", Symbol: "9(sus)", Intervals: iv(0, 2, 5, 7, 10), Essential: iv(2, 5, 10)},
	{ID: "13sus", Symbol: "13(sus)", Intervals: iv(0, 2, 5, 9, 10), Essential: iv(2, 10)},
	{ID: "13sus_with5", Symbol: "13(sus)", Intervals: iv(0, 2, 5, 7, 9, 10), Essential: iv(2, 10)},
	{ID: "7sus13", Symbol: "7sus13", Intervals: iv(0, 2, 5, 9, 10), Essential: iv(2, 10), Optional: iv(0, 7, 5)},
	{ID: "sus13", Symbol: "sus13", Intervals: iv(0, 2, 5, 9), Essential: iv(2, 9), Optional: iv(0, 7, 5)},

	// 7th chords (half-diminished before minor6 for priority)
	{ID: "half_diminished7", Symbol: "hdim7", Intervals: iv(0, 3, 6, 10), Essential: iv(3, 10), Optional: iv(0)},
	{ID: "half_diminished11", Symbol: "hdim7(11)", Intervals: iv(0, 3, 6, 10, 5), Essential: iv(6, 10)},
	{ID: "half_diminished11_no3", Symbol: "hdim7(11)", Intervals: iv(0, 5, 6, 10), Essential: iv(6, 10)},
	{ID: "major7", Symbol: "Δ7", Intervals: iv(0, 4, 7, 11), Essential: iv(4, 11), Optional: iv(0, 7)},
	{ID: "major7#5", Symbol: "Δ7#5", Intervals: iv(0, 4, 8, 11), Essential: iv(4, 11), Optional: iv(0)},
	{ID: "minor7", Symbol: "m7", Intervals: iv(0, 3, 7, 10), Essential: iv(3, 10), Optional: iv(0, 7)},
	{ID: "dominant7", Symbol: "7", Intervals: iv(0, 4, 7, 10), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "diminished7", Intervals: iv(0, 3, 6, 9), Essential: iv(3, 9), Optional: iv(0)},
	{ID: "diminished7_no_b5", Intervals: iv(0, 3, 9), Essential: iv(3, 9), Optional: iv(0, 6)},
	{ID: "diminished7_no_m3", Intervals: iv(0, 6, 9), Essential: iv(6, 9), Optional: iv(0, 3)},
	{ID: "diminished_major7", Symbol: "dimΔ7", Intervals: iv(0, 3, 6, 11), Essential: iv(3, 6, 11), Optional: iv(0)},
	{ID: "7b13_no5", Symbol: "7(b13)", Intervals: iv(0, 4, 10, 8), Essential: iv(4, 10)},
	{ID: "augmented7", Symbol: "aug7", Intervals: iv(0, 4, 8, 10), Essential: iv(4, 10), Optional: iv(0)},
	{ID: "minor_major7", Symbol: "mΔ7", Intervals: iv(0, 3, 7, 11), Essential: iv(3, 11), Optional: iv(0, 7)},
	{ID: "minor_major9", Symbol: "mΔ7(9)", Intervals: iv(0, 2, 3, 7, 11), Essential: iv(3, 11), Optional: iv(0, 7, 2)},
	{ID: "minor_major9_no5", Symbol: "mΔ9", Intervals: iv(0, 2, 3, 11), Essential: iv(3, 11), Optional: iv(0, 2)},

	// Extended chords
	{ID: "major9", Symbol: "Δ9", Intervals: iv(0, 4, 7, 11, 2), Essential: iv(4, 11), Optional: iv(0, 7)},
	{ID: "minor9", Symbol: "m9", Intervals: iv(0, 3, 7, 10, 2), Essential: iv(3, 10), Optional: iv(0, 7)},
	{ID: "dominant9", Symbol: "9", Intervals: iv(0, 4, 7, 10, 2), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "major11", Symbol: "Δ11", Intervals: iv(0, 4, 7, 11, 2, 5), Essential: iv(4, 11), Optional: iv(0, 7)},
	{ID: "major9#11", Symbol: "Δ9(#11)", Intervals: iv(0, 4, 7, 11, 2, 6), Essential: iv(4, 11, 6), Optional: iv(0, 7)},
	{ID: "major7#11", Symbol: "Δ7(#11)", Intervals: iv(0, 4, 7, 11, 6), Essential: iv(4, 11, 6), Optional: iv(0, 7, 2)},
	{ID: "major7#11_no5", Symbol: "Δ7(#11)", Intervals: iv(0, 4, 6, 11), Essential: iv(4, 11, 6), Optional: iv(0, 2)},
	{ID: "major7#11_shell", Symbol: "Δ7(#11)", Intervals: iv(0, 6, 11), Essential: iv(6, 11), Optional: iv(0, 4, 7, 2)},
	{ID: "minor11", Symbol: "m11", Intervals: iv(0, 3, 7, 10, 2, 5), Essential: iv(3, 10), Optional: iv(0, 7)},
	{ID: "minor11_no5", Symbol: "m11", Intervals: iv(0, 3, 10, 2, 5), Essential: iv(3, 10), Optional: iv(0)},
	{ID: "minor11_no9", Symbol: "m11", Intervals: iv(0, 3, 5, 7, 10), Essential: iv(3, 10)},
	{ID: "minor11_shell", Symbol: "m11", Intervals: iv(0, 3, 5, 10), Essential: iv(3, 10), Optional: iv(0, 2)},
	{ID: "major13", Symbol: "Δ13", Intervals: iv(0, 4, 7, 11, 2, 5, 9), Essential: iv(4, 11), Optional: iv(0, 7, 5)},
	{ID: "major13#11", Symbol: "Δ13#11", Intervals: iv(0, 4, 7, 11, 2, 6, 9), Essential: iv(4, 11), Optional: iv(0, 7)},
	{ID: "minor13", Symbol: "m13", Intervals: iv(0, 3, 7, 10, 2, 5, 9), Essential: iv(3, 10), Optional: iv(0, 7, 5)},
	{ID: "dominant11", Symbol: "11", Intervals: iv(0, 4, 7, 10, 2, 5), Essential: iv(4, 10), Optional: iv(0, 7)},
	// Altered 13th chords before dominant13 for priority
	{ID: "13b9", Symbol: "13(b9)", Intervals: iv(0, 1, 4, 7, 9, 10), Essential: iv(4, 10)},
	{ID: "13b9_no5", Symbol: "13(b9)", Intervals: iv(0, 1, 4, 9, 10), Essential: iv(4, 10)},
	{ID: "dominant13", Symbol: "13", Intervals: iv(0, 4, 7, 10, 2, 5, 9), Essential: iv(4, 10), Optional: iv(0, 7, 5)},
	// Shell voicings for 13th chords (before 6th chords for priority)
	{ID: "13_shell", Symbol: "13", Intervals: iv(0, 4, 10, 9), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "13_no5_no11", Symbol: "13", Intervals: iv(0, 4, 10, 2, 9), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "13_no5", Symbol: "13", Intervals: iv(0, 4, 10, 2, 5, 9), Essential: iv(4, 10), Optional: iv(0, 7)},

	// Dominant 7#11 voicings
	{ID: "7#11_no5", Symbol: "7(#11)", Intervals: iv(0, 4, 10, 6), Essential: iv(4, 10)},
	{ID: "7#11_no3_no5", Symbol: "7(#11)", Intervals: iv(0, 10, 2, 6), Essential: iv(10, 6)},
	{ID: "13#11_no3_no5", Symbol: "13(#11)", Intervals: iv(0, 10, 2, 6, 9), Essential: iv(10, 6), Optional: iv(0, 2, 9)},
	{ID: "13#11_no3", Symbol: "13(#11)", Intervals: iv(0, 7, 10, 2, 6, 9), Essential: iv(10, 2, 6), Optional: iv(0, 7, 9)},
	{ID: "13#11_no9_no5", Symbol: "13(#11)", Intervals: iv(0, 4, 6, 9, 10), Essential: iv(4, 10), Optional: iv(0, 6, 9)},
	{ID: "13#11_no5", Symbol: "13(#11)", Intervals: iv(0, 4, 10, 2, 6, 9), Essential: iv(4, 10), Optional: iv(0, 6, 9)},

	// Altered dominants (specific patterns before generic "altered")
	{ID: "7b9", Symbol: "7(b9)", Intervals: iv(0, 4, 7, 10, 1), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7#9", Symbol: "7(#9)", Intervals: iv(0, 4, 7, 10, 3), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7#11", Symbol: "7(#11)", Intervals: iv(0, 4, 7, 10, 6), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7b13", Symbol: "7(b13)", Intervals: iv(0, 4, 7, 10, 8), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7b9#11", Symbol: "7(b9,#11)", Intervals: iv(0, 4, 7, 10, 1, 6), Essential: iv(4, 6, 10), Optional: iv(0, 7)},
	{ID: "7#9#11", Symbol: "7(#9,#11)", Intervals: iv(0, 4, 7, 10, 3, 6), Essential: iv(4, 3, 6, 10), Optional: iv(0, 7)},
	{ID: "7b9b13", Symbol: "7(b9,b13)", Intervals: iv(0, 4, 7, 10, 1, 8), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7#9b13", Symbol: "7(#9,b13)", Intervals: iv(0, 4, 7, 10, 3, 8), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7#11b13", Symbol: "7(#11,b13)", Intervals: iv(0, 4, 7, 10, 6, 8), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7b9#11b13", Symbol: "7(b9,#11,b13)", Intervals: iv(0, 4, 7, 10, 1, 6, 8), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7#9#11b13", Symbol: "7(#9,#11,b13)", Intervals: iv(0, 4, 7, 10, 3, 6, 8), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7b9#9", Symbol: "7(b9,#9)", Intervals: iv(0, 4, 7, 10, 1, 3), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7b9#9#11", Symbol: "7(b9,#9,#11)", Intervals: iv(0, 4, 7, 10, 1, 3, 6), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "7b9#9b13", Symbol: "7(b9,#9,b13)", Intervals: iv(0, 4, 7, 10, 1, 3, 8), Essential: iv(4, 10), Optional: iv(0, 7)},
	{ID: "9b13", Symbol: "9(b13)", Intervals: iv(0, 4, 7, 10, 2, 8), Essential: iv(4, 10), Optional: iv(0, 7)},
	// Shell voicings without the 5th, after the full voicings
	{ID: "7b9_no5", Symbol: "7(b9)", Intervals: iv(0, 4, 10, 1), Essential: iv(4, 10), Optional: iv(0)},
	{ID: "9b13_no5", Symbol: "9(b13)", Intervals: iv(0, 4, 10, 2, 8), Essential: iv(4, 10), Optional: iv(0)},
	{ID: "7#11_shell", Symbol: "7(#11)", Intervals: iv(0, 10, 2, 6, 9), Essential: iv(10, 6), Optional: iv(0, 2, 9)},
	{ID: "7#11_no3", Symbol: "7(#11)", Intervals: iv(0, 7, 10, 6), Essential: iv(10, 6), Optional: iv(0, 2, 9)},
	{ID: "7#9#11_shell", Symbol: "7(#9,#11)", Intervals: iv(0, 10, 3, 6, 9), Essential: iv(10, 3, 6), Optional: iv(0, 6, 9)},
	{ID: "7b9#11_shell", Symbol: "7(b9,#11)", Intervals: iv(0, 10, 1, 6, 9), Essential: iv(10, 1, 6), Optional: iv(0, 6, 9)},
	{ID: "7b9#11_no3", Symbol: "7(b9,#11)", Intervals: iv(0, 7, 10, 1, 6), Essential: iv(10, 1, 6), Optional: iv(0, 6, 9)},
	{ID: "7b9#11_no5", Symbol: "7(b9,#11)", Intervals: iv(0, 4, 10, 1, 6), Essential: iv(4, 10, 1, 6), Optional: iv(0)},
	{ID: "7b9#11_13_no5", Symbol: "7(b9,#11)", Intervals: iv(0, 1, 4, 6, 9, 10), Essential: iv(4, 10, 1, 6)},
	{ID: "7b9b13_no5", Symbol: "7(b9,b13)", Intervals: iv(0, 4, 10, 1, 8), Essential: iv(4, 10), Optional: iv(0)},
	{ID: "7#9b13_no5", Symbol: "7(#9,b13)", Intervals: iv(0, 4, 10, 3, 8), Essential: iv(4, 10), Optional: iv(0)},
	{ID: "7b9#9_no5", Symbol: "7(b9,#9)", Intervals: iv(0, 4, 10, 1, 3), Essential: iv(4, 10), Optional: iv(0)},
	// Generic altered (last resort)
	{ID: "altered", Symbol: "7alt", Intervals: iv(0, 4, 7, 10, 1, 3, 6, 8), Essential: iv(4, 10), Optional: iv(0, 7)},

	// Add chords
	{ID: "add9", Symbol: "add9", Intervals: iv(0, 4, 7, 2), Essential: iv(4), Optional: iv(0, 7)},
	{ID: "minor_add9", Symbol: "madd9", Intervals: iv(0, 3, 7, 2), Essential: iv(3), Optional: iv(0, 7)},
	{ID: "6", Symbol: "6", Intervals: iv(0, 4, 7, 9), Essential: iv(4, 9), Optional: iv(0, 7)},
	{ID: "6_no5", Symbol: "6", Intervals: iv(0, 4, 9), Essential: iv(4, 9), Optional: iv(0)},
	{ID: "6add4", Symbol: "6add4", Intervals: iv(0, 4, 5, 7, 9), Essential: iv(4, 9), Optional: iv(0, 7)},
	{ID: "6add4_no5", Symbol: "6add4", Intervals: iv(0, 4, 5, 9), Essential: iv(4, 9), Optional: iv(0)},
	{ID: "6_9", Symbol: "6/9", Intervals: iv(0, 4, 7, 9, 2), Essential: iv(4, 9), Optional: iv(0, 7)},
	{ID: "6_9_no5", Symbol: "6/9", Intervals: iv(0, 4, 9, 2), Essential: iv(4, 9), Optional: iv(0)},
	{ID: "6_9_no3", Symbol: "6/9", Intervals: iv(0, 2, 7, 9), Essential: iv(9, 2), Optional: iv(0, 7)},
	{ID: "major7_6_9", Symbol: "maj7(6/9)", Intervals: iv(0, 4, 7, 9, 11, 2), Essential: iv(4, 11, 9)},
	{ID: "minor6", Symbol: "m6", Intervals: iv(0, 3, 7, 9), Essential: iv(3, 9), Optional: iv(0, 7)},
	{ID: "minor6_no5", Symbol: "m6", Intervals: iv(0, 3, 9), Essential: iv(3, 9), Optional: iv(0)},
	{ID: "minor6_9", Symbol: "m6/9", Intervals: iv(0, 3, 7, 9, 2), Essential: iv(3, 9), Optional: iv(0, 7)},
	{ID: "minor6_9_no5", Symbol: "m6/9", Intervals: iv(0, 2, 3, 9), Essential: iv(3, 9), Optional: iv(0)},
	{ID: "add11", Symbol: "add11", Intervals: iv(0, 4, 7, 5), Essential: iv(4), Optional: iv(0, 7)},

	// Power chord
	{ID: "5", Symbol: "5", Intervals: iv(0, 7), Essential: iv(7), Optional: iv(0)},
}

var chordsByID = func() map[string]*ChordTemplate {
	m := make(map[string]*ChordTemplate, len(Chords))
	for i := range Chords {
		m[Chords[i].ID] = &Chords[i]
	}
	return m
}()

// Chord looks a template up by its identifier.
func Chord(id string) (*ChordTemplate, bool) {
	t, ok := chordsByID[id]
	return t, ok
}
