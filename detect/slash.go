package detect

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ganten7/ivory/theory"
)

// resolveSlash decides how a non-bass-rooted winner is presented: plain
// name (bass absorbed), slash chord, or a simplified chord of the upper
// structure over the bass.
func (d *Detector) resolveSlash(v *voicing, best match) match {
	if !best.ok() || v.bassPC == best.root {
		return best
	}
	bassInterval := theory.Mod12(v.bassPC - best.root)

	// A doubled root means the voicing states its own root clearly
	// enough; no slash.
	skipForRootDoubling := v.count(best.root) > 1

	// A dominant whose bass octave holds nothing but roots and fifths
	// keeps its plain name (G7 over a low C G C stays G7).
	skipForDominantBass := false
	isDominant := strings.Contains(best.name, "7") && !strings.Contains(best.name, "Δ7") &&
		!strings.Contains(best.name, "m7") && !strings.Contains(best.name, "dim7") &&
		!strings.Contains(best.name, "ø7")
	if isDominant && (bassInterval == 0 || bassInterval == 5 || bassInterval == 7) {
		bassOctaveTop := int(v.lowest) + 12
		simple := true
		for _, note := range v.notes {
			if int(note) >= bassOctaveTop {
				continue
			}
			pc := theory.PC(note)
			if pc != best.root && pc != theory.Mod12(best.root+5) && pc != theory.Mod12(best.root+7) {
				simple = false
				break
			}
		}
		skipForDominantBass = simple
	}

	var skipSlash bool
	switch {
	case skipForRootDoubling:
		skipSlash = true
	case skipForDominantBass:
		skipSlash = true
	default:
		isExtended := (strings.Contains(best.name, "9") || strings.Contains(best.name, "11") ||
			strings.Contains(best.name, "13")) && !strings.Contains(best.name, "add9")
		isAltered := strings.Contains(best.name, "b9") || strings.Contains(best.name, "#9") ||
			strings.Contains(best.name, "b13") || strings.Contains(best.name, "#11")
		isSixNine := strings.Contains(best.name, "6/9") || strings.Contains(best.name, "(6/9)")
		if isSixNine && bassInterval == 2 {
			// Bb6/9 over a C bass keeps its slash.
			skipSlash = false
		} else {
			extendedBassTone := bassInterval == 2 || bassInterval == 5 || bassInterval == 7 ||
				bassInterval == 9 || bassInterval == 10
			alteredBassTone := bassInterval == 1 || bassInterval == 3 || bassInterval == 6 ||
				bassInterval == 8
			skipSlash = (isExtended && extendedBassTone) || (isAltered && alteredBassTone)
		}
	}

	// Symmetric chords never show an inversion.
	if d.matchChordType(best.name, "diminished7") ||
		d.matchChordType(best.name, "augmented") || d.matchChordType(best.name, "augmented7") {
		skipSlash = true
	}

	if skipSlash {
		return best
	}

	best.name = d.simplifyOverBass(v, best, bassInterval)
	best.name += "/" + d.noteName(v.bassPC)
	return best
}

// simplifyOverBass decides whether the chord keeps its full name over the
// bass or is reduced to a simpler reading of the upper structure.
func (d *Detector) simplifyOverBass(v *voicing, best match, bassInterval int) string {
	pattern := d.patternFor(best.name)

	shouldSimplify := true
	specialNoSimplify := false
	essential := map[int]bool{0: true, 3: true, 4: true, 6: true, 7: true, 8: true}

	// The [0,2,(5,)7,10] shape over the bass is settled during scoring
	// (X6/bass against Xm7/bass); never unwind it here.
	bassIvs := v.bassIntervals()
	if eqInts(bassIvs, []int{0, 2, 5, 7, 10}) || eqInts(bassIvs, []int{0, 2, 7, 10}) {
		if _, ok := v.secondPC(); ok {
			shouldSimplify = false
			specialNoSimplify = true
		}
	}

	isExtendedChord := strings.Contains(best.name, "9") || strings.Contains(best.name, "11") ||
		strings.Contains(best.name, "13") || strings.Contains(best.name, "6/9")
	if isExtendedChord && pattern != nil && containsInt(pattern, bassInterval) {
		shouldSimplify = false
	}

	if d.matchChordType(best.name, "diminished_major7") {
		essential[11] = true
	}
	if d.matchChordType(best.name, "half_diminished7") {
		essential[3] = true
		essential[10] = true
	}
	isDominant := (strings.HasSuffix(best.name, "7") || strings.Contains(best.name, "7(") ||
		strings.HasSuffix(best.name, "13")) &&
		!strings.Contains(best.name, "Δ7") && !strings.Contains(best.name, "dim7") &&
		!strings.Contains(best.name, "ø7") && !strings.Contains(best.name, "m7")
	if isDominant {
		essential[10] = true
	}

	if !specialNoSimplify {
		if essential[bassInterval] {
			switch {
			case strings.Contains(best.name, "add9"):
				shouldSimplify = false
			case strings.HasSuffix(best.name, "m") ||
				(len(best.name) <= 2 && !strings.HasSuffix(best.name, "7") && !strings.HasSuffix(best.name, "6")):
				// Plain triads may still simplify into a sus reading.
				shouldSimplify = true
			default:
				shouldSimplify = false
			}
		} else {
			if strings.Contains(best.name, "add9") {
				shouldSimplify = d.add9AllowsSimplify(v, best.root)
			} else {
				shouldSimplify = true
			}
		}
	}

	isSus := strings.HasSuffix(best.name, "2") || strings.HasSuffix(best.name, "4") ||
		strings.Contains(best.name, "sus2") || strings.Contains(best.name, "sus4") ||
		strings.Contains(best.name, "sus13")
	if isSus {
		shouldSimplify = false
	}

	// add9 keeps its notation unless the ninth lives only in the bass.
	skipAdd9Simplify := false
	if strings.Contains(best.name, "add9") {
		if best.root == v.bassPC {
			shouldSimplify = false
		} else if d.add9AllowsSimplify(v, best.root) {
			shouldSimplify = true
		} else {
			shouldSimplify = false
			skipAdd9Simplify = true
		}
	}

	// A seventh played only once is weak enough to drop: C E G over a
	// single Bb reads C/Bb, a doubled Bb keeps C7/Bb.
	if !specialNoSimplify && !isSus && strings.Contains(best.name, "7") &&
		!strings.Contains(best.name, "Δ7") && !strings.Contains(best.name, "m7") &&
		!strings.Contains(best.name, "dim7") {
		seventhPC := -1
		if v.hasPC(theory.Mod12(best.root + 10)) {
			seventhPC = theory.Mod12(best.root + 10)
		} else if v.hasPC(theory.Mod12(best.root + 11)) {
			seventhPC = theory.Mod12(best.root + 11)
		}
		if seventhPC >= 0 {
			shouldSimplify = v.count(seventhPC) == 1
		}
	}

	if skipAdd9Simplify || !shouldSimplify || strings.Contains(best.name, "add9") {
		return best.name
	}

	notesWithoutBass := make([]uint8, 0, len(v.notes))
	for _, note := range v.notes {
		if theory.PC(note) != v.bassPC {
			notesWithoutBass = append(notesWithoutBass, note)
		}
	}
	// E G C stays C/E even though G C alone would spell a sus shell.
	if len(notesWithoutBass) < 3 && len(v.pcs) == 3 {
		return best.name
	}
	if len(notesWithoutBass) < 2 {
		return best.name
	}

	alt, ok := d.detectSimple(notesWithoutBass)
	if !ok {
		return best.name
	}

	altIsSus := strings.HasSuffix(alt, "2") || strings.HasSuffix(alt, "4") ||
		strings.Contains(alt, "sus2") || strings.Contains(alt, "sus4")
	currentIsBasic := basicTriadRe.MatchString(best.name)

	if altIsSus && currentIsBasic {
		d.log.Debug("kept sus reading over bass", zap.String("chord", alt))
		return alt
	}
	if chordComplexity(alt) <= chordComplexity(best.name) {
		return alt
	}
	return best.name
}

// add9AllowsSimplify applies the ninth-doubling rule: simplification is
// allowed only when the ninth appears exactly once, in the bass.
func (d *Detector) add9AllowsSimplify(v *voicing, rootPC int) bool {
	ninthPC := theory.Mod12(rootPC + 2)
	return v.bassPC == ninthPC && v.count(ninthPC) == 1
}

// detectSimple runs the root-candidate scorer over a reduced note set
// without any of the slash or validation machinery. Used to name upper
// structures.
func (d *Detector) detectSimple(notes []uint8) (string, bool) {
	if len(notes) < 2 {
		return "", false
	}
	v := newVoicing(notes)
	if len(v.pcs) < 2 {
		return "", false
	}
	best := d.bestRootMatch(v)
	if !best.ok() {
		return "", false
	}
	return best.name, true
}

// chordComplexity ranks names for the simplification tie-break: triads
// beat sevenths beat extended chords.
func chordComplexity(name string) int {
	if name == "" {
		return 999
	}
	if i := strings.Index(name, "/"); i >= 0 {
		name = name[:i]
	}
	switch {
	case strings.Contains(name, "13"):
		return 5
	case strings.Contains(name, "11"):
		return 4
	case strings.Contains(name, "9"):
		return 3
	case strings.Contains(name, "add") || strings.Contains(name, "6"):
		return 3
	case strings.Contains(name, "7"):
		return 2
	default:
		return 1
	}
}
