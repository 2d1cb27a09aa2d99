package detect

import (
	"strings"

	"github.com/ganten7/ivory/catalog"
	"github.com/ganten7/ivory/theory"
)

// Templates whose defining tensions may not be dropped. Without the #11 a
// 7b9#11 reading is just a 7b9.
var strictTensionTemplates = map[string]bool{
	"7b9#11": true, "7#9#11": true, "7#9#11_shell": true,
	"7b9#11_shell": true, "7b9#11_no3": true,
}

// Ninth templates need both the third and the seventh, otherwise the
// voicing is an add9.
var strictNinthTemplates = map[string]bool{
	"major9": true, "minor9": true, "dominant9": true,
	"minor_major9": true, "minor_major9_no5": true,
}

// Altered dominants whose exact voicings earn the bigger completeness
// bonus.
var alteredExactBonus = map[string]bool{
	"7b13_no5": true, "7b9b13_no5": true, "7#9b13_no5": true, "7b9#11_no5": true,
	"7b9": true, "7#9": true, "7b13": true, "7b9b13": true, "7#9b13": true,
	"7#11b13": true, "7b9#11": true, "7#9#11": true,
}

var trueExtendedTemplates = map[string]bool{
	"dominant9": true, "dominant11": true, "dominant13": true,
	"major9": true, "major11": true, "major13": true,
	"minor9": true, "minor11": true, "minor13": true,
	"minor_major9": true, "half_diminished11": true,
}

var alteredShellTemplates = map[string]bool{
	"7#11_shell": true, "7#11_no3": true, "7#9#11_shell": true,
	"7b9#11_shell": true, "7b9#11_no3": true,
}

var dim7Templates = map[string]bool{
	"diminished7": true, "diminished7_no_b5": true, "diminished7_no_m3": true,
}

var seventhTemplates = map[string]bool{
	"major7": true, "minor7": true, "dominant7": true, "diminished7": true,
	"diminished_major7": true, "half_diminished7": true, "augmented7": true,
	"minor_major7": true,
}

var sixthTemplates = map[string]bool{
	"6": true, "6_no5": true, "minor6": true, "minor6_no5": true,
	"6_9": true, "6_9_no5": true, "6_9_no3": true, "minor6_9": true,
	"6add4": true, "6add4_no5": true,
}

var minorSixFamily = map[string]bool{
	"minor6": true, "minor6_no5": true, "minor6_9": true, "minor6_9_no5": true,
}

// matchPattern scores every catalog template against the intervals seen
// from rootPC and returns the best rendition. The weights are tuned as a
// whole: changing one in isolation shifts dozens of tie-breaks, so they
// stay together in this one function.
func (d *Detector) matchPattern(intervals []int, rootPC int, v *voicing) (string, float64, bool) {
	bestName := ""
	bestScore := 0.0

	inputPCCount := len(v.pcs)
	in := make(map[int]bool, len(intervals))
	for _, iv := range intervals {
		in[iv] = true
	}

	bassIvs := v.bassIntervals()

	for i := range catalog.Chords {
		tmpl := &catalog.Chords[i]
		id := tmpl.ID

		matched := make(map[int]bool, len(tmpl.Intervals))
		missing := make(map[int]bool)
		for _, p := range tmpl.Intervals {
			if in[p] {
				matched[p] = true
			} else {
				missing[p] = true
			}
		}
		extraCount := 0
		for iv := range in {
			if !containsInt(tmpl.Intervals, iv) {
				extraCount++
			}
		}
		matchedCount := len(matched)
		missingCount := len(missing)

		essentialMatched := 0
		essentialMissing := 0
		for _, e := range tmpl.Essential {
			if matched[e] {
				essentialMatched++
			} else {
				essentialMissing++
			}
		}

		if strictTensionTemplates[id] && essentialMissing > 0 {
			continue
		}
		if strictNinthTemplates[id] && essentialMissing > 0 {
			continue
		}
		if len(tmpl.Essential) > 0 && essentialMatched == 0 {
			continue
		}
		if matchedCount < 2 {
			continue
		}

		// Essential intervals carry the quality, percentage coverage
		// separates lookalikes.
		essentialScore := 30.0
		if len(tmpl.Essential) > 0 {
			essentialScore = float64(essentialMatched) / float64(len(tmpl.Essential)) * 60.0
		}

		percentageMatch := 0.0
		if inputPCCount > 0 {
			percentageMatch = float64(matchedCount) / float64(inputPCCount) * 40.0
		}

		highestNoteBonus := 0.0
		if containsInt(tmpl.Intervals, theory.Mod12(v.topPC-rootPC)) {
			highestNoteBonus = 10.0
		}

		completenessBonus := 0.0
		if missingCount == 0 && extraCount == 0 {
			completenessBonus = 30.0
			if alteredExactBonus[id] {
				completenessBonus = 60.0
			}
			if id == "diminished_major7" {
				completenessBonus = 500.0
			}
			if id == "half_diminished7" {
				completenessBonus = 700.0
			}
			if id == "major7_6_9" {
				completenessBonus = 200.0
			}
		} else if missingCount == 0 {
			completenessBonus = 10.0
		}

		// Any voicing carrying a major seventh outranks an add9 reading
		// of the same notes.
		majorSeventhBonus := 0.0
		if containsInt(tmpl.Intervals, 11) && in[11] && id != "add9" && id != "minor_add9" {
			majorSeventhBonus = 50.0
		}

		extraPenalty := float64(extraCount) * 3.0

		missingPenalty := 0.0
		optionalMissing := 0
		requiredMissing := 0
		for iv := range missing {
			switch {
			case containsInt(tmpl.Optional, iv):
				optionalMissing++
			case !containsInt(tmpl.Essential, iv):
				requiredMissing++
			}
		}
		missingPenalty += float64(essentialMissing) * 40.0
		missingPenalty += float64(optionalMissing) * 1.0
		missingPenalty += float64(requiredMissing) * 8.0

		rootlessBonus := 0.0
		if missing[0] && essentialMissing == 0 && len(tmpl.Essential) >= 2 {
			rootlessBonus = 15.0
		}

		rootInBassBonus := 0.0
		if rootPC == v.bassPC && matched[0] {
			rootInBassBonus = 60.0

			isSusType := strings.Contains(id, "sus")
			isSixNine := strings.Contains(id, "6_9") || strings.Contains(id, "6/9")
			isTrueExtended := trueExtendedTemplates[id] ||
				strings.HasPrefix(id, "minor9") || strings.HasPrefix(id, "minor11") || strings.HasPrefix(id, "minor13")

			extensionPresent := true
			if strings.Contains(id, "9") && !strings.Contains(id, "11") && !strings.Contains(id, "13") {
				extensionPresent = matched[2]
			} else if strings.Contains(id, "11") && !strings.Contains(id, "13") {
				extensionPresent = matched[5]
			} else if strings.Contains(id, "13") {
				extensionPresent = matched[9]
			}

			if !isSusType && !isSixNine && isTrueExtended && missingCount <= 1 && extensionPresent {
				rootInBassBonus += 200.0
			}

			// All four dim7 tones are interchangeable, so the bass
			// claims the root whenever the match is tight.
			if dim7Templates[id] && missingCount <= 1 && extraCount == 0 {
				rootInBassBonus += 500.0
			}
		}

		characteristicBonus := 0.0
		if matched[6] || matched[8] {
			characteristicBonus = 10.0
		}
		if alteredShellTemplates[id] {
			characteristicBonus += 50.0
		}

		hasMajorThird := in[4]
		hasMinorSeventh := in[10]
		hasDominantQuality := v.globalDominant || (hasMajorThird && hasMinorSeventh)

		isDominantTemplate := strings.Contains(id, "7") &&
			!strings.Contains(id, "m7") && !strings.Contains(id, "Δ7") &&
			!strings.Contains(id, "maj7") && !strings.Contains(id, "dim7") &&
			!strings.Contains(id, "ø7") && !strings.Contains(id, "half_diminished")
		if isDominantTemplate && hasMajorThird && hasMinorSeventh && matched[0] {
			// A dominant whose root sits alone in the bass octave with
			// at most a fifth beside it is almost certainly the truth.
			bassOctaveTop := int(v.lowest) + 12
			rootInBassOctave := false
			bassPCs := make(map[int]bool)
			for _, note := range v.notes {
				if int(note) < bassOctaveTop {
					pc := theory.PC(note)
					bassPCs[pc] = true
					if pc == rootPC {
						rootInBassOctave = true
					}
				}
			}
			bassSimple := len(bassPCs) <= 2
			for pc := range bassPCs {
				if pc != rootPC && pc != theory.Mod12(rootPC+5) && pc != theory.Mod12(rootPC+7) {
					bassSimple = false
				}
			}
			if rootInBassOctave && bassSimple {
				rootInBassBonus += 300.0
			}
		}

		dominantAdjustment := 0.0
		if hasDominantQuality {
			if strings.HasPrefix(id, "6") || strings.HasPrefix(id, "minor6") ||
				id == "diminished7" || id == "diminished" {
				dominantAdjustment = -500.0
			} else if strings.HasPrefix(id, "13") || strings.HasPrefix(id, "dominant") ||
				strings.HasPrefix(id, "7") || strings.HasPrefix(id, "9") {
				if id == "dominant7" && missingCount == 0 && extraCount == 0 {
					dominantAdjustment = 600.0
				} else if id == "7b9_no5" && missingCount == 0 && extraCount == 0 {
					dominantAdjustment = 600.0
				} else {
					dominantAdjustment = 50.0
				}
			}
		}

		special := d.specialPatternBonus(tmpl, intervals, in, rootPC, v,
			matchedCount, missingCount, extraCount, essentialMissing, bassIvs)

		inversionBonus := d.inversionBonus(tmpl, rootPC, v)

		score := essentialScore + percentageMatch + highestNoteBonus +
			completenessBonus + majorSeventhBonus + rootlessBonus + rootInBassBonus +
			characteristicBonus + dominantAdjustment + special +
			inversionBonus - extraPenalty - missingPenalty

		if score > bestScore && matchedCount >= 2 && score > 10.0 {
			bestScore = score
			bestName = d.renderName(id, rootPC, len(v.pcs))
		}
	}

	if bestName == "" {
		return "", 0, false
	}
	return bestName, bestScore, true
}

// specialPatternBonus holds the pattern-specific tie-breaks. Later blocks
// overwrite earlier ones on purpose, keep the order.
func (d *Detector) specialPatternBonus(tmpl *catalog.ChordTemplate, intervals []int, in map[int]bool,
	rootPC int, v *voicing, matchedCount, missingCount, extraCount, essentialMissing int, bassIvs []int) float64 {

	id := tmpl.ID
	bonus := 0.0

	if id == "7b13_no5" && eqInts(intervals, []int{0, 4, 8, 10}) {
		bonus = 100.0
	}
	if id == "7b9b13_no5" && eqInts(intervals, []int{0, 1, 4, 8, 10}) {
		bonus = 150.0
	}
	if id == "7#9b13_no5" && eqInts(intervals, []int{0, 3, 4, 8, 10}) {
		bonus = 150.0
	}
	if id == "7b9#11_no5" && eqInts(intervals, []int{0, 1, 4, 6, 10}) {
		bonus = 400.0
	}
	if id == "13b9" && eqInts(intervals, []int{0, 1, 4, 7, 9, 10}) {
		bonus = 500.0
	}

	// Bass plus [1, 7, 10] above it is the classic m6-over-foreign-bass
	// shape, unless a dominant lurks in the set.
	if eqInts(bassIvs, []int{0, 1, 7, 10}) && !v.globalDominant {
		if (id == "minor6" || id == "minor6_no5" || id == "minor6_9_no5") && rootPC != v.bassPC {
			bonus = 1500.0
		}
	}

	if id == "diminished" && len(v.pcs) >= 4 {
		bonus = -1000.0
	}

	if (id == "6_no5" || id == "6") && rootPC == v.bassPC && eqInts(intervals, []int{0, 4, 9}) {
		bonus = 100.0
	}

	if id == "add9" && missingCount == 0 && extraCount == 0 {
		bonus = 200.0
		if rootPC != v.bassPC {
			if eqInts(bassIvs, []int{0, 2, 5, 10}) {
				// Same notes also spell 9sus from the bass. A complete
				// triad within an octave of the bass keeps the add9
				// reading, a spread voicing hands it to 9sus.
				hasThird := in[3] || in[4]
				triadComplete := in[0] && hasThird && in[7]
				if hasThird && in[7] {
					if triadComplete {
						bassInterval := theory.Mod12(v.bassPC - rootPC)
						bassIsTriadTone := bassInterval == 0 || bassInterval == 3 || bassInterval == 4 || bassInterval == 7
						if !bassIsTriadTone {
							if v.span() < 12 {
								bonus = 6200.0
							} else {
								bonus = 150.0
							}
						} else {
							bonus = 4200.0
						}
					} else {
						bonus = 150.0
					}
				} else {
					bonus = 150.0
				}
			} else {
				bonus = 200.0
			}
		}
	}

	if id == "minor_add9" && missingCount == 0 && extraCount == 0 {
		bonus = 50.0
	}

	if minorSixFamily[id] && rootPC != v.bassPC && !v.globalDominant {
		if in[3] && in[9] && len(v.pcs) == 4 {
			if eqInts(intervals, []int{0, 2, 3, 9}) {
				bonus = 600.0
			} else {
				bonus = 400.0
			}
		}
	}

	if id == "half_diminished7" && eqInts(intervals, []int{0, 3, 6, 10}) {
		if missingCount == 0 && extraCount == 0 {
			bonus = 180.0
		}
	}

	if (id == "sus2" || id == "sus4") && rootPC == v.bassPC &&
		essentialMissing == 0 && missingCount <= 1 && extraCount == 0 {
		if bonus == 0.0 {
			bonus = 80.0
		}
	}

	if id == "major7#11" || id == "major7#11_no5" || id == "major9#11" || id == "major13#11" {
		if in[6] {
			if missingCount == 0 && extraCount == 0 {
				bonus = 250.0
			} else if missingCount <= 1 {
				bonus = 150.0
			}
		}
	}

	if id == "major7#11_no5" && eqInts(intervals, []int{0, 4, 6, 11}) {
		bonus = 300.0
	}

	switch id {
	case "6_9", "6_9_no5":
		if in[9] && in[2] && rootPC == v.bassPC {
			if missingCount == 0 && extraCount == 0 {
				bonus = 9000.0
			} else if missingCount <= 1 {
				bonus = 220.0
			}
		} else if !in[9] {
			bonus = -300.0
		}
	case "6_9_no3":
		if in[9] && in[2] && rootPC == v.bassPC {
			if missingCount == 0 && extraCount == 0 {
				bonus = 290.0
			} else if missingCount <= 1 {
				bonus = 220.0
			}
		}
	}

	if id == "minor6_9" || id == "minor6_9_no5" {
		if in[9] && in[2] && in[3] && rootPC == v.bassPC && missingCount == 0 && extraCount == 0 {
			bonus = 9500.0
		}
	}

	if id == "major7_6_9" {
		if missingCount == 0 && extraCount == 0 && rootPC == v.bassPC {
			bonus = 10000.0
		} else if !in[9] {
			bonus = -300.0
		}
	}

	if in[3] && in[9] && len(v.pcs) == 4 {
		if minorSixFamily[id] {
			if missingCount == 0 && extraCount == 0 {
				bonus = 450.0
			} else if missingCount <= 1 && extraCount <= 2 {
				bonus = 410.0
			}
		} else {
			bonus = 380.0
		}
	}

	if (id == "13_shell" || id == "13_no5_no11" || id == "13_no5") && rootPC == v.bassPC {
		if in[4] && in[10] && in[9] {
			if missingCount == 0 && extraCount == 0 {
				bonus = 250.0
			} else if missingCount <= 1 {
				bonus = 180.0
			}
		}
	}

	if id == "half_diminished11_no3" && eqInts(intervals, []int{0, 5, 6, 10}) {
		if second, ok := v.secondPC(); ok && rootPC == v.bassPC {
			if theory.Mod12(second-v.bassPC) == 5 {
				bonus = 300.0
			}
		}
	}

	if (id == "7#11_no5" || id == "7#11_no3_no5" || id == "13#11_no3_no5" ||
		id == "13#11_no9_no5" || id == "13#11_no5") && rootPC == v.bassPC {
		if in[10] && in[6] {
			if missingCount == 0 && extraCount == 0 {
				bonus = 250.0
			} else if missingCount <= 1 {
				bonus = 180.0
			}
		}
	}

	if id == "minor11" || id == "minor11_no5" || id == "minor11_no9" || id == "minor11_shell" {
		if missingCount == 0 && extraCount == 0 {
			bonus = 8000.0
		}
	}

	if id == "9sus" || id == "9sus_with5" || id == "13sus" || id == "13sus_with5" {
		if missingCount == 0 && extraCount == 0 && rootPC == v.bassPC {
			if v.span() >= 12 {
				bonus = 6400.0
			} else {
				bonus = 150.0
			}
		}
	}

	if id == "7b9#11_13_no5" && missingCount == 0 && extraCount == 0 {
		bonus = 260.0
	}

	if id == "9b13" || id == "9b13_no5" {
		if missingCount == 0 && extraCount == 0 && rootPC == v.bassPC {
			bonus = 250.0
		}
	}

	if id == "dominant9" && rootPC == v.bassPC {
		if missingCount <= 1 && extraCount == 0 {
			bonus = 200.0
		}
	}

	// First-inversion sixth voicing check: with [0,2,(5,)7,10] over the
	// bass the second note decides between X6/bass and the minor reading.
	firstInversionSixth := false
	sixthShape := eqInts(bassIvs, []int{0, 2, 5, 7, 10}) || eqInts(bassIvs, []int{0, 2, 7, 10})
	if sixthShape {
		if second, ok := v.secondPC(); ok && theory.Mod12(second-v.bassPC) == 10 {
			firstInversionSixth = true
		}
	}
	if firstInversionSixth {
		rootInterval := theory.Mod12(rootPC - v.bassPC)
		if id == "6" && rootInterval == 10 {
			bonus = 250.0
		} else if (id == "6_9" || id == "6_9_no5") && rootInterval == 10 {
			bonus = -100.0
		} else if id == "minor7" || id == "minor" {
			bonus = -200.0
		}
	} else if sixthShape {
		rootInterval := theory.Mod12(rootPC - v.bassPC)
		if (id == "minor7" || id == "minor") && rootInterval == 7 {
			bonus = 200.0
		} else if id == "6" && rootInterval == 10 {
			bonus = -200.0
		}
	}

	if eqInts(intervals, []int{0, 2, 4, 7, 9}) && id == "6" {
		bonus = 200.0
	}

	return bonus
}

// inversionBonus rewards triad and seventh voicings whose bass is a chord
// tone, and arbitrates sixth chords against the enharmonic minor triad in
// first inversion.
func (d *Detector) inversionBonus(tmpl *catalog.ChordTemplate, rootPC int, v *voicing) float64 {
	id := tmpl.ID
	bassInterval := theory.Mod12(v.bassPC - rootPC)

	isTriad := id == "major" || id == "minor" || id == "diminished" || id == "augmented"
	isSeventh := seventhTemplates[id] ||
		(strings.HasPrefix(id, "7") &&
			(strings.Contains(id, "b9") || strings.Contains(id, "#9") ||
				strings.Contains(id, "#11") || strings.Contains(id, "b13")))

	bonus := 0.0
	if isTriad && (bassInterval == 3 || bassInterval == 4 || bassInterval == 7) {
		bonus = 35.0
	} else if isSeventh && bassInterval != 0 && containsInt(tmpl.Intervals, bassInterval) {
		bonus = 40.0
	}

	if sixthTemplates[id] && bassInterval == 0 {
		potentialRoot := theory.Mod12(v.bassPC - 3)
		potential := intervalSet(potentialRoot, v.pcs)
		if potential[0] && potential[3] && potential[7] {
			sixthPC := theory.Mod12(rootPC + 9)
			if v.topPC == sixthPC && len(v.notes) >= 4 {
				bonus = 45.0
			} else {
				bonus = -40.0
			}
		}
	}
	return bonus
}

// renderName formats a template hit as a display name. The diminished
// seventh family renders dynamically: three distinct pitch classes show a
// triad, four show the full dim7.
func (d *Detector) renderName(id string, rootPC, uniquePCs int) string {
	root := d.noteName(rootPC)
	if dim7Templates[id] {
		if uniquePCs == 3 {
			return root + "dim"
		}
		return root + "dim7"
	}
	tmpl, ok := catalog.Chord(id)
	if !ok {
		return root + id
	}
	return root + tmpl.Symbol
}
