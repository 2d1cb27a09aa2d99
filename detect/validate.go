package detect

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ganten7/ivory/catalog"
	"github.com/ganten7/ivory/theory"
)

// validate runs the post-detection checks. The returned name may differ
// from the input when a conflicted bass-root reading is re-resolved as a
// slash chord; rejected=true means the voicing has no acceptable name.
func (d *Detector) validate(v *voicing, best match) (string, bool) {
	if !best.ok() {
		return best.name, false
	}

	fromBass := intervalSet(v.bassPC, v.pcs)
	bothThirds := fromBass[3] && fromBass[4]
	bothSevenths := fromBass[10] && fromBass[11]

	if bothThirds || bothSevenths {
		name, rejected := d.recheckBassConflict(v, best, bothThirds)
		if rejected {
			return "", true
		}
		best.name = name
	}

	fromRoot := intervalsFrom(best.root, v.pcs)

	// A chord without any third has to earn the omission.
	hasThird := containsInt(fromRoot, 3) || containsInt(fromRoot, 4)
	isSus := strings.Contains(strings.ToLower(best.name), "sus") ||
		strings.HasSuffix(best.name, "2") || strings.HasSuffix(best.name, "4")
	isPower := strings.HasSuffix(best.name, "5") && len(best.name) <= 3

	if strings.Contains(best.name, "/") {
		bassIvs := v.bassIntervals()
		thirdFromBass := containsInt(bassIvs, 3) || containsInt(bassIvs, 4)
		if !hasThird && !thirdFromBass && !isSus && !isPower {
			d.log.Debug("rejected thirdless slash chord", zap.String("chord", best.name))
			return "", true
		}
		// Three pitch classes are too thin to carry an add9 inversion.
		if strings.Contains(best.name, "add9") && len(v.pcs) <= 3 {
			return "", true
		}
	} else if !hasThird && !isSus && !isPower {
		isDim := strings.Contains(strings.ToLower(best.name), "dim") || strings.Contains(best.name, "°")
		isSharp11 := strings.Contains(best.name, "#11") && containsInt(fromRoot, 6)
		if !isDim && !isSharp11 {
			d.log.Debug("rejected thirdless chord", zap.String("chord", best.name))
			return "", true
		}
	}

	// A natural 11 above a major third clashes a minor ninth against it.
	// Tolerated only when the fourth sits alone in the bass, or the name
	// asks for it.
	majorQuality := !strings.Contains(best.name, "m") && !strings.Contains(best.name, "dim") &&
		!strings.Contains(best.name, "sus")
	if containsInt(fromRoot, 4) && containsInt(fromRoot, 5) && majorQuality &&
		!strings.Contains(best.name, "add11") {
		p4 := theory.Mod12(best.root + 5)
		inUpper := false
		for _, note := range v.notes {
			if theory.PC(note) == p4 && note != v.lowest {
				inUpper = true
				break
			}
		}
		if inUpper {
			d.log.Debug("rejected natural 11 over major third", zap.String("chord", best.name))
			return "", true
		}
	}

	// add9 needs its fifth.
	if strings.Contains(best.name, "add9") && !containsInt(fromRoot, 7) {
		return "", true
	}

	return best.name, false
}

// recheckBassConflict re-examines a winner whose bass carries both thirds
// or both sevenths. The scoring loop can still hand such a set a bass-root
// name; here it is either re-homed on a root with an exact template match
// or rejected.
func (d *Detector) recheckBassConflict(v *voicing, best match, bothThirds bool) (string, bool) {
	nonBass := make([]int, 0, len(v.pcs))
	for _, pc := range v.pcs {
		if pc != v.bassPC {
			nonBass = append(nonBass, pc)
		}
	}
	if len(nonBass) < 2 {
		return best.name, false
	}

	validRoot := -1
	validType := ""
	for _, root := range nonBass {
		ivs := intervalsFrom(root, v.pcs)
		for i := range catalog.Chords {
			if sameIntervalSet(catalog.Chords[i].Intervals, ivs) {
				validRoot = root
				validType = catalog.Chords[i].ID
				break
			}
		}
		if validRoot >= 0 {
			break
		}
	}
	if validRoot < 0 {
		return "", true
	}

	// #9 reads as a minor third, so an altered dominant hung off a
	// non-bass root cannot explain a bass that already holds both thirds.
	rejectAltered := strings.Contains(validType, "#9") || strings.Contains(validType, "#11") ||
		strings.Contains(best.name, "#9") || strings.Contains(best.name, "#11")
	if rejectAltered && bothThirds && best.root != v.bassPC {
		return "", true
	}

	if best.root == v.bassPC {
		ivs := intervalsFrom(validRoot, v.pcs)
		if name, _, ok := d.matchPattern(ivs, validRoot, v); ok {
			return name + "/" + d.noteName(v.bassPC), false
		}
		return "", true
	}

	// Already a non-bass reading: it must sit on one of the exact-match
	// roots.
	detectedType := ""
	found := false
	for _, root := range nonBass {
		ivs := intervalsFrom(root, v.pcs)
		for i := range catalog.Chords {
			if sameIntervalSet(catalog.Chords[i].Intervals, ivs) && root == best.root {
				detectedType = catalog.Chords[i].ID
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return "", true
	}
	if (strings.Contains(detectedType, "#9") || strings.Contains(detectedType, "#11") ||
		strings.Contains(best.name, "#9") || strings.Contains(best.name, "#11")) && bothThirds {
		return "", true
	}
	return best.name, false
}
