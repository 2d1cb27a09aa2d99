package detect

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ganten7/ivory/catalog"
)

// filterBassConflicts rejects or resolves voicings whose bass carries both
// thirds (m3+M3) or both sevenths (m7+M7). Such sets are only acceptable
// when the full pitch-class set spells an exact template from a non-bass
// root, in which case the result is that chord over the bass (DbmΔ9/C).
// Altered dominants with #9 or #11 do not count: their sharp nine is
// enharmonic with the minor third that caused the conflict.
//
// done=true means detection is finished: name is the resolved slash chord,
// or empty for a rejection. done=false hands the voicing back to the
// normal pipeline.
func (d *Detector) filterBassConflicts(v *voicing) (name string, done bool) {
	fromBass := intervalSet(v.bassPC, v.pcs)
	bothThirds := fromBass[3] && fromBass[4]
	bothSevenths := fromBass[10] && fromBass[11]
	if !bothThirds && !bothSevenths {
		return "", false
	}

	nonBass := make([]int, 0, len(v.pcs))
	for _, pc := range v.pcs {
		if pc != v.bassPC {
			nonBass = append(nonBass, pc)
		}
	}
	if len(nonBass) < 2 {
		return "", true
	}

	valid := false
	foundAltered := false
	for _, root := range nonBass {
		ivs := intervalsFrom(root, v.pcs)
		for i := range catalog.Chords {
			if !sameIntervalSet(catalog.Chords[i].Intervals, ivs) {
				continue
			}
			id := catalog.Chords[i].ID
			if strings.Contains(id, "#9") || strings.Contains(id, "#11") {
				foundAltered = true
				break
			}
			valid = true
			break
		}
		if valid {
			break
		}
	}

	if !valid {
		d.log.Debug("rejected bass interval conflict",
			zap.Bool("both_thirds", bothThirds),
			zap.Bool("both_sevenths", bothSevenths),
			zap.Bool("altered_only", foundAltered))
		return "", true
	}

	// Resolve from the first non-bass root that spells any exact
	// template, altered or not.
	for _, root := range nonBass {
		ivs := intervalsFrom(root, v.pcs)
		matched := false
		for i := range catalog.Chords {
			if sameIntervalSet(catalog.Chords[i].Intervals, ivs) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if chord, _, ok := d.matchPattern(ivs, root, v); ok {
			return chord + "/" + d.noteName(v.bassPC), true
		}
		break
	}
	return "", false
}

// sameIntervalSet compares two duplicate-free interval lists as sets.
func sameIntervalSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		if !containsInt(b, x) {
			return false
		}
	}
	return true
}
