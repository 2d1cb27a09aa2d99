package detect

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/ganten7/ivory/catalog"
	"github.com/ganten7/ivory/theory"
)

// earlyShortcut resolves a few voicing shapes before any template scoring
// happens. These shapes are ambiguous enough that the scorer would pick
// the wrong reading, so they get decided up front.
func (d *Detector) earlyShortcut(v *voicing) (string, bool) {
	bassIvs := v.bassIntervals()

	// Bass plus [1, 7, 10]: a minor sixth chord rooted a minor seventh
	// above the bass. C Bb Db G reads as Bbm6/C.
	if len(v.pcs) == 4 && eqInts(bassIvs, []int{0, 1, 7, 10}) {
		root := theory.Mod12(v.bassPC + 10)
		return d.noteName(root) + "m6/" + d.noteName(v.bassPC), true
	}

	// Same shape with an added fourth: C Bb Db F G is still Bbm6/C.
	if len(v.pcs) == 5 && eqInts(bassIvs, []int{0, 1, 5, 7, 10}) {
		root := theory.Mod12(v.bassPC + 10)
		return d.noteName(root) + "m6/" + d.noteName(v.bassPC), true
	}

	// Four upper notes forming a dim7 over a separate bass. When the
	// upper structure supplies the bass's third, fifth, seventh and flat
	// nine, the whole thing is a 7b9 from the bass. Otherwise it stays a
	// dim7 slash chord.
	if len(v.pcs) == 5 {
		upper := make([]int, 0, 4)
		for _, pc := range v.pcs {
			if pc != v.bassPC {
				upper = append(upper, pc)
			}
		}
		if len(upper) == 4 {
			for _, dimRoot := range upper {
				if !eqInts(intervalsFrom(dimRoot, upper), []int{0, 3, 6, 9}) {
					continue
				}
				fromBass := intervalSet(v.bassPC, upper)
				if fromBass[4] && fromBass[7] && fromBass[10] && fromBass[1] {
					return d.noteName(v.bassPC) + "7b9", true
				}
				return d.noteName(dimRoot) + "dim7/" + d.noteName(v.bassPC), true
			}
		}
	}

	// Half-diminished sevenths are enharmonic with minor sixths
	// (Gm7b5 = Bbm6). The bass decides: hdim7 root in the bass keeps
	// hdim7, anything else reads as the m6 a minor third up.
	if len(v.pcs) == 4 {
		for _, root := range v.pcs {
			if !eqInts(intervalsFrom(root, v.pcs), []int{0, 3, 6, 10}) {
				continue
			}
			if root == v.bassPC {
				return d.noteName(root) + "hdim7", true
			}
			m6Root := theory.Mod12(root + 3)
			if m6Root == v.bassPC {
				return d.noteName(m6Root) + "m6", true
			}
			return d.noteName(m6Root) + "m6/" + d.noteName(v.bassPC), true
		}
	}

	return "", false
}

// applyRootOverrides runs the ordered chain of post-scoring corrections
// that may move the root or rename the winner before slash resolution.
func (d *Detector) applyRootOverrides(v *voicing, best match) match {
	best = d.overrideExtendedToBass(v, best)
	best = d.overrideComplexBass(v, best)
	best = d.overrideDim7ThirdBelow(v, best)
	best = d.normalizeDiminished(v, best)
	best = d.normalizeAugmented(v, best)
	best = d.overrideMinor7ThirdBass(v, best)
	return best
}

// overrideExtendedToBass: for extended chords (9/11/13) the bass claims
// the root whenever the bass-rooted reading is also extended.
func (d *Detector) overrideExtendedToBass(v *voicing, best match) match {
	if !best.ok() || best.root == v.bassPC {
		return best
	}
	if !strings.Contains(best.name, "9") && !strings.Contains(best.name, "11") && !strings.Contains(best.name, "13") {
		return best
	}
	name, score, ok := d.matchPattern(v.bassIntervals(), v.bassPC, v)
	if !ok {
		return best
	}
	if strings.Contains(name, "9") || strings.Contains(name, "11") || strings.Contains(name, "13") {
		d.log.Debug("extended chord takes bass root",
			zap.String("was", best.name), zap.String("now", name))
		return match{name: name, root: v.bassPC, score: score}
	}
	return best
}

var basicTriadRe = regexp.MustCompile(`^[A-G][b#]?m?$`)

// overrideComplexBass: when the bass-rooted winner is ambiguous (sus13 or
// missing its third), prefer a clear triad or seventh found from a
// non-bass root and present it as a slash chord.
func (d *Detector) overrideComplexBass(v *voicing, best match) match {
	if !best.ok() || best.root != v.bassPC {
		return best
	}

	fromBass := intervalSet(v.bassPC, v.pcs)
	hasThird := fromBass[3] || fromBass[4]
	isSharp11 := strings.Contains(best.name, "#11")
	isDim := strings.Contains(strings.ToLower(best.name), "dim") || strings.Contains(best.name, "°")
	ambiguous := strings.Contains(best.name, "sus13") || (!hasThird && !isSharp11 && !isDim)
	if !ambiguous {
		return best
	}

	var clear match
	for _, rootPC := range v.pcs {
		if rootPC == v.bassPC {
			continue
		}
		name, score, ok := d.matchPattern(intervalsFrom(rootPC, v.pcs), rootPC, v)
		if !ok {
			continue
		}

		// A perfect add9 whose doubled ninth sits in the bass beats
		// every other clear reading outright.
		if strings.Contains(name, "add9") {
			if eqInts(intervalsFrom(rootPC, v.pcs), []int{0, 2, 4, 7}) {
				ninthPC := theory.Mod12(rootPC + 2)
				if v.bassPC == ninthPC && v.count(ninthPC) > 1 {
					clear = match{name: name, root: rootPC, score: score + 10000.0}
					break
				}
			}
		}

		quality := strings.TrimSpace(strings.ReplaceAll(name, d.noteName(rootPC), ""))
		if isClearQuality(quality) && score > clear.score {
			clear = match{name: name, root: rootPC, score: score}
		}
	}

	if clear.ok() {
		d.log.Debug("clear slash chord override",
			zap.String("was", best.name), zap.String("now", clear.name))
		return clear
	}
	return best
}

func isClearQuality(quality string) bool {
	switch quality {
	case "", "m", "maj7", "m7", "dim", "dim7", "aug":
		return true
	}
	if quality == "7" {
		return true
	}
	if strings.HasPrefix(quality, "7") {
		return !strings.ContainsAny(quality, "b#(") && !strings.Contains(quality, "add")
	}
	return false
}

// overrideDim7ThirdBelow: a dim7 with an extra note a major third below
// one of its tones is really a 7(b9) from that lower note.
func (d *Detector) overrideDim7ThirdBelow(v *voicing, best match) match {
	if len(v.pcs) != 4 && len(v.pcs) != 5 {
		return best
	}
	for _, root := range v.pcs {
		m3Above := theory.Mod12(root + 4)
		if v.hasPC(m3Above) {
			var remaining []int
			if len(v.pcs) == 5 {
				for _, pc := range v.pcs {
					if pc != root {
						remaining = append(remaining, pc)
					}
				}
			} else {
				remaining = v.pcs
			}
			if len(remaining) == 4 && eqInts(intervalsFrom(m3Above, remaining), []int{0, 3, 6, 9}) &&
				containsInt(remaining, theory.Mod12(root+10)) {
				name, score, ok := d.matchPattern(intervalsFrom(root, v.pcs), root, v)
				if ok && (strings.Contains(name, "7(b9)") || strings.Contains(name, "7")) {
					best = match{name: name, root: root, score: score}
					break
				}
			}
		}
		if best.ok() && strings.Contains(best.name, "7(b9)") {
			break
		}
	}
	return best
}

// normalizeDiminished: triadic dim takes the bass as root; symmetric dim7
// re-detects from the bass when that also yields a dim7.
func (d *Detector) normalizeDiminished(v *voicing, best match) match {
	if !best.ok() || strings.Contains(best.name, "7(b9)") {
		return best
	}
	isTriadicDim := d.matchChordType(best.name, "diminished")
	isDim7 := d.matchChordType(best.name, "diminished7")
	if (!isTriadicDim && !isDim7) || best.root == v.bassPC {
		return best
	}
	if isTriadicDim {
		return match{name: d.noteName(v.bassPC) + "dim", root: v.bassPC, score: best.score}
	}
	name, _, ok := d.matchPattern(v.bassIntervals(), v.bassPC, v)
	if ok && d.matchChordType(name, "diminished7") {
		return match{name: name, root: v.bassPC, score: best.score}
	}
	return best
}

// normalizeAugmented: augmented chords are symmetric, the bass is always
// the root.
func (d *Detector) normalizeAugmented(v *voicing, best match) match {
	if !best.ok() {
		return best
	}
	if !d.matchChordType(best.name, "augmented") && !d.matchChordType(best.name, "augmented7") {
		return best
	}
	if best.root == v.bassPC {
		return best
	}
	name, _, ok := d.matchPattern(v.bassIntervals(), v.bassPC, v)
	if ok && (d.matchChordType(name, "augmented") || d.matchChordType(name, "augmented7")) {
		return match{name: name, root: v.bassPC, score: best.score}
	}
	return best
}

// overrideMinor7ThirdBass: a minor seventh chord with its minor third in
// the bass is the enharmonic major sixth from the bass (Am7/C = C6).
func (d *Detector) overrideMinor7ThirdBass(v *voicing, best match) match {
	if !best.ok() || v.bassPC == best.root {
		return best
	}
	if !d.matchChordType(best.name, "minor7") {
		return best
	}
	if theory.Mod12(v.bassPC-best.root) != 3 {
		return best
	}
	return match{name: d.noteName(v.bassPC) + "6", root: v.bassPC, score: best.score}
}

// qualityTypes maps a display quality suffix back to its template
// identifier for the chord-type checks below.
var qualityTypes = map[string]string{
	"":        "major",
	"m":       "minor",
	"dim":     "diminished",
	"aug":     "augmented",
	"2":       "sus2",
	"4":       "sus4",
	"7sus4":   "7sus4",
	"7sus2":   "7sus2",
	"7sus13":  "7sus13",
	"sus13":   "sus13",
	"Δ7":      "major7",
	"Δ7#5":    "major7#5",
	"m7":      "minor7",
	"mΔ7":     "minor_major7",
	"mΔ7(9)":  "minor_major9",
	"7":       "dominant7",
	"dim7":    "diminished7",
	"dimΔ7":   "diminished_major7",
	"ø7":      "half_diminished7",
	"9":       "dominant9",
	"11":      "dominant11",
	"13":      "dominant13",
	"Δ9":      "major9",
	"m9":      "minor9",
	"Δ11":     "major11",
	"Δ7#11":   "major7#11",
	"m11":     "minor11",
	"Δ13":     "major13",
	"Δ13#11":  "major13#11",
	"m13":     "minor13",
	"7alt":    "altered",
	"5":       "5",
	"6":       "6",
	"6/9":     "6_9",
	"m6":      "minor6",
	"m6/9":    "minor6_9",
	"add9":    "add9",
	"add11":   "add11",
}

// matchChordType reports whether a rendered chord name is of the given
// template. The slash part is ignored; the quality suffix after the root
// letter decides.
func (d *Detector) matchChordType(name, id string) bool {
	if name == "" {
		return false
	}
	if i := strings.Index(name, "/"); i >= 0 {
		name = name[:i]
	}
	var quality string
	switch {
	case len(name) >= 2 && theory.IsNoteName(name[:2]):
		quality = name[2:]
	case len(name) >= 1 && theory.IsNoteName(name[:1]):
		quality = name[1:]
	default:
		return false
	}

	// A bare "13" suffix covers every 13th voicing template.
	if quality == "13" {
		switch id {
		case "dominant13", "13_shell", "13_no5_no11", "13_no5":
			return true
		}
		return false
	}
	return qualityTypes[quality] == id
}

// patternFor finds the first catalog template whose type matches the
// rendered name.
func (d *Detector) patternFor(name string) []int {
	for i := range catalog.Chords {
		if d.matchChordType(name, catalog.Chords[i].ID) {
			return catalog.Chords[i].Intervals
		}
	}
	return nil
}
