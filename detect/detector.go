// Package detect turns a set of held MIDI notes into a chord, interval or
// scale label. Detection is memoryless: every call looks only at the notes
// passed in, never at previous calls.
//
// The pipeline mirrors how a player reads a voicing: normalize to pitch
// classes, reject bass-interval conflicts, try a few shortcut shapes, score
// every pitch class as a candidate root against the template catalog, then
// clean up the winner (root overrides, slash notation, validation) and
// arbitrate against a scale reading when the input looks stepwise.
package detect

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ganten7/ivory/theory"
)

const (
	minNotesForChord = 2
	maxNotesForChord = 7
)

// Detector classifies note sets. The zero value is not usable, call New.
type Detector struct {
	preferFlats bool
	log         *zap.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger attaches a logger for per-decision tracing.
func WithLogger(log *zap.Logger) Option {
	return func(d *Detector) { d.log = log }
}

// WithSharps switches note spelling from the default flats to sharps.
func WithSharps() Option {
	return func(d *Detector) { d.preferFlats = false }
}

// New returns a Detector that spells notes with flats by default.
func New(opts ...Option) *Detector {
	d := &Detector{preferFlats: true, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetNotePreference selects flat (true) or sharp (false) spelling.
func (d *Detector) SetNotePreference(preferFlats bool) {
	d.preferFlats = preferFlats
}

func (d *Detector) noteName(pc int) string {
	return theory.NoteName(pc, d.preferFlats)
}

// voicing is one snapshot of held notes plus the derived values every
// scoring rule keeps asking for.
type voicing struct {
	notes []uint8 // sorted ascending, no duplicates
	pcs   []int   // sorted unique pitch classes

	lowest, highest uint8
	bassPC, topPC   int

	// globalDominant is true when any pitch class has both a major third
	// and a minor seventh above it somewhere in the set.
	globalDominant bool
}

func newVoicing(notes []uint8) *voicing {
	v := &voicing{notes: notes, pcs: pcsOf(notes)}
	v.lowest = notes[0]
	v.highest = notes[len(notes)-1]
	v.bassPC = theory.PC(v.lowest)
	v.topPC = theory.PC(v.highest)
	for _, pc := range v.pcs {
		if v.hasPC(theory.Mod12(pc+4)) && v.hasPC(theory.Mod12(pc+10)) {
			v.globalDominant = true
			break
		}
	}
	return v
}

func (v *voicing) hasPC(pc int) bool { return containsInt(v.pcs, pc) }

// count reports how many held notes share the pitch class.
func (v *voicing) count(pc int) int {
	n := 0
	for _, note := range v.notes {
		if theory.PC(note) == pc {
			n++
		}
	}
	return n
}

// secondPC is the pitch class of the first note above the bass.
func (v *voicing) secondPC() (int, bool) {
	if len(v.notes) < 2 {
		return 0, false
	}
	return theory.PC(v.notes[1]), true
}

// span is the distance from lowest to highest note in semitones.
func (v *voicing) span() int { return int(v.highest) - int(v.lowest) }

// bassIntervals returns the sorted intervals of every pitch class above
// the bass.
func (v *voicing) bassIntervals() []int { return intervalsFrom(v.bassPC, v.pcs) }

// DetectInterval names the interval between exactly two notes, e.g.
// "C (P5)".
func (d *Detector) DetectInterval(notes []uint8) (string, bool) {
	uniq := dedupeNotes(notes)
	if len(uniq) != 2 {
		return "", false
	}
	lower, upper := uniq[0], uniq[1]
	name := d.noteName(theory.PC(lower)) + " (" + theory.IntervalName(int(upper)-int(lower)) + ")"
	return name, true
}

// Detect classifies the held notes. Two notes name an interval, three or
// more a chord, and clustered stepwise sets of five or more a scale. The
// second return is false when nothing acceptable matched.
func (d *Detector) Detect(notes []uint8) (string, bool) {
	uniq := dedupeNotes(notes)
	if len(uniq) < minNotesForChord {
		return "", false
	}
	if len(uniq) == 2 {
		return d.DetectInterval(uniq)
	}

	pcsAll := pcsOf(uniq)
	if len(pcsAll) < 3 {
		return "", false
	}

	// Scale detection happens on the untouched input even if the chord
	// path reduces the note set below.
	original := uniq

	scaleLater := len(pcsAll) >= 5 && d.clustered(uniq)

	// Seven distinct pitch classes without a third and seventh over the
	// bass read as a scale, not a 13th chord.
	if len(pcsAll) == 7 {
		bassPC := theory.PC(uniq[0])
		fromBass := intervalSet(bassPC, pcsAll)
		hasThird := fromBass[3] || fromBass[4]
		hasSeventh := fromBass[10] || fromBass[11]
		if !hasThird || !hasSeventh {
			if scale, ok := d.DetectScale(uniq); ok && strings.HasPrefix(scale, d.noteName(bassPC)) {
				return scale, true
			}
		}
	}

	if len(uniq) > maxNotesForChord {
		uniq = reduceToCommonPCs(uniq, maxNotesForChord)
		d.log.Debug("reduced dense voicing",
			zap.Int("kept_notes", len(uniq)),
			zap.Int("original_notes", len(original)))
	}

	v := newVoicing(uniq)
	if len(v.pcs) < 2 {
		return "", false
	}

	// Bass-interval conflict filter. May resolve the whole thing to a
	// slash chord or reject the set outright.
	if name, done := d.filterBassConflicts(v); done {
		if name == "" {
			return "", false
		}
		return name, true
	}

	if name, ok := d.earlyShortcut(v); ok {
		return name, true
	}

	best := d.bestRootMatch(v)

	best = d.applyRootOverrides(v, best)
	best = d.resolveSlash(v, best)

	name, rejected := d.validate(v, best)
	if rejected {
		// A rejected chord reading still leaves the scale path open.
		name = ""
	}
	best.name = name

	if scaleLater {
		if scale, ok := d.DetectScale(original); ok {
			// A 13th chord covers seven degrees and outranks the
			// mode reading.
			if strings.Contains(best.name, "13") {
				return best.name, true
			}
			return scale, true
		}
	}

	if best.name == "" {
		return "", false
	}
	return best.name, true
}

// match is one scored interpretation of the voicing.
type match struct {
	name  string
	root  int
	score float64
}

func (m match) ok() bool { return m.name != "" }

// bestRootMatch tries every pitch class as the root and keeps the highest
// scoring template interpretation.
func (d *Detector) bestRootMatch(v *voicing) match {
	var best match
	for _, rootPC := range v.pcs {
		name, score, ok := d.matchPattern(intervalsFrom(rootPC, v.pcs), rootPC, v)
		if ok && score > best.score {
			best = match{name: name, root: rootPC, score: score}
			d.log.Debug("new best root",
				zap.String("chord", name),
				zap.Float64("score", score))
		}
	}
	return best
}

// reduceToCommonPCs keeps only notes whose pitch class is among the n most
// frequent ones. Ties break toward the lower pitch class so dense inputs
// reduce the same way every call.
func reduceToCommonPCs(notes []uint8, n int) []uint8 {
	counts := make(map[int]int)
	for _, note := range notes {
		counts[theory.PC(note)]++
	}
	pcs := make([]int, 0, len(counts))
	for pc := range counts {
		pcs = append(pcs, pc)
	}
	sort.Slice(pcs, func(i, j int) bool {
		if counts[pcs[i]] != counts[pcs[j]] {
			return counts[pcs[i]] > counts[pcs[j]]
		}
		return pcs[i] < pcs[j]
	})
	if len(pcs) > n {
		pcs = pcs[:n]
	}
	keep := make(map[int]bool, len(pcs))
	for _, pc := range pcs {
		keep[pc] = true
	}
	out := make([]uint8, 0, len(notes))
	for _, note := range notes {
		if keep[theory.PC(note)] {
			out = append(out, note)
		}
	}
	return out
}

func dedupeNotes(notes []uint8) []uint8 {
	seen := make(map[uint8]bool, len(notes))
	out := make([]uint8, 0, len(notes))
	for _, n := range notes {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func pcsOf(notes []uint8) []int {
	seen := make(map[int]bool, 12)
	out := make([]int, 0, 12)
	for _, n := range notes {
		pc := theory.PC(n)
		if !seen[pc] {
			seen[pc] = true
			out = append(out, pc)
		}
	}
	sort.Ints(out)
	return out
}

func intervalsFrom(root int, pcs []int) []int {
	out := make([]int, 0, len(pcs))
	for _, pc := range pcs {
		out = append(out, theory.Mod12(pc-root))
	}
	sort.Ints(out)
	return out
}

func intervalSet(root int, pcs []int) map[int]bool {
	out := make(map[int]bool, len(pcs))
	for _, pc := range pcs {
		out[theory.Mod12(pc-root)] = true
	}
	return out
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func eqInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
