package detect

import (
	"sort"

	"go.uber.org/zap"

	"github.com/ganten7/ivory/catalog"
	"github.com/ganten7/ivory/theory"
)

// DetectScale names the scale or mode formed by the notes, e.g.
// "F Ionian". Only exact matches count: every scale degree present and
// nothing else.
func (d *Detector) DetectScale(notes []uint8) (string, bool) {
	if len(notes) < 5 {
		return "", false
	}
	pcs := pcsOf(notes)
	if len(pcs) < 5 {
		return "", false
	}

	sorted := dedupeNotes(notes)
	lowestPC := theory.PC(sorted[0])
	clustered := d.clustered(notes)
	withinOctave := int(sorted[len(sorted)-1])-int(sorted[0]) < 12

	bestName := ""
	bestScore := 0
	for _, rootPC := range pcs {
		ivs := intervalSet(rootPC, pcs)
		for i := range catalog.Scales {
			scale := &catalog.Scales[i]
			if scale.ClusteredOnly && !clustered && !withinOctave {
				continue
			}
			if len(pcs) < scale.MinPitchClasses {
				continue
			}
			matched := 0
			for _, iv := range scale.Intervals {
				if ivs[iv] {
					matched++
				}
			}
			if matched < len(scale.Intervals) {
				continue
			}
			if len(pcs) > len(scale.Intervals) {
				// Extra tones break the scale.
				continue
			}
			score := 5000 + matched
			if scale.Family.ModeFamily() {
				score += 1000
			}
			if rootPC == lowestPC {
				score += 500
			}
			if score > bestScore {
				bestScore = score
				bestName = d.noteName(rootPC) + " " + scale.Name
			}
		}
	}
	if bestName == "" {
		return "", false
	}
	d.log.Debug("scale detected", zap.String("scale", bestName), zap.Int("score", bestScore))
	return bestName, true
}

// clustered reports whether the notes run mostly stepwise, the way a scale
// is played, rather than stacked in thirds.
func (d *Detector) clustered(notes []uint8) bool {
	if len(notes) < 5 {
		return false
	}
	sorted := make([]uint8, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	adjacent := 0
	total := len(sorted) - 1
	for i := 0; i < total; i++ {
		if sorted[i+1]-sorted[i] <= 2 {
			adjacent++
		}
	}
	return float64(adjacent)/float64(total) >= 0.6
}
