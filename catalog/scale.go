package catalog

// ScaleFamily groups scale templates for scoring. The three seven-note mode
// families earn an extra bonus over pentatonic, blues and symmetric scales.
type ScaleFamily int

const (
	FamilyMajorMode ScaleFamily = iota
	FamilyMelodicMinorMode
	FamilyHarmonicMinorMode
	FamilyPentatonic
	FamilyBlues
	FamilySymmetric
)

// ScaleTemplate describes a scale as intervals above its tonic.
type ScaleTemplate struct {
	Name      string
	Intervals []int
	Family    ScaleFamily
	// ClusteredOnly scales match only when the played notes are clustered
	// or fit within one octave. Keeps sparse voicings from reading as
	// pentatonic or whole-tone scales.
	ClusteredOnly bool
	// MinPitchClasses is an extra floor on unique pitch classes, beyond
	// the global scale-detection minimum. Zero means no extra floor.
	MinPitchClasses int
}

// Scales is the ordered scale catalog.
var Scales = []ScaleTemplate{
	// Major modes
	{Name: "Ionian", Intervals: iv(0, 2, 4, 5, 7, 9, 11), Family: FamilyMajorMode},
	{Name: "Dorian", Intervals: iv(0, 2, 3, 5, 7, 9, 10), Family: FamilyMajorMode},
	{Name: "Phrygian", Intervals: iv(0, 1, 3, 5, 7, 8, 10), Family: FamilyMajorMode},
	{Name: "Lydian", Intervals: iv(0, 2, 4, 6, 7, 9, 11), Family: FamilyMajorMode},
	{Name: "Mixolydian", Intervals: iv(0, 2, 4, 5, 7, 9, 10), Family: FamilyMajorMode},
	{Name: "Aeolian", Intervals: iv(0, 2, 3, 5, 7, 8, 10), Family: FamilyMajorMode},
	{Name: "Locrian", Intervals: iv(0, 1, 3, 5, 6, 8, 10), Family: FamilyMajorMode},

	// Melodic minor modes
	{Name: "Melodic Minor", Intervals: iv(0, 2, 3, 5, 7, 9, 11), Family: FamilyMelodicMinorMode},
	{Name: "Dorian b2", Intervals: iv(0, 1, 3, 5, 7, 9, 10), Family: FamilyMelodicMinorMode},
	{Name: "Lydian Augmented", Intervals: iv(0, 2, 4, 6, 8, 9, 11), Family: FamilyMelodicMinorMode},
	{Name: "Lydian Dominant", Intervals: iv(0, 2, 4, 6, 7, 9, 10), Family: FamilyMelodicMinorMode},
	{Name: "Mixolydian b6", Intervals: iv(0, 2, 4, 5, 7, 8, 10), Family: FamilyMelodicMinorMode},
	{Name: "Locrian #2", Intervals: iv(0, 2, 3, 5, 6, 8, 10), Family: FamilyMelodicMinorMode},
	{Name: "Altered", Intervals: iv(0, 1, 3, 4, 6, 8, 10), Family: FamilyMelodicMinorMode},

	// Harmonic minor modes
	{Name: "Harmonic Minor", Intervals: iv(0, 2, 3, 5, 7, 8, 11), Family: FamilyHarmonicMinorMode},
	{Name: "Locrian #6", Intervals: iv(0, 1, 3, 5, 6, 9, 10), Family: FamilyHarmonicMinorMode},
	{Name: "Ionian #5", Intervals: iv(0, 2, 4, 5, 8, 9, 11), Family: FamilyHarmonicMinorMode},
	{Name: "Dorian #4", Intervals: iv(0, 2, 3, 6, 7, 9, 10), Family: FamilyHarmonicMinorMode},
	{Name: "Phrygian Dominant", Intervals: iv(0, 1, 4, 5, 7, 8, 10), Family: FamilyHarmonicMinorMode},
	{Name: "Lydian #2", Intervals: iv(0, 3, 4, 6, 7, 9, 11), Family: FamilyHarmonicMinorMode},
	{Name: "Altered Diminished", Intervals: iv(0, 1, 3, 4, 6, 8, 9), Family: FamilyHarmonicMinorMode},

	// Pentatonic scales
	{Name: "Major Pentatonic", Intervals: iv(0, 2, 4, 7, 9), Family: FamilyPentatonic, ClusteredOnly: true},
	{Name: "Minor Pentatonic", Intervals: iv(0, 3, 5, 7, 10), Family: FamilyPentatonic, ClusteredOnly: true},

	// Blues scales
	{Name: "Major Blues", Intervals: iv(0, 2, 3, 4, 7, 9), Family: FamilyBlues, ClusteredOnly: true},
	{Name: "Minor Blues", Intervals: iv(0, 3, 5, 6, 7, 10), Family: FamilyBlues, ClusteredOnly: true},

	// Symmetric scales
	{Name: "Whole Tone", Intervals: iv(0, 2, 4, 6, 8, 10), Family: FamilySymmetric, ClusteredOnly: true, MinPitchClasses: 6},
	{Name: "Whole-Half Diminished", Intervals: iv(0, 2, 3, 5, 6, 8, 9, 11), Family: FamilySymmetric},
	{Name: "Half-Whole Diminished", Intervals: iv(0, 1, 3, 4, 6, 7, 9, 10), Family: FamilySymmetric},
}

// ModeFamily reports whether the family is one of the seven-note mode
// families that earn the mode bonus during scale scoring.
func (f ScaleFamily) ModeFamily() bool {
	return f == FamilyMajorMode || f == FamilyMelodicMinorMode || f == FamilyHarmonicMinorMode
}
