// Package theory holds the pitch-class math and naming tables shared by the
// detection engine: note names under a flat or sharp preference and the
// interval abbreviations used for two-note labels.
package theory

import "fmt"

// NumPitchClasses is the size of the pitch-class space.
const NumPitchClasses = 12

var sharpNames = [NumPitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var flatNames = [NumPitchClasses]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// PC reduces an absolute MIDI note number to its pitch class.
func PC(note uint8) int {
	return int(note) % NumPitchClasses
}

// Mod12 reduces any semitone distance (possibly negative) to 0..11.
func Mod12(n int) int {
	return ((n % NumPitchClasses) + NumPitchClasses) % NumPitchClasses
}

// Interval is the semitone distance from one pitch class up to another.
func Interval(from, to int) int {
	return Mod12(to - from)
}

// NoteName renders a pitch class as a letter name. preferFlats selects
// between the flat and sharp spelling of the five accidentals.
func NoteName(pc int, preferFlats bool) string {
	pc = Mod12(pc)
	if preferFlats {
		return flatNames[pc]
	}
	return sharpNames[pc]
}

// NoteNames lists all twelve letter names under the given preference, in
// pitch-class order. Used by callers that parse note names back to numbers.
func NoteNames(preferFlats bool) []string {
	if preferFlats {
		return flatNames[:]
	}
	return sharpNames[:]
}

// IsNoteName reports whether s is a letter name under either preference.
func IsNoteName(s string) bool {
	for pc := 0; pc < NumPitchClasses; pc++ {
		if s == sharpNames[pc] || s == flatNames[pc] {
			return true
		}
	}
	return false
}

// intervalNames maps a semitone distance to its abbreviation, through two
// octaves (the range a two-hand interval can realistically span).
var intervalNames = map[int]string{
	0:  "P1",
	1:  "m2",
	2:  "M2",
	3:  "m3",
	4:  "M3",
	5:  "P4",
	6:  "d5",
	7:  "P5",
	8:  "m6",
	9:  "M6",
	10: "m7",
	11: "M7",
	12: "P8",
	13: "m9",
	14: "M9",
	15: "m10",
	16: "M10",
	17: "P11",
	18: "A11",
	19: "P12",
	20: "m13",
	21: "M13",
}

// IntervalName is the abbreviation for a semitone distance between two
// absolute notes. Distances beyond the table render literally.
func IntervalName(semitones int) string {
	if name, ok := intervalNames[semitones]; ok {
		return name
	}
	return fmt.Sprintf("%d semitones", semitones)
}
