package detect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ganten7/ivory/theory"
)

func TestDetectsMajorAndMinorTriads(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{60, 64, 67})
	assert.True(ok)
	assert.Equal("C", name)

	name, ok = d.Detect([]uint8{60, 63, 67})
	assert.True(ok)
	assert.Equal("Cm", name)
}

func TestDetectsTriadsInEveryKey(t *testing.T) {
	d := New()
	assert := assert.New(t)

	for root := uint8(48); root < 60; root++ {
		want := theory.NoteName(theory.PC(root), true)
		name, ok := d.Detect([]uint8{root, root + 4, root + 7})
		assert.True(ok, fmt.Sprintf("major triad on %s", want))
		assert.Equal(want, name)

		name, ok = d.Detect([]uint8{root, root + 3, root + 7})
		assert.True(ok, fmt.Sprintf("minor triad on %s", want))
		assert.Equal(want+"m", name)
	}
}

func TestDetectsSeventhChords(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{60, 64, 67, 70})
	assert.True(ok)
	assert.Equal("C7", name)

	name, ok = d.Detect([]uint8{60, 63, 67, 70})
	assert.True(ok)
	assert.Equal("Cm7", name)

	name, ok = d.Detect([]uint8{60, 64, 67, 71})
	assert.True(ok)
	assert.Equal("CΔ7", name)
}

func TestDetectsSixthChordVoicing(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{48, 57, 60, 64, 67})
	assert.True(ok)
	assert.Equal("C6", name)
}

func TestDetectsSusChords(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{60, 62, 67})
	assert.True(ok)
	assert.Equal("C2", name)

	name, ok = d.Detect([]uint8{60, 65, 67})
	assert.True(ok)
	assert.Equal("C4", name)
}

func TestDetectsDiminishedAndAugmented(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{60, 63, 66})
	assert.True(ok)
	assert.Equal("Cdim", name)

	name, ok = d.Detect([]uint8{60, 63, 66, 69})
	assert.True(ok)
	assert.Equal("Cdim7", name)

	name, ok = d.Detect([]uint8{60, 64, 68})
	assert.True(ok)
	assert.Equal("Caug", name)
}

func TestSixthWithoutFifthBeatsMinorInversion(t *testing.T) {
	d := New()
	assert := assert.New(t)

	// Eb G C is Eb6 with the sixth on top, not Cm/Eb.
	name, ok := d.Detect([]uint8{63, 67, 72})
	assert.True(ok)
	assert.Equal("Eb6", name)
}

func TestMinorMajorSeventh(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{60, 63, 67, 71})
	assert.True(ok)
	assert.Equal("CmΔ7", name)
}

func TestSixNineWithoutFifth(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{60, 64, 69, 74})
	assert.True(ok)
	assert.Equal("C6/9", name)
}

func TestSlashChordOverSeventhInBass(t *testing.T) {
	d := New()
	assert := assert.New(t)

	// Single Bb below a C triad reads C/Bb.
	name, ok := d.Detect([]uint8{58, 60, 64, 67})
	assert.True(ok)
	assert.Equal("C/Bb", name)

	// Doubled Bb keeps the dominant seventh in the name.
	name, ok = d.Detect([]uint8{46, 58, 60, 64, 67})
	assert.True(ok)
	assert.Equal("C7/Bb", name)
}

func TestFirstInversionKeepsTriadName(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{52, 60, 67})
	assert.True(ok)
	assert.Equal("C/E", name)
}

func TestMinorSeventhSimplifiesOverFlatSeventhBass(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{58, 60, 63, 67})
	assert.True(ok)
	assert.Equal("Cm/Bb", name)
}

func TestTwoNotesNameAnInterval(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{60, 67})
	assert.True(ok)
	assert.Equal("C (P5)", name)

	name, ok = d.Detect([]uint8{60, 64})
	assert.True(ok)
	assert.Equal("C (M3)", name)
}

func TestTooFewNotes(t *testing.T) {
	d := New()
	assert := assert.New(t)

	_, ok := d.Detect(nil)
	assert.False(ok)

	_, ok = d.Detect([]uint8{60})
	assert.False(ok)

	// Three notes but only two pitch classes.
	_, ok = d.Detect([]uint8{48, 60, 64})
	assert.False(ok)
}

func TestDissonantClusterHasNoName(t *testing.T) {
	d := New()
	assert := assert.New(t)

	_, ok := d.Detect([]uint8{60, 62, 64, 65, 67, 71})
	assert.False(ok)
}

func TestBothThirdsOverBassRejected(t *testing.T) {
	d := New()
	assert := assert.New(t)

	// C Eb E G holds both thirds over the bass with no clean reading
	// from any other root.
	_, ok := d.Detect([]uint8{60, 63, 64, 67})
	assert.False(ok)
}

func TestMinorSixthShapeShortcut(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{60, 61, 67, 70})
	assert.True(ok)
	assert.Equal("Bbm6/C", name)
}

func TestHalfDiminishedVersusMinorSixth(t *testing.T) {
	d := New()
	assert := assert.New(t)

	// hdim7 root in the bass keeps the half-diminished name.
	name, ok := d.Detect([]uint8{60, 63, 66, 70})
	assert.True(ok)
	assert.Equal("Chdim7", name)

	// The minor-sixth root in the bass flips the reading to Ebm6.
	name, ok = d.Detect([]uint8{63, 66, 70, 72})
	assert.True(ok)
	assert.Equal("Ebm6", name)
}

func TestDiminishedUpperStructureOverDominantBass(t *testing.T) {
	d := New()
	assert := assert.New(t)

	// E G Bb Db over C supplies the third, fifth, seventh and flat
	// nine of C.
	name, ok := d.Detect([]uint8{48, 52, 55, 58, 61})
	assert.True(ok)
	assert.Equal("C7b9", name)
}

func TestSharpSpelling(t *testing.T) {
	d := New(WithSharps())
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{61, 65, 68})
	assert.True(ok)
	assert.Equal("C#", name)

	d.SetNotePreference(true)
	name, ok = d.Detect([]uint8{61, 65, 68})
	assert.True(ok)
	assert.Equal("Db", name)
}

func TestDoubledOctavesDoNotChangeTheChord(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{48, 60, 64, 67, 72})
	assert.True(ok)
	assert.Equal("C", name)
}

func TestDetectionIsDeterministic(t *testing.T) {
	d := New()
	assert := assert.New(t)

	notes := []uint8{36, 48, 58, 60, 64, 67, 69, 74, 81}
	first, firstOK := d.Detect(notes)
	for i := 0; i < 50; i++ {
		name, ok := d.Detect(notes)
		assert.Equal(firstOK, ok)
		assert.Equal(first, name)
	}
}
