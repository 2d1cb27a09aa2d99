package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectsMajorScaleAsIonian(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.DetectScale([]uint8{60, 62, 64, 65, 67, 69, 71})
	assert.True(ok)
	assert.Equal("C Ionian", name)
}

func TestScalePreferredOverChordForStepwiseOctave(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.Detect([]uint8{65, 67, 69, 70, 72, 74, 76})
	assert.True(ok)
	assert.Equal("F Ionian", name)
}

func TestLowestNoteBreaksModalTies(t *testing.T) {
	d := New()
	assert := assert.New(t)

	// White keys from D: the D-rooted reading wins over C Ionian.
	name, ok := d.DetectScale([]uint8{62, 64, 65, 67, 69, 71, 72})
	assert.True(ok)
	assert.Equal("D Dorian", name)
}

func TestPentatonicWithinOneOctave(t *testing.T) {
	d := New()
	assert := assert.New(t)

	name, ok := d.DetectScale([]uint8{57, 60, 62, 64, 67})
	assert.True(ok)
	assert.Equal("A Minor Pentatonic", name)
}

func TestScaleRequiresFiveNotes(t *testing.T) {
	d := New()
	assert := assert.New(t)

	_, ok := d.DetectScale([]uint8{60, 62, 64, 65})
	assert.False(ok)

	// Five notes but only four pitch classes.
	_, ok = d.DetectScale([]uint8{60, 62, 64, 65, 72})
	assert.False(ok)
}

func TestScaleRejectsExtraTones(t *testing.T) {
	d := New()
	assert := assert.New(t)

	// Major scale plus a chromatic passing tone is no scale at all.
	_, ok := d.DetectScale([]uint8{60, 61, 62, 64, 65, 67, 69, 71})
	assert.False(ok)
}

func TestClustered(t *testing.T) {
	d := New()
	assert := assert.New(t)

	assert.True(d.clustered([]uint8{60, 62, 64, 65, 67}))
	assert.False(d.clustered([]uint8{60, 64, 67, 71, 74}))
	assert.False(d.clustered([]uint8{60, 62, 64}))
}