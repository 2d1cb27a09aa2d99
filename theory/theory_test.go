package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", NoteName(0, true))
	assert.Equal("Bb", NoteName(10, true))
	assert.Equal("A#", NoteName(10, false))
	assert.Equal("Eb", NoteName(3, true))
	assert.Equal("D#", NoteName(3, false))
}

func TestPCAndMod12(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, PC(60))
	assert.Equal(9, PC(21))
	assert.Equal(11, Mod12(-1))
	assert.Equal(0, Mod12(12))
	assert.Equal(5, Mod12(17))
}

func TestInterval(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(7, Interval(0, 7))
	assert.Equal(5, Interval(7, 0))
	assert.Equal(0, Interval(4, 4))
}

func TestIntervalName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("P1", IntervalName(0))
	assert.Equal("P5", IntervalName(7))
	assert.Equal("M3", IntervalName(4))
	assert.Equal("P8", IntervalName(12))
	assert.Equal("22 semitones", IntervalName(22))
}

func TestIsNoteName(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsNoteName("C"))
	assert.True(IsNoteName("Bb"))
	assert.True(IsNoteName("F#"))
	assert.False(IsNoteName("H"))
	assert.False(IsNoteName(""))
}

func TestParseNote(t *testing.T) {
	assert := assert.New(t)

	note, err := ParseNote("C4")
	assert.NoError(err)
	assert.Equal(uint8(60), note)

	note, err = ParseNote("Eb3")
	assert.NoError(err)
	assert.Equal(uint8(51), note)

	note, err = ParseNote("F#5")
	assert.NoError(err)
	assert.Equal(uint8(78), note)

	note, err = ParseNote("A0")
	assert.NoError(err)
	assert.Equal(uint8(21), note)

	_, err = ParseNote("H2")
	assert.Error(err)
	_, err = ParseNote("C")
	assert.Error(err)
	_, err = ParseNote("C99")
	assert.Error(err)
}
