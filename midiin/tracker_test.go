package midiin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteOnOff(t *testing.T) {
	tracker := NewTracker()
	tracker.NoteOn(60)
	tracker.NoteOn(64)
	tracker.NoteOn(67)
	tracker.NoteOff(64)

	assert := assert.New(t)
	assert.Equal([]uint8{60, 67}, tracker.Snapshot())
}

func TestSnapshotIsSorted(t *testing.T) {
	tracker := NewTracker()
	tracker.NoteOn(71)
	tracker.NoteOn(48)
	tracker.NoteOn(60)

	assert := assert.New(t)
	assert.Equal([]uint8{48, 60, 71}, tracker.Snapshot())
}

func TestSustainPedalHoldsReleasedNotes(t *testing.T) {
	tracker := NewTracker()
	assert := assert.New(t)

	tracker.NoteOn(60)
	tracker.Control(64, 127)
	tracker.NoteOff(60)
	assert.Equal([]uint8{60}, tracker.Snapshot())

	tracker.Control(64, 0)
	assert.Empty(tracker.Snapshot())
}

func TestRepressedNoteSurvivesPedalLift(t *testing.T) {
	tracker := NewTracker()
	assert := assert.New(t)

	tracker.NoteOn(60)
	tracker.Control(64, 127)
	tracker.NoteOff(60)
	tracker.NoteOn(60) // pressed again while parked
	tracker.Control(64, 0)

	assert.Equal([]uint8{60}, tracker.Snapshot())
}

func TestNoteOffWithoutPedalClearsImmediately(t *testing.T) {
	tracker := NewTracker()
	assert := assert.New(t)

	tracker.NoteOn(60)
	tracker.NoteOff(60)
	assert.Empty(tracker.Snapshot())
}

func TestOtherControllersIgnored(t *testing.T) {
	tracker := NewTracker()
	assert := assert.New(t)

	tracker.NoteOn(60)
	tracker.Control(1, 127) // mod wheel
	tracker.NoteOff(60)
	assert.Empty(tracker.Snapshot())
}

func TestHalfPedalThreshold(t *testing.T) {
	tracker := NewTracker()
	assert := assert.New(t)

	// 63 and below is up, 64 and above is down.
	tracker.NoteOn(60)
	tracker.Control(64, 63)
	tracker.NoteOff(60)
	assert.Empty(tracker.Snapshot())

	tracker.NoteOn(62)
	tracker.Control(64, 64)
	tracker.NoteOff(62)
	assert.Equal([]uint8{62}, tracker.Snapshot())
}

func TestReset(t *testing.T) {
	tracker := NewTracker()
	assert := assert.New(t)

	tracker.NoteOn(60)
	tracker.Control(64, 127)
	tracker.NoteOff(60)
	tracker.Reset()
	assert.Empty(tracker.Snapshot())

	// Pedal state is gone too.
	tracker.NoteOn(61)
	tracker.NoteOff(61)
	assert.Empty(tracker.Snapshot())
}
