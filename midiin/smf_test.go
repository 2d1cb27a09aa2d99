package midiin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestSnapshotAtTick(t *testing.T) {
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(480, midi.NoteOn(0, 67, 100))
	tr.Add(480, midi.NoteOff(0, 60))
	tr.Close(0)

	s := smf.New()
	s.Add(tr)

	assert := assert.New(t)
	assert.Equal([]uint8{60, 64}, SnapshotAtTick(s, 0))
	assert.Equal([]uint8{60, 64, 67}, SnapshotAtTick(s, 480))
	assert.Equal([]uint8{64, 67}, SnapshotAtTick(s, 960))
}

func TestSnapshotAtTickHonorsSustain(t *testing.T) {
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.ControlChange(0, 64, 127))
	tr.Add(240, midi.NoteOff(0, 60))
	tr.Add(240, midi.ControlChange(0, 64, 0))
	tr.Close(0)

	s := smf.New()
	s.Add(tr)

	assert := assert.New(t)
	// Note released under the pedal still sounds.
	assert.Equal([]uint8{60}, SnapshotAtTick(s, 300))
	// Pedal lift drops it.
	assert.Empty(SnapshotAtTick(s, 480))
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile("does-not-exist.mid")
	assert := assert.New(t)
	assert.Error(err)
}
