package midiin

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ganten7/ivory/model"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// SnapshotAtTick replays every track up to the given absolute tick and
// returns the notes sounding at that point, sustain pedal included.
func SnapshotAtTick(s *smf.SMF, tick uint64) model.Notes {
	tracker := NewTracker()
	for _, track := range s.Tracks {
		var abs uint64
		for _, ev := range track {
			abs += uint64(ev.Delta)
			if abs > tick {
				break
			}
			var ch, key, vel, controller, value uint8
			switch {
			case ev.Message.GetNoteOn(&ch, &key, &vel):
				if vel == 0 {
					tracker.NoteOff(key)
				} else {
					tracker.NoteOn(key)
				}
			case ev.Message.GetNoteOff(&ch, &key, &vel):
				tracker.NoteOff(key)
			case ev.Message.GetControlChange(&ch, &controller, &value):
				tracker.Control(controller, value)
			}
		}
	}
	return tracker.Snapshot()
}
