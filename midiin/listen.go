package midiin

import (
	"fmt"
	"strconv"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"go.uber.org/zap"
)

// OpenPort resolves an input port from a flag value: empty means the
// first port, a number means that port index, anything else is matched
// against port names.
func OpenPort(spec string) (drivers.In, error) {
	if spec == "" {
		in, err := midi.InPort(0)
		if err != nil {
			return nil, fmt.Errorf("no MIDI input ports available: %w", err)
		}
		return in, nil
	}
	if idx, err := strconv.Atoi(spec); err == nil {
		in, err := midi.InPort(idx)
		if err != nil {
			return nil, fmt.Errorf("no MIDI input port %d: %w", idx, err)
		}
		return in, nil
	}
	in, err := midi.FindInPort(spec)
	if err != nil {
		return nil, fmt.Errorf("no MIDI input port matching %q: %w", spec, err)
	}
	return in, nil
}

// PortNames lists the available input ports for --help style output.
func PortNames() []string {
	var names []string
	for _, in := range midi.GetInPorts() {
		names = append(names, in.String())
	}
	return names
}

// Listen feeds the tracker from a port until the returned stop function
// is called.
func Listen(in drivers.In, tracker *Tracker, log *zap.Logger) (func(), error) {
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel, controller, value uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			tracker.NoteOn(key)
		case msg.GetNoteEnd(&ch, &key):
			tracker.NoteOff(key)
		case msg.GetControlChange(&ch, &controller, &value):
			tracker.Control(controller, value)
			log.Debug("control change",
				zap.Uint8("controller", controller), zap.Uint8("value", value))
		default:
			// ignore
		}
	})
	if err != nil {
		return nil, fmt.Errorf("could not listen on %q: %w", in.String(), err)
	}
	return stop, nil
}
