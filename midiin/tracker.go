// Package midiin owns the live-input side: which notes are currently
// sounding (including sustain-pedal hold), port listening, and pulling
// note snapshots out of standard MIDI files.
package midiin

import (
	"sort"
	"sync"

	"github.com/ganten7/ivory/model"
	"github.com/ganten7/ivory/util"
)

const sustainController = 64

// Tracker keeps the set of sounding notes. A note released while the
// sustain pedal is down keeps sounding until the pedal lifts. Safe for
// concurrent use; the MIDI callback writes while the poll loop reads.
type Tracker struct {
	mu        sync.Mutex
	active    map[uint8]bool
	toRelease map[uint8]bool
	pedalDown bool
}

func NewTracker() *Tracker {
	return &Tracker{
		active:    make(map[uint8]bool),
		toRelease: make(map[uint8]bool),
	}
}

func (t *Tracker) NoteOn(key uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active[key] = true
	delete(t.toRelease, key)
}

func (t *Tracker) NoteOff(key uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pedalDown {
		if t.active[key] {
			t.toRelease[key] = true
		}
		return
	}
	delete(t.active, key)
	delete(t.toRelease, key)
}

// Control feeds controller messages; everything except the sustain pedal
// is ignored.
func (t *Tracker) Control(controller, value uint8) {
	if controller != sustainController {
		return
	}
	down := value >= 64
	t.mu.Lock()
	defer t.mu.Unlock()
	wasDown := t.pedalDown
	t.pedalDown = down
	if wasDown && !down {
		for key := range t.toRelease {
			delete(t.active, key)
		}
		t.toRelease = make(map[uint8]bool)
	}
}

// Snapshot returns the sounding notes as a sorted copy.
func (t *Tracker) Snapshot() model.Notes {
	t.mu.Lock()
	keys := util.GetKeys(t.active)
	t.mu.Unlock()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Reset drops all state, pedal included.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = make(map[uint8]bool)
	t.toRelease = make(map[uint8]bool)
	t.pedalDown = false
}
