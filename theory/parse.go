package theory

import (
	"fmt"
	"strconv"
	"strings"
)

var letterPCs = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParseNote turns a scientific-pitch name like "C4", "Eb3" or "F#5" into
// a MIDI note number. Middle C is C4 = 60.
func ParseNote(s string) (uint8, error) {
	orig := s
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid note %q", orig)
	}
	pc, ok := letterPCs[s[0]]
	if !ok {
		return 0, fmt.Errorf("invalid note letter in %q", orig)
	}
	rest := s[1:]
	switch rest[0] {
	case '#':
		pc = Mod12(pc + 1)
		rest = rest[1:]
	case 'b':
		pc = Mod12(pc - 1)
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in %q", orig)
	}
	note := (octave+1)*12 + pc
	if note < 0 || note > 127 {
		return 0, fmt.Errorf("note %q out of MIDI range", orig)
	}
	return uint8(note), nil
}
