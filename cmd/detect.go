package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ganten7/ivory/config"
	"github.com/ganten7/ivory/detect"
	"github.com/ganten7/ivory/midiin"
	"github.com/ganten7/ivory/model"
	"github.com/ganten7/ivory/theory"
)

var (
	detectSharps bool
	detectFlats  bool
	detectFile   string
	detectAtTick uint64
)

func init() {
	detectCmd.Flags().BoolVar(&detectSharps, "sharps", false, "spell notes with sharps instead of flats")
	detectCmd.Flags().BoolVar(&detectFlats, "flats", false, "spell notes with flats regardless of settings")
	detectCmd.Flags().StringVar(&detectFile, "file", "", "read the notes from a MIDI file instead of argv")
	detectCmd.Flags().Uint64Var(&detectAtTick, "at-tick", 0, "absolute tick to snapshot when using --file")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect [notes...]",
	Short: "Name the chord formed by the given notes",
	Long: `Names the chord, interval or scale formed by the given notes.
Notes are MIDI numbers (60) or names (C4, Eb3, F#5). With --file the
notes are taken from a MIDI file at --at-tick instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := gatherNotes(args)
		if err != nil {
			return err
		}

		settings, err := config.Load()
		if err != nil {
			return err
		}
		preferFlats := settings.PreferFlats
		if detectFlats {
			preferFlats = true
		}
		if detectSharps {
			preferFlats = false
		}

		d := detect.New(detect.WithLogger(newLogger()))
		d.SetNotePreference(preferFlats)

		label, ok := d.Detect(notes)
		if !ok {
			fmt.Println("no match")
			return nil
		}
		fmt.Println(label)
		return nil
	},
}

func gatherNotes(args []string) (model.Notes, error) {
	if detectFile != "" {
		s, err := midiin.ReadMidiFile(detectFile)
		if err != nil {
			return nil, err
		}
		return midiin.SnapshotAtTick(s, detectAtTick), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no notes given")
	}
	var notes model.Notes
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			if n < 0 || n > 127 {
				return nil, fmt.Errorf("note %d out of MIDI range", n)
			}
			notes = append(notes, uint8(n))
			continue
		}
		note, err := theory.ParseNote(arg)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}
