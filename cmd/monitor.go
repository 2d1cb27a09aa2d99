package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/ganten7/ivory/config"
	"github.com/ganten7/ivory/detect"
	"github.com/ganten7/ivory/midiin"
)

var (
	monitorPort  string
	monitorList  bool
	monitorFlats bool
)

func init() {
	monitorCmd.Flags().StringVar(&monitorPort, "port", "", "input port index or name substring")
	monitorCmd.Flags().BoolVar(&monitorList, "list", false, "list input ports and exit")
	monitorCmd.Flags().BoolVar(&monitorFlats, "flats", true, "spell notes with flats")
	rootCmd.AddCommand(monitorCmd)
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch a MIDI input and print chord names live",
	Long:  `Watches a MIDI input port and prints the name of whatever is being held.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if monitorList {
			for i, name := range midiin.PortNames() {
				fmt.Printf("%v: %v\n", i, name)
			}
			return nil
		}
		return monitor()
	},
}

func monitor() error {
	defer midi.CloseDriver()

	settings, err := config.Load()
	if err != nil {
		return err
	}
	if cmdFlagChanged(monitorCmd, "flats") {
		settings.PreferFlats = monitorFlats
		if err := config.Save(settings); err != nil {
			return err
		}
	}

	log := newLogger()
	d := detect.New(detect.WithLogger(log))
	d.SetNotePreference(settings.PreferFlats)

	in, err := midiin.OpenPort(monitorPort)
	if err != nil {
		return err
	}

	tracker := midiin.NewTracker()
	stop, err := midiin.Listen(in, tracker, log)
	if err != nil {
		return err
	}
	defer stop()

	fmt.Printf("listening on %v\n", in.String())

	// Redraws are debounced so a rolled chord prints once, not once per
	// finger.
	debounced := debounce.New(30 * time.Millisecond)
	lastLabel := ""

	ticker := time.NewTicker(time.Duration(settings.PollIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			label, ok := d.Detect(tracker.Snapshot())
			if !ok {
				label = ""
			}
			if label == lastLabel {
				continue
			}
			lastLabel = label
			show := label
			debounced(func() {
				if show != "" {
					fmt.Println(show)
				}
			})
		case <-sigs:
			return nil
		}
	}
}

func cmdFlagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}
