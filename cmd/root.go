package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "ivory",
	Short: "Chord and scale detection for MIDI input",
	Long:  `Classifies sets of held MIDI notes into chord, interval and scale names.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "log every scoring decision")
}

// newLogger builds the command-level logger; --debug turns on the
// per-decision engine trace.
func newLogger() *zap.Logger {
	if !debugFlag {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
