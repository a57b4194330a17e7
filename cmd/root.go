package cmd

import (
	"github.com/spf13/cobra"
)

var (
	inputPath string
	bpm       float64
)

var rootCmd = &cobra.Command{
	Use:   "midi2json",
	Short: "Converts MIDI files into note information in JSON",
	Long: `Reads the first track of a MIDI file, pairs note-on/note-off events
into notes, and writes them to a JSON file with times in seconds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(inputPath, bpm)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "the input MIDI file to read")
	rootCmd.Flags().Float64VarP(&bpm, "bpm", "b", 0, "the tempo, in beats per minute")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("bpm")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
