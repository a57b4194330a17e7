package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajensen/midi2json/midi"
	"github.com/ajensen/midi2json/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspects a MIDI file",
	Long:  `Prints the time format, track count and a note-on histogram for the first track.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("need 1 arg...")
		}
		return inspect(args[0])
	},
}

func inspect(path string) error {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("time format: %v\n", parsed.TimeFormat)
	fmt.Printf("tracks: %v\n", len(parsed.Tracks))

	track, err := midi.FirstTrack(parsed)
	if err != nil {
		return err
	}

	noteOns := make(map[uint8]int)
	for _, event := range track {
		var channel uint8
		var key uint8
		var velocity uint8
		if event.Message.GetNoteOn(&channel, &key, &velocity) {
			noteOns[key]++
		}
	}

	for _, key := range util.GetKeysSorted(noteOns) {
		fmt.Printf("pitch %3d: %v note-ons\n", key, noteOns[key])
	}
	return nil
}
