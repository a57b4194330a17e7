package cmd

import (
	"fmt"

	"github.com/ajensen/midi2json/midi"
	"github.com/ajensen/midi2json/note"
	"github.com/ajensen/midi2json/output"
)

func convert(inputPath string, bpm float64) error {
	if bpm <= 0 {
		return fmt.Errorf("bpm must be a positive number, got %v", bpm)
	}

	fmt.Println("Loading MIDI file...")
	parsed, err := midi.ReadMidiFile(inputPath)
	if err != nil {
		return err
	}
	track, err := midi.FirstTrack(parsed)
	if err != nil {
		return err
	}

	fmt.Println("Handling contents...")
	notes, err := note.GetNotes(track, bpm)
	if err != nil {
		return err
	}

	fmt.Println("Notes:")
	for _, n := range notes {
		fmt.Printf("  %v to %v: pitch %v\n", n.TimeStart, n.TimeEnd, n.PitchValue)
	}

	fmt.Println("Saving output JSON file...")
	path, err := output.SaveNotes(notes)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %v\n", path)

	fmt.Println("Done.")
	return nil
}
