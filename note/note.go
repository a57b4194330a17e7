package note

import (
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ajensen/midi2json/model"
)

// ErrUnmatchedNoteOff reports a note-off event arriving while no note is
// pending. The whole conversion fails; there is no partial result.
var ErrUnmatchedNoteOff = errors.New("unmatched note-off: no note is pending")

type partialNote struct {
	pitch     uint8
	timeStart float64
}

// GetNotes folds a track's events into completed notes, stamping each
// boundary in seconds at the given tempo. The pairing is strictly
// monophonic: a single pending slot holds the last note-on, and a second
// note-on before a note-off silently replaces the first. A note still
// pending at end of track is dropped.
func GetNotes(track smf.Track, bpm float64) ([]model.Note, error) {
	if bpm <= 0 {
		return nil, fmt.Errorf("bpm must be positive, got %v", bpm)
	}

	notes := make([]model.Note, 0)
	var absTicks uint64
	var pending *partialNote

	for _, event := range track {
		// every event advances the clock, whatever its kind
		absTicks += uint64(event.Delta)

		var channel uint8
		var key uint8
		var velocity uint8
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			pending = &partialNote{
				pitch:     key,
				timeStart: Seconds(absTicks, bpm),
			}
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			if pending == nil {
				return nil, fmt.Errorf("%w (at tick %d)", ErrUnmatchedNoteOff, absTicks)
			}
			notes = append(notes, model.Note{
				TimeStart:  pending.timeStart,
				TimeEnd:    Seconds(absTicks, bpm),
				PitchValue: uint32(pending.pitch),
			})
			pending = nil
		}
	}

	return notes, nil
}
