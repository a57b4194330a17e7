package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Parse decodes raw SMF bytes.
func Parse(data []byte) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file... %w", err)
	}

	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		var blank smf.SMF
		return &blank, fmt.Errorf("error reading midi file... %w", err)
	}
	return Parse(dat)
}

// FirstTrack returns the track the converter operates on. Only the first
// track of a file is processed; any others are ignored.
func FirstTrack(s *smf.SMF) (smf.Track, error) {
	if len(s.Tracks) == 0 {
		return nil, errors.New("midi file has no tracks")
	}
	return s.Tracks[0], nil
}
