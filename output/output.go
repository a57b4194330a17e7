package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ajensen/midi2json/constants"
	"github.com/ajensen/midi2json/model"
)

// WriteNotes encodes the output document to w. An empty note list encodes
// as "notes": [], never null.
func WriteNotes(w io.Writer, notes []model.Note) error {
	info := model.NoteInfo{Notes: make([]model.Note, 0, len(notes))}
	info.Notes = append(info.Notes, notes...)

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode notes: %w", err)
	}
	data = append(data, '\n')

	_, err = w.Write(data)
	return err
}

// SaveNotes writes the document under the out dir and returns its path.
// It goes through a uuid-named temp file so a failed run never leaves a
// partial notes.json behind.
func SaveNotes(notes []model.Note) (string, error) {
	dir := constants.GetOutDir()
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", fmt.Errorf("could not create out dir: %w", err)
	}

	tmp := filepath.Join(dir, uuid.New().String()+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("could not create output file: %w", err)
	}

	if err := WriteNotes(f, notes); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}

	final := filepath.Join(dir, constants.OutputFilename)
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("could not move output into place: %w", err)
	}
	return final, nil
}
