package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ajensen/midi2json/model"
)

func TestWriteNotesGolden(t *testing.T) {
	notes := []model.Note{
		{TimeStart: 0, TimeEnd: 0.25, PitchValue: 60},
		{TimeStart: 0.5, TimeEnd: 0.75, PitchValue: 64},
	}

	var buf bytes.Buffer
	err := WriteNotes(&buf, notes)
	assert.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "notes", buf.Bytes())
}

func TestWriteNotesEmptyListIsAnArray(t *testing.T) {
	var buf bytes.Buffer
	err := WriteNotes(&buf, nil)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains(buf.String(), `"notes": []`)
	assert.NotContains(buf.String(), "null")
}

func TestSaveNotesWritesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OUT_PATH", dir)

	path, err := SaveNotes([]model.Note{{TimeStart: 0, TimeEnd: 1, PitchValue: 72}})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(filepath.Join(dir, "notes.json"), path)

	data, err := os.ReadFile(path)
	assert.NoError(err)

	var info model.NoteInfo
	assert.NoError(json.Unmarshal(data, &info))
	assert.Len(info.Notes, 1)
	assert.Equal(uint32(72), info.Notes[0].PitchValue)

	// no temp file left behind
	entries, err := os.ReadDir(dir)
	assert.NoError(err)
	assert.Len(entries, 1)
}
