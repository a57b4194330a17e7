package model

// Note is one completed note interval from the track, with both boundaries
// already converted to seconds. The json field names are part of the output
// contract and must not change.
type Note struct {
	TimeStart  float64 `json:"time_start"`
	TimeEnd    float64 `json:"time_end"`
	PitchValue uint32  `json:"pitch_value"`
}

// NoteInfo is the top-level output document.
type NoteInfo struct {
	Notes []Note `json:"notes"`
}
