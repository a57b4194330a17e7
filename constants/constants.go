package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "output"
}

// OutputFilename is the file written under the out dir.
const OutputFilename = "notes.json"

// TicksPerQuarterNote is assumed, not read from the file header.
// Files with a different resolution come out scaled.
const TicksPerQuarterNote = 96
