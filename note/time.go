package note

import "github.com/ajensen/midi2json/constants"

// tickRate is ticks-per-second per BPM: 96 PPQ over 60 seconds, i.e. 1.6.
// TODO: derive the pulse rate from the file's smf.MetricTicks header instead
// of assuming 96. That changes output for non-96 files, so it has to be
// plumbed through deliberately rather than fixed here.
const tickRate = float64(constants.TicksPerQuarterNote) / 60.0

// Seconds converts an absolute tick count to elapsed seconds at the given
// tempo. bpm must be strictly positive; callers validate it first.
func Seconds(ticks uint64, bpm float64) float64 {
	ticksPerSec := bpm * tickRate
	return float64(ticks) / ticksPerSec
}
