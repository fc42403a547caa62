package constants

import "time"

// Signal Sound Timing
const (
	// SignalRedNoteDuration is each of the two falling notes played when a light turns red
	SignalRedNoteDuration = 90 * time.Millisecond
	SignalRedAttack       = 5 * time.Millisecond
	SignalRedRelease      = 40 * time.Millisecond

	// SignalGreenDuration is the single soft chime played when a light clears
	SignalGreenDuration = 160 * time.Millisecond
	SignalGreenAttack   = 5 * time.Millisecond
	SignalGreenRelease  = 120 * time.Millisecond
)

// Signal Sound Pitch (Hz)
const (
	SignalRedHigh = 659.25 // E5
	SignalRedLow  = 440.0  // A4
	SignalGreen   = 987.77 // B5
)
