package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundSignalRed   SoundType = iota // A light's zone became occupied
	SoundSignalGreen                  // A light's zone cleared
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundSignalRed:
		return "signal-red"
	case SoundSignalGreen:
		return "signal-green"
	default:
		return "unknown"
	}
}
