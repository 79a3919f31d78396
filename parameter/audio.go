package parameter

import "time"

// Audio cues
const (
	AudioSampleRate = 48000
	AudioBufferTime = 100 * time.Millisecond

	CueToggleFreq   = 880.0
	CueDispatchFreq = 523.25
	CueArriveFreq   = 659.25
	CueRejectFreq   = 146.83

	CueShort   = 60 * time.Millisecond
	CueMedium  = 140 * time.Millisecond
	CueAttack  = 5 * time.Millisecond
	CueRelease = 40 * time.Millisecond

	CueVolume = -1.5 // beep effects.Volume base-2 exponent
)
