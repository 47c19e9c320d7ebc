package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// DefaultAudioVolume is the master volume in [0,1]
	DefaultAudioVolume = 0.5

	// MinSoundGap between two landing ticks, landings closer than this are merged
	MinSoundGap = 30 * time.Millisecond
)

// Landing Tick
const (
	LandSoundDuration = 25 * time.Millisecond
	LandSoundAttack   = 2 * time.Millisecond
	LandSoundRelease  = 18 * time.Millisecond

	// LandSoundFreq is the pitch of a single landing, each extra ball in the same tick raises it a semitone
	LandSoundFreq = 440.0
)

// Batch Chime
const (
	ChimeNote1Duration = 120 * time.Millisecond
	ChimeNote2Duration = 360 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 60 * time.Millisecond
	ChimeNote2Release  = 300 * time.Millisecond
)
