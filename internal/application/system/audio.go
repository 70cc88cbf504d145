package system

// Cue names a short sound effect
type Cue string

const (
	CueInteract Cue = "interact"
	CueStart    Cue = "start"
	CueHit      Cue = "hit"
	CueBounce   Cue = "bounce"
	CueEnd      Cue = "end"
)

// AllCues lists every cue the game plays
var AllCues = []Cue{CueInteract, CueStart, CueHit, CueBounce, CueEnd}

// SoundPlayer plays cues without blocking. Playback failures are not reported.
type SoundPlayer interface {
	Play(cue Cue, volume float64)
}

// NopSoundPlayer discards every cue
type NopSoundPlayer struct{}

// Play does nothing
func (NopSoundPlayer) Play(Cue, float64) {}
