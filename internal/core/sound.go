package core

// Cue names a fire-and-forget sound effect raised by a game.
// The platform decides whether (and how) to play it.
type Cue string

const (
	CueSpawn     Cue = "spawn"
	CueMerge     Cue = "merge"
	CueTransform Cue = "transform"
	CueSplit     Cue = "split"
	CueSuccess   Cue = "success"
)

// Cues lists every known cue.
func Cues() []Cue {
	return []Cue{CueSpawn, CueMerge, CueTransform, CueSplit, CueSuccess}
}
