// Package audio plays the game's sound effects. Sounds are synthesized
// procedurally; playback through the system mixer is only compiled in with
// the "sound" build tag, otherwise New returns a silent player.
package audio

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Player plays a sound by name. Unknown names are ignored.
// Implementations never block the caller.
type Player interface {
	Play(id string)
}

// Silent is a Player that does nothing.
type Silent struct{}

// Play implements Player.
func (Silent) Play(string) {}
