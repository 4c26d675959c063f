//go:build !sound

package audio

import "github.com/charmbracelet/log"

// New returns a silent player; build with -tags sound for playback.
func New(logger *log.Logger) Player {
	if logger != nil {
		logger.Debug("audio not compiled in, sounds are silent")
	}
	return Silent{}
}
