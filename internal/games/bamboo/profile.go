package bamboo

import (
	"fmt"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
)

// Profile is one game variant resolved from configuration.
type Profile struct {
	Name    string
	Blocks  int          // Blocks per row
	Stacked bool         // Second row of blocks
	Sounds  bool         // Rules and state hooks emit PlaySound
	Mask    CategoryMask // Categories the ball reports contacts with
	Ball    config.BallConfig
}

// TotalBlocks returns the block count of a fresh world.
func (p Profile) TotalBlocks() int {
	if p.Stacked {
		return p.Blocks * 2
	}
	return p.Blocks
}

// ResolveProfile looks up the named profile in cfg. An empty name selects
// the configured default.
func ResolveProfile(cfg config.BambooConfig, name string) (Profile, error) {
	if name == "" {
		name = cfg.DefaultProfile
	}
	pc, err := cfg.Profile(name)
	if err != nil {
		return Profile{}, fmt.Errorf("bamboo: %w", err)
	}
	mask, err := ParseMask(pc.ContactMask)
	if err != nil {
		return Profile{}, fmt.Errorf("bamboo: profile %q: %w", name, err)
	}
	return Profile{
		Name:    name,
		Blocks:  pc.Count,
		Stacked: pc.Stacked,
		Sounds:  pc.Sounds,
		Mask:    mask,
		Ball:    cfg.Ball,
	}, nil
}
