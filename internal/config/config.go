// Package config provides YAML-based game configuration loading and
// difficulty presets for Bamboo Breakout.
package config

import (
	"errors"
	"fmt"
	"sort"
)

// Profile names shipped with the embedded defaults.
const (
	ProfileBasic    = "basic"
	ProfileEnhanced = "enhanced"
)

// BambooConfig contains all configuration for Bamboo Breakout.
// Distances are arena points, speeds are points per second.
type BambooConfig struct {
	Arena          ArenaConfig              `yaml:"arena"`
	Paddle         PaddleConfig             `yaml:"paddle"`
	Ball           BallConfig               `yaml:"ball"`
	Blocks         BlocksConfig             `yaml:"blocks"`
	DefaultProfile string                   `yaml:"default_profile"`
	Profiles       map[string]ProfileConfig `yaml:"profiles"`
}

// ArenaConfig defines the play-field size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry. Y is the paddle center height.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
}

// BallConfig defines ball geometry and the Playing-state speed control.
type BallConfig struct {
	Radius           float64 `yaml:"radius"`
	LaunchImpulse    float64 `yaml:"launch_impulse"`    // Per-axis impulse applied when play starts
	NudgeImpulse     float64 `yaml:"nudge_impulse"`     // Impulse applied when an axis stalls
	MinAxisSpeed     float64 `yaml:"min_axis_speed"`    // Axis speed at or below which the ball is nudged
	MaxSpeed         float64 `yaml:"max_speed"`         // Speed above which damping kicks in
	OverspeedDamping float64 `yaml:"overspeed_damping"` // Linear damping while above MaxSpeed
}

// BlocksConfig defines block geometry and row placement as fractions of the
// arena height.
type BlocksConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	RowHeight float64 `yaml:"row_height"` // First row center, e.g. 0.8
	RowStep   float64 `yaml:"row_step"`   // Offset of the stacked row, e.g. 0.1
}

// ProfileConfig selects one of the game variants.
type ProfileConfig struct {
	Description string   `yaml:"description"`
	Count       int      `yaml:"count"`        // Blocks per row
	Stacked     bool     `yaml:"stacked"`      // Adds a second row
	Sounds      bool     `yaml:"sounds"`       // Whether rules emit sound commands
	ContactMask []string `yaml:"contact_mask"` // Categories the ball reports contacts with
}

// TotalBlocks returns the number of blocks a fresh session starts with.
func (p ProfileConfig) TotalBlocks() int {
	if p.Stacked {
		return p.Count * 2
	}
	return p.Count
}

// Profile returns the named profile. An empty name selects DefaultProfile.
func (c BambooConfig) Profile(name string) (ProfileConfig, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	p, ok := c.Profiles[name]
	if !ok {
		return ProfileConfig{}, fmt.Errorf("config: unknown profile %q", name)
	}
	return p, nil
}

// ProfileNames returns the configured profile names, sorted.
func (c BambooConfig) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// insideArena reports whether a box of height h centered at y lies strictly
// between the arena floor and ceiling.
func (c BambooConfig) insideArena(y, h float64) bool {
	return y-h/2 > 0 && y+h/2 < c.Arena.Height
}

// Validate reports configuration values the game cannot run with.
func (c BambooConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, errors.New("arena size must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, errors.New("paddle size must be positive"))
	}
	if c.Paddle.Width > c.Arena.Width {
		errs = append(errs, errors.New("paddle is wider than the arena"))
	}
	if !c.insideArena(c.Paddle.Y, c.Paddle.Height) {
		errs = append(errs, fmt.Errorf("paddle at y=%g does not fit the arena height", c.Paddle.Y))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball radius must be positive"))
	}
	if c.Blocks.Width <= 0 || c.Blocks.Height <= 0 {
		errs = append(errs, errors.New("block size must be positive"))
	}
	if len(c.Profiles) == 0 {
		errs = append(errs, errors.New("at least one profile is required"))
	}
	if _, ok := c.Profiles[c.DefaultProfile]; !ok && len(c.Profiles) > 0 {
		errs = append(errs, fmt.Errorf("default profile %q is not defined", c.DefaultProfile))
	}
	if !c.insideArena(c.Blocks.RowHeight*c.Arena.Height, c.Blocks.Height) {
		errs = append(errs, fmt.Errorf("block row at %g puts blocks outside the arena", c.Blocks.RowHeight))
	}
	for _, name := range c.ProfileNames() {
		p := c.Profiles[name]
		if p.Stacked && !c.insideArena((c.Blocks.RowHeight+c.Blocks.RowStep)*c.Arena.Height, c.Blocks.Height) {
			errs = append(errs, fmt.Errorf("profile %q: stacked row at %g puts blocks outside the arena",
				name, c.Blocks.RowHeight+c.Blocks.RowStep))
		}
		if p.Count < 0 {
			errs = append(errs, fmt.Errorf("profile %q: negative block count", name))
		}
		if float64(p.Count)*c.Blocks.Width > c.Arena.Width {
			errs = append(errs, fmt.Errorf("profile %q: %d blocks do not fit the arena", name, p.Count))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
