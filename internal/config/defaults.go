package config

import (
	_ "embed"
)

//go:embed defaults/bamboo.yaml
var defaultBambooYAML []byte

// DefaultBambooConfig returns the hard-coded Bamboo Breakout configuration.
// It matches defaults/bamboo.yaml and is used if the embedded file fails to parse.
func DefaultBambooConfig() BambooConfig {
	return BambooConfig{
		Arena: ArenaConfig{
			Width:  600,
			Height: 800,
		},
		Paddle: PaddleConfig{
			Width:  110,
			Height: 20,
			Y:      60,
		},
		Ball: BallConfig{
			Radius:           12,
			LaunchImpulse:    250,
			NudgeImpulse:     60,
			MinAxisSpeed:     10,
			MaxSpeed:         400,
			OverspeedDamping: 0.4,
		},
		Blocks: BlocksConfig{
			Width:     70,
			Height:    28,
			RowHeight: 0.8,
			RowStep:   0.1,
		},
		DefaultProfile: ProfileEnhanced,
		Profiles: map[string]ProfileConfig{
			ProfileBasic: {
				Description: "8 blocks, silent, reports ball contacts with bottom and blocks only",
				Count:       8,
				Stacked:     false,
				Sounds:      false,
				ContactMask: []string{"bottom", "block"},
			},
			ProfileEnhanced: {
				Description: "16 stacked blocks with sound effects",
				Count:       8,
				Stacked:     true,
				Sounds:      true,
				ContactMask: []string{"bottom", "block", "border", "paddle"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBambooYAML
}
