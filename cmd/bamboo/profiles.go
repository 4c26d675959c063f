package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/platform/tui"
)

var flagProfilesConfig string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List configured profiles",
	Long: `Shows the profiles of the active configuration. The default profile
is listed first and marked with '*'.

Examples:
  bamboo profiles
  bamboo profiles --config ./my-bamboo.yaml`,
	RunE: runProfiles,
}

func init() {
	profilesCmd.Flags().StringVar(&flagProfilesConfig, "config", "", "Path to custom config YAML")
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadBamboo(flagProfilesConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range tui.ProfileItems(cfg) {
		mark := " "
		if p.Name == cfg.DefaultProfile {
			mark = "*"
		}
		sounds := "silent"
		if p.Sounds {
			sounds = "sounds"
		}
		fmt.Fprintf(out, "%s %-10s %2d blocks  %-6s  %s\n", mark, p.Name, p.Blocks, sounds, p.Description)
	}
	return nil
}
