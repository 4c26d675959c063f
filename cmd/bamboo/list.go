package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bamboo-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List playable game ids",
	Long:  `Shows the game ids registered on this build, one per profile family.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "ID", "Profile", "Title")
	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "--", "-------", "-----")
	for _, g := range games {
		profile := g.Profile
		if profile == "" {
			profile = "(default)"
		}
		fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, g.ID, profile, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'bamboo play' to play.")
}
