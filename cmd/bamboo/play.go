package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bamboo-breakout/internal/audio"
	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/games/bamboo"
	"github.com/vovakirdan/bamboo-breakout/internal/platform/tui"
	"github.com/vovakirdan/bamboo-breakout/internal/registry"
)

var (
	flagProfile    string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bamboo Breakout",
	Long: `Start playing. Without --profile a menu lists the configured profiles
and you return to it after leaving a game.

Controls:
  Click/Space   - Tap: start the ball, or start over after the end screen
  Drag          - Move the paddle with the left mouse button
  Left/Right    - Nudge the paddle while playing
  Esc/B         - Back to the menu
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Wider paddle, slower ball
  normal - Configured values
  hard   - Narrower paddle, faster ball

Logs are discarded during play unless --log-file is given.

Examples:
  bamboo play
  bamboo play --profile basic
  bamboo play --difficulty hard
  bamboo play --config ./my-bamboo.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Profile to play: basic, enhanced (menu if empty)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	// Anything on stderr would tear the alternate screen.
	logger, closer, err := newLogger("bamboo", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := config.LoadBamboo(flagConfig)
	if err != nil {
		return err
	}
	if flagProfile != "" {
		if _, err := cfg.Profile(flagProfile); err != nil {
			return err
		}
	}

	bamboo.SetConfigPath(flagConfig)
	bamboo.SetDifficultyPreset(flagDifficulty)
	bamboo.SetAudio(audio.New(logger))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagProfile == "" {
		return tui.RunSession(tui.ProfileItems(cfg), newGame, rt)
	}
	return tui.Run(newGame(flagProfile), rt)
}

// newGame creates the game for a profile: the variant registered for it
// if there is one, else the default game playing that profile.
func newGame(profile string) registry.Game {
	if info, ok := registry.ByProfile(profile); ok {
		if g, err := registry.Create(info.ID); err == nil {
			return g
		}
	}
	return bamboo.NewWithProfile(profile)
}
