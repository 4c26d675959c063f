// bamboo is Bamboo Breakout for the terminal: bounce the ball off the
// paddle and break every block.
//
// Usage:
//
//	bamboo list              - List playable game ids
//	bamboo profiles          - List configured profiles
//	bamboo play              - Pick a profile and play
//	bamboo serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible launches
//	--log-level <level>   - debug, info, warn, error (default: warn)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bamboo-breakout/internal/games/bamboo"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bamboo",
	Short: "Bamboo Breakout - break the bamboo in your terminal",
	Long: `Bamboo Breakout is a breakout-style arcade game for the terminal.
A ball bounces inside a bordered arena; drag the paddle with the mouse
(or the arrow keys) to keep it in play and break every bamboo block.

Available commands:
  list      - Show playable game ids
  profiles  - Show configured profiles
  play      - Play locally
  serve     - Start SSH server for remote play

Examples:
  bamboo play
  bamboo play --profile basic
  bamboo serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the logger from the global flags. fallback receives
// logs when no --log-file is given. The returned closer must be called
// on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("bamboo: --log-level: %w", err)
	}

	var out io.Writer = fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("bamboo: open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	bamboo.SetLogger(logger)
	return logger, closer, nil
}
