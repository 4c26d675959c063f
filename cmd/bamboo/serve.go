package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/games/bamboo"
	"github.com/vovakirdan/bamboo-breakout/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Bamboo Breakout SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent session with a profile menu.
Nothing is shared between connections.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bamboo/host_key

Examples:
  bamboo serve                           # Listen on :23234 with auto-generated key
  bamboo serve --ssh :2222               # Listen on port 2222
  bamboo serve --host-key ./my_host_key  # Use specific host key
  bamboo serve --log-level info          # Log session start/end

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("bamboo-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := config.LoadBamboo(flagServeConfig)
	if err != nil {
		return err
	}
	// Sessions load the same file. No audio player is installed: sounds
	// would play on the server, so clients only see the HUD caption.
	bamboo.SetConfigPath(flagServeConfig)

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.TickRate = flagFPS
	srvCfg.Profiles = tui.ProfileItems(cfg)
	srvCfg.NewGame = newGame
	srvCfg.Logger = logger

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting Bamboo Breakout SSH server on %s\n", srvCfg.Address)
	fmt.Fprintf(out, "Connect with: ssh localhost -p %s\n", portOf(srvCfg.Address))
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
