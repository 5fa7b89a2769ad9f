package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jenkinpan/teaform/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the login form over SSH",
	Long: `Serve the login form over SSH so it can be opened from any machine with
an SSH client. Every connection gets its own session, rendered for that
client's terminal and starting from the configured theme.

Example:
  teaform serve --port 23234
  ssh -p 23234 localhost`,
	Run: func(cmd *cobra.Command, args []string) {
		runServe(cmd)
	},
}

// runServe blocks until the server fails or the process is interrupted.
func runServe(cmd *cobra.Command) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Flags beat both the config file and the environment.
	if cmd.Flags().Changed("host") {
		cfg.SSH.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.SSH.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("host-key") {
		cfg.SSH.HostKeyPath, _ = cmd.Flags().GetString("host-key")
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.SSH.IdleTimeout, _ = cmd.Flags().GetDuration("idle-timeout")
	}
	if cfg.SSH.Port < 1 || cfg.SSH.Port > 65535 {
		fmt.Printf("Error: invalid port %d\n", cfg.SSH.Port)
		return
	}

	rt, err := server.New(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rt.Run(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func init() {
	serveCmd.Flags().StringP("host", "", "", "Address to listen on")
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	serveCmd.Flags().StringP("host-key", "", "", "SSH host key path (generated when missing)")
	serveCmd.Flags().DurationP("idle-timeout", "", 0, "Disconnect idle sessions after this long")
}
