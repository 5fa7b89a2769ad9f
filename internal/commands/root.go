package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jenkinpan/teaform/internal/config"
	"github.com/jenkinpan/teaform/internal/db"
	"github.com/jenkinpan/teaform/internal/theme"
	"github.com/jenkinpan/teaform/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "teaform",
	Short: "A themeable login form for the terminal",
	Long: `teaform renders a two-page login flow in the terminal: a login page with
email and password fields, a second page reached from its footer, and a
light/dark theme that can be flipped at any time and remembered between
runs. Run it bare for the local terminal, or use 'teaform serve' to open
the same interface to SSH clients.`,
	Run: func(cmd *cobra.Command, args []string) {
		runUI(cmd)
	},
}

// loadConfig reads the configuration file and layers root-level flag
// overrides on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("theme") {
		raw, _ := cmd.Flags().GetString("theme")
		mode, err := theme.ParseMode(raw)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Theme = mode
	}
	if cmd.Flags().Changed("remember") {
		cfg.RememberTheme, _ = cmd.Flags().GetBool("remember")
	}
	return cfg, nil
}

// runUI opens the login form in the current terminal and, when theme
// memory is on, persists whichever theme the user ended up with.
func runUI(cmd *cobra.Command) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	remember := cfg.RememberTheme
	if remember {
		if err := db.Initialize(cfg.DatabasePath); err != nil {
			// The form works fine without persistence, so don't block on it.
			fmt.Printf("Warning: theme memory unavailable: %v\n", err)
			remember = false
		} else {
			defer db.Close()
			if mode, ok, err := db.LoadThemeMode(); err != nil {
				fmt.Printf("Warning: could not read saved theme: %v\n", err)
			} else if ok {
				cfg.Theme = mode
			}
		}
	}

	final, err := tui.Run(tui.Options{Theme: cfg.Theme, Title: cfg.Title})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if remember {
		if err := db.SaveThemeMode(final.Theme); err != nil {
			fmt.Printf("Warning: could not save theme: %v\n", err)
		}
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default ~/.teaform/config.yaml)")
	rootCmd.PersistentFlags().StringP("theme", "", "", "Starting theme: dark or light")
	rootCmd.Flags().BoolP("remember", "r", false, "Remember the theme between runs")

	// Add subcommands here
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
