package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for teaform",
	Long:  `Display detailed help for all teaform commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
████████╗███████╗ █████╗ ███████╗ ██████╗ ██████╗ ███╗   ███╗
╚══██╔══╝██╔════╝██╔══██╗██╔════╝██╔═══██╗██╔══██╗████╗ ████║
   ██║   █████╗  ███████║█████╗  ██║   ██║██████╔╝██╔████╔██║
   ██║   ██╔══╝  ██╔══██║██╔══╝  ██║   ██║██╔══██╗██║╚██╔╝██║
   ██║   ███████╗██║  ██║██║     ╚██████╔╝██║  ██║██║ ╚═╝ ██║
   ╚═╝   ╚══════╝╚═╝  ╚═╝╚═╝      ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝

teaform - Login form TUI with light and dark themes

COMMANDS:

  teaform                 Open the login form in the current terminal
    --theme               Starting theme: dark|light
    -r, --remember        Remember the theme between runs
    -c, --config          Config file path

    Keys:
      tab/↓         Focus next field or button
      shift+tab/↑   Focus previous
      enter         Press the focused button
      ctrl+t        Toggle light/dark theme
      esc           Quit

    Pages:
      Login         Email and password fields plus a Login button
      Page two      Reached from the footer; same footer leads back

  serve                   Serve the same interface over SSH
    --host                Address to listen on
    -p, --port            Port to listen on
    --host-key            SSH host key path (generated when missing)
    --idle-timeout        Disconnect idle sessions after this long

    Example:
      teaform serve --port 23234
      ssh -p 23234 localhost

  version                 Show version information
  help                    Show this help

Configuration lives in ~/.teaform/config.yaml. TEAFORM_* environment
variables override the file, and flags override both.

`)
}
