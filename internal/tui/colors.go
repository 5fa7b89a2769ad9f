package tui

import "github.com/jenkinpan/teaform/internal/theme"

// Color constants for the teaform TUI chrome. Surface colors for the
// buttons and the page frame live in internal/theme; these cover the
// text and effects around them.
const (
	// Base Colors
	ColorAppBackground = ""    // Use terminal default background
	ColorShadow        = "235" // Charcoal drop shadow

	// Text Colors
	ColorTextOnDark  = "#E6EAF2" // Body text while the dark scheme is active
	ColorTextOnLight = "#1A1D26" // Body text while the light scheme is active
	ColorPlaceholder = "#6D7383" // Input placeholders
	ColorHelpText    = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = theme.ColorAccent // Filled buttons, active borders
	ColorAccentBright = "#3BA7E0"         // Focused controls and cursor
)

// textColor picks the body text color for a scheme.
func textColor(m theme.Mode) string {
	if m == theme.Light {
		return ColorTextOnLight
	}
	return ColorTextOnDark
}
