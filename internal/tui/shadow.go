package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// dropShadow paints a soft shadow under a rendered block. Terminal
// cells cannot blur, so the shadow is a single half-height charcoal row
// hugging the block's bottom edge.
func dropShadow(r *lipgloss.Renderer, block string) string {
	w := lipgloss.Width(block)
	if w == 0 {
		return block
	}

	shadow := r.NewStyle().
		Foreground(lipgloss.Color(ColorShadow)).
		Render(strings.Repeat("▀", w))

	return lipgloss.JoinVertical(lipgloss.Left, block, shadow)
}
