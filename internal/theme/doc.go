// Package theme holds the application's color modes and the pure
// (variant, mode) -> appearance lookup the UI renders from.
//
// Integration example:
//
//	mode, err := theme.ParseMode(cfg.Theme)
//	if err != nil {
//		return err
//	}
//	button := theme.MustLookup(theme.ButtonStandard, mode)
//	frame := theme.MustLookup(theme.Container, mode)
//
// Appearances are plain value records; rendering them (lipgloss styles,
// shadows) is the caller's concern.
package theme
