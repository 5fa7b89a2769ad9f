package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects between the two application color schemes.
//
// The zero value is Dark, which is also the scheme every fresh session
// starts in.
type Mode int

const (
	Dark Mode = iota
	Light
)

// String returns the lowercase name used in config files and flags.
func (m Mode) String() string {
	switch m {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Toggled returns the opposite mode.
func (m Mode) Toggled() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// ErrUnknownMode is returned when a mode name or value is not known.
var ErrUnknownMode = errors.New("unknown theme mode")

// ErrUnknownVariant is returned when a requested variant is not known.
var ErrUnknownVariant = errors.New("unknown style variant")

// ParseMode maps a config/flag value to a Mode. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Dark, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Variant identifies a styled UI surface.
type Variant string

const (
	// ButtonStandard is the filled action button (for example "Login").
	ButtonStandard Variant = "button-standard"
	// ButtonTheme is the flat chrome button used for theme and page
	// switching.
	ButtonTheme Variant = "button-theme"
	// Container is the frame drawn around a full page.
	Container Variant = "container"
)

// Appearance describes presentational attributes for one surface under
// one mode. Empty color strings mean "inherit the terminal default".
type Appearance struct {
	Foreground string
	Background string
	Border     string
	Rounded    bool
	Shadow     bool
}

type modePair struct {
	Dark  Appearance
	Light Appearance
}

// Core palette. ColorAccent matches the filled-button blue across both
// modes.
const (
	ColorAccent = "#0F76B3"
	ColorWhite  = "#FFFFFF"
	ColorBlack  = "#000000"
	ColorFrame  = "#6C7086"
)

var appearances = map[Variant]modePair{
	ButtonStandard: {
		Dark:  Appearance{Foreground: ColorWhite, Background: ColorAccent, Border: ColorAccent, Rounded: true, Shadow: true},
		Light: Appearance{Foreground: ColorWhite, Background: ColorAccent, Border: ColorAccent, Rounded: true, Shadow: true},
	},
	ButtonTheme: {
		Dark:  Appearance{Foreground: ColorWhite},
		Light: Appearance{Foreground: ColorBlack},
	},
	Container: {
		Dark:  Appearance{Border: ColorFrame, Rounded: true, Shadow: true},
		Light: Appearance{Border: ColorFrame, Rounded: true, Shadow: true},
	},
}

var variants = [...]Variant{ButtonStandard, ButtonTheme, Container}

// Lookup resolves the appearance for a surface under a mode.
//
// The result is a value copy; callers may mutate it freely without
// affecting later lookups.
func Lookup(v Variant, m Mode) (Appearance, error) {
	pair, ok := appearances[v]
	if !ok {
		return Appearance{}, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	switch m {
	case Dark:
		return pair.Dark, nil
	case Light:
		return pair.Light, nil
	default:
		return Appearance{}, fmt.Errorf("%w: %s", ErrUnknownMode, m)
	}
}

// MustLookup is Lookup for the fixed variant constants above, where a
// miss is a programming error.
func MustLookup(v Variant, m Mode) Appearance {
	a, err := Lookup(v, m)
	if err != nil {
		panic(err)
	}
	return a
}
