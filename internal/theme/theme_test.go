package theme

import (
	"errors"
	"testing"
)

func TestParseModeTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Mode
		wantErr bool
	}{
		{name: "dark", in: "dark", want: Dark},
		{name: "light", in: "light", want: Light},
		{name: "mixed case", in: "Dark", want: Dark},
		{name: "padded", in: "  light  ", want: Light},
		{name: "empty", in: "", wantErr: true},
		{name: "unknown", in: "solarized", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Fatalf("ParseMode(%q) expected ErrUnknownMode, got %v", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []Mode{Dark, Light} {
		parsed, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q) unexpected error: %v", m.String(), err)
		}
		if parsed != m {
			t.Fatalf("ParseMode(%q) = %v, want %v", m.String(), parsed, m)
		}
	}
}

func TestToggledIsAnInvolution(t *testing.T) {
	t.Parallel()

	for _, m := range []Mode{Dark, Light} {
		if m.Toggled() == m {
			t.Fatalf("Toggled() must change the mode, got %v twice", m)
		}
		if m.Toggled().Toggled() != m {
			t.Fatalf("double toggle of %v should restore it, got %v", m, m.Toggled().Toggled())
		}
	}
}

func TestLookupStandardButton(t *testing.T) {
	t.Parallel()

	want := Appearance{
		Foreground: ColorWhite,
		Background: ColorAccent,
		Border:     ColorAccent,
		Rounded:    true,
		Shadow:     true,
	}

	for _, m := range []Mode{Dark, Light} {
		got, err := Lookup(ButtonStandard, m)
		if err != nil {
			t.Fatalf("Lookup(ButtonStandard, %v) unexpected error: %v", m, err)
		}
		if got != want {
			t.Fatalf("Lookup(ButtonStandard, %v) = %+v, want %+v", m, got, want)
		}
	}
}

func TestLookupThemeButton(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode Mode
		want Appearance
	}{
		{mode: Dark, want: Appearance{Foreground: ColorWhite}},
		{mode: Light, want: Appearance{Foreground: ColorBlack}},
	}

	for _, tt := range tests {
		got, err := Lookup(ButtonTheme, tt.mode)
		if err != nil {
			t.Fatalf("Lookup(ButtonTheme, %v) unexpected error: %v", tt.mode, err)
		}
		if got != tt.want {
			t.Fatalf("Lookup(ButtonTheme, %v) = %+v, want %+v", tt.mode, got, tt.want)
		}
		if got.Background != "" || got.Border != "" {
			t.Fatalf("theme button must stay flat, got %+v", got)
		}
		if got.Shadow || got.Rounded {
			t.Fatalf("theme button carries no shadow or rounding, got %+v", got)
		}
	}
}

func TestLookupContainerModeInvariant(t *testing.T) {
	t.Parallel()

	dark, err := Lookup(Container, Dark)
	if err != nil {
		t.Fatalf("Lookup(Container, Dark) unexpected error: %v", err)
	}
	light, err := Lookup(Container, Light)
	if err != nil {
		t.Fatalf("Lookup(Container, Light) unexpected error: %v", err)
	}

	if dark != light {
		t.Fatalf("container appearance must not depend on the mode:\n dark=%+v\nlight=%+v", dark, light)
	}
	if dark.Background != "" {
		t.Fatalf("container has no fill, got %q", dark.Background)
	}
	if !dark.Rounded || !dark.Shadow {
		t.Fatalf("container keeps rounded border and shadow, got %+v", dark)
	}
}

func TestLookupUnknowns(t *testing.T) {
	t.Parallel()

	if _, err := Lookup(Variant("mystery"), Dark); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if _, err := Lookup(Container, Mode(42)); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestLookupImmutability(t *testing.T) {
	t.Parallel()

	first := MustLookup(ButtonStandard, Dark)
	first.Background = "#000000"

	second := MustLookup(ButtonStandard, Dark)
	if second.Background != ColorAccent {
		t.Fatalf("expected immutable appearance table, got %q", second.Background)
	}
}

func TestVariantCoverage(t *testing.T) {
	t.Parallel()

	if len(appearances) != len(variants) {
		t.Fatalf("variant coverage mismatch: appearances=%d variants=%d", len(appearances), len(variants))
	}

	for _, v := range variants {
		if _, ok := appearances[v]; !ok {
			t.Fatalf("missing appearance for variant %q", v)
		}
	}
}
