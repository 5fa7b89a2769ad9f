package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jenkinpan/teaform/internal/theme"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m := NewAppModel(Options{})
	return drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func drive(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(AppModel)
		if !ok {
			t.Fatalf("Update returned %T, want AppModel", next)
		}
	}
	return m
}

func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	return drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func tab(t *testing.T, m AppModel, n int) AppModel {
	t.Helper()
	for i := 0; i < n; i++ {
		m = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

func TestTypingFillsFieldsWholesale(t *testing.T) {
	m := newTestModel(t)

	m = typeText(t, m, "a@b.com")
	if got := m.State().Fields; got != (FormFields{Email: "a@b.com"}) {
		t.Fatalf("after typing the email, fields = %+v", got)
	}

	m = tab(t, m, 1)
	m = typeText(t, m, "pw")
	want := FormFields{Email: "a@b.com", Password: "pw"}
	if got := m.State().Fields; got != want {
		t.Fatalf("typing the password must keep the email: got %+v, want %+v", got, want)
	}
}

func TestFocusCycleWraps(t *testing.T) {
	m := newTestModel(t)

	if got := m.currentTarget(); got != focusEmail {
		t.Fatalf("login page starts focused on the email input, got %v", got)
	}

	m = tab(t, m, len(m.focusOrder()))
	if got := m.currentTarget(); got != focusEmail {
		t.Fatalf("a full tab cycle must wrap back to the email input, got %v", got)
	}

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.currentTarget(); got != focusNav {
		t.Fatalf("shift+tab from the first control wraps to the last, got %v", got)
	}
}

func TestEnterOnSubmitLeavesStateAlone(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "a@b.com")
	before := m.State()

	m = tab(t, m, 2)
	if got := m.currentTarget(); got != focusSubmit {
		t.Fatalf("expected focus on the submit button, got %v", got)
	}

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.State(); got != before {
		t.Fatalf("submitting may not move state: %+v -> %+v", before, got)
	}
}

func TestEnterOnThemeButtonToggles(t *testing.T) {
	m := newTestModel(t)

	m = tab(t, m, 3)
	if got := m.currentTarget(); got != focusTheme {
		t.Fatalf("expected focus on the theme button, got %v", got)
	}

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.ThemeMode(); got != theme.Light {
		t.Fatalf("toggling from dark must yield light, got %v", got)
	}

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.ThemeMode(); got != theme.Dark {
		t.Fatalf("toggling twice must restore dark, got %v", got)
	}
}

func TestEnterOnNavButtonSwitchesPages(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "a@b.com")

	m = tab(t, m, 4)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.State().Page; got != PageRegister {
		t.Fatalf("nav button on the login page leads to register, got %v", got)
	}
	if got := m.currentTarget(); got != focusTheme {
		t.Fatalf("focus resets to the first control after a page switch, got %v", got)
	}

	// Second control on the register page is the way back.
	m = tab(t, m, 1)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.State().Page; got != PageLogin {
		t.Fatalf("nav button on the register page leads back to login, got %v", got)
	}
	if got := m.State().Fields.Email; got != "a@b.com" {
		t.Fatalf("page switches must keep the form, got email %q", got)
	}
}

func TestCtrlTTogglesFromAnywhere(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "a@b")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if got := m.ThemeMode(); got != theme.Light {
		t.Fatalf("ctrl+t must toggle the scheme, got %v", got)
	}
	if got := m.State().Fields.Email; got != "a@b" {
		t.Fatalf("toggling must keep the form, got email %q", got)
	}
}

func TestInjectedEventsMoveTheModel(t *testing.T) {
	m := newTestModel(t)

	m = drive(t, m, Navigate{Route: RouteRegister})
	if got := m.State().Page; got != PageRegister {
		t.Fatalf("injected Navigate must switch pages, got %v", got)
	}

	m = drive(t, m, Navigate{Route: "bogus"})
	if got := m.State().Page; got != PageRegister {
		t.Fatalf("unknown routes stay put, got %v", got)
	}

	m = drive(t, m, FieldsChanged{Email: "host@b.com", Password: "secret"})
	if got := m.State().Fields; got != (FormFields{Email: "host@b.com", Password: "secret"}) {
		t.Fatalf("injected FieldsChanged must replace the form, got %+v", got)
	}
	if got := m.inputs[focusEmail].Value(); got != "host@b.com" {
		t.Fatalf("inputs must mirror injected values, got %q", got)
	}

	m = drive(t, m, ToggleTheme{})
	if got := m.ThemeMode(); got != theme.Light {
		t.Fatalf("injected ToggleTheme must flip the scheme, got %v", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel(t)

		next, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v must quit the program", key)
		}

		m = next.(AppModel)
		if got := m.View(); got != "" {
			t.Fatalf("a quitting model renders nothing, got %d bytes", len(got))
		}
	}
}
