package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jenkinpan/teaform/internal/theme"
)

// WindowTitle is the terminal window title claimed on startup.
const WindowTitle = "Go UI - Bubble Tea"

// Below these terminal dimensions the layout drops its breathing room:
// spacer rows, the inner login frame, and most padding.
const (
	compactWidth  = 72
	compactHeight = 28
)

// focusTarget identifies one focusable control.
type focusTarget int

const (
	focusEmail focusTarget = iota
	focusPassword
	focusSubmit
	focusTheme
	focusNav
)

// isInput reports whether the target is a text input.
func (t focusTarget) isInput() bool {
	return t == focusEmail || t == focusPassword
}

// AppModel is the bubbletea model wrapping the pure state machine. Key
// presses are translated into Events, Apply computes the next state,
// and View renders it.
type AppModel struct {
	state    State
	inputs   []textinput.Model
	focusIdx int
	width    int
	height   int

	title    string
	renderer *lipgloss.Renderer

	// State
	quitting bool
}

// Options configure a new AppModel.
type Options struct {
	// Theme is the scheme the session starts in.
	Theme theme.Mode
	// Title overrides the window title. Empty means WindowTitle.
	Title string
	// Renderer draws for a specific terminal. Nil means the local one.
	Renderer *lipgloss.Renderer
	// Width and Height preseed the layout for hosts that already know
	// the terminal size. Zero waits for the first WindowSizeMsg.
	Width  int
	Height int
}

// NewAppModel creates the TUI model in its startup state.
func NewAppModel(opts Options) AppModel {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	title := opts.Title
	if title == "" {
		title = WindowTitle
	}

	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = ""
		inputs[i].Width = 40
		inputs[i].PlaceholderStyle = renderer.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = renderer.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[focusEmail].Placeholder = "Email Address ..."
	inputs[focusEmail].CharLimit = 254
	inputs[focusEmail].Focus()

	inputs[focusPassword].Placeholder = "Password ..."
	inputs[focusPassword].CharLimit = 128
	inputs[focusPassword].EchoMode = textinput.EchoPassword
	inputs[focusPassword].EchoCharacter = '•'

	s := NewState()
	s.Theme = opts.Theme

	m := AppModel{
		state:    s,
		inputs:   inputs,
		title:    title,
		renderer: renderer,
		width:    opts.Width,
		height:   opts.Height,
	}
	m.restyleInputs()

	return m
}

// Init initializes the model.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(m.title))
}

// State returns the current application state.
func (m AppModel) State() State {
	return m.state
}

// ThemeMode returns the active scheme, for hosts that persist it.
func (m AppModel) ThemeMode() theme.Mode {
	return m.state.Theme
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Event:
		return m.applyEvent(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Keep the form inside narrow terminals.
		maxInputWidth := m.width - 24
		if maxInputWidth < 20 {
			maxInputWidth = 20
		}
		if maxInputWidth > 40 {
			maxInputWidth = 40
		}
		for i := range m.inputs {
			m.inputs[i].Width = maxInputWidth
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+t":
			return m.applyEvent(ToggleTheme{})

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			return m.moveFocus(1)

		case "shift+tab", "up":
			return m.moveFocus(-1)
		}
	}

	// Everything else feeds the focused input. Its result comes back as
	// a wholesale FieldsChanged carrying the untouched sibling, read
	// from the inputs before dispatch.
	if t := m.currentTarget(); t.isInput() {
		var cmd tea.Cmd
		m.inputs[t], cmd = m.inputs[t].Update(msg)

		next, applyCmd := m.applyEvent(FieldsChanged{
			Email:    m.inputs[focusEmail].Value(),
			Password: m.inputs[focusPassword].Value(),
		})
		return next, tea.Batch(cmd, applyCmd)
	}

	return m, nil
}

// applyEvent feeds one event through the pure transition and settles
// the widgets that mirror state.
func (m AppModel) applyEvent(ev Event) (tea.Model, tea.Cmd) {
	prev := m.state
	m.state = Apply(m.state, ev)

	var cmds []tea.Cmd

	if f, ok := ev.(FieldsChanged); ok {
		// Typing leaves the inputs already in sync; only externally
		// injected events need the values pushed back down.
		if m.inputs[focusEmail].Value() != f.Email {
			m.inputs[focusEmail].SetValue(f.Email)
		}
		if m.inputs[focusPassword].Value() != f.Password {
			m.inputs[focusPassword].SetValue(f.Password)
		}
	}

	if m.state.Theme != prev.Theme {
		m.restyleInputs()
	}

	if m.state.Page != prev.Page {
		m.focusIdx = 0
		if cmd := m.syncFocus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleEnter activates the focused control.
func (m AppModel) handleEnter() (tea.Model, tea.Cmd) {
	switch m.currentTarget() {
	case focusEmail, focusPassword:
		return m.moveFocus(1)

	case focusSubmit:
		return m.applyEvent(LoginSubmit{})

	case focusTheme:
		return m.applyEvent(ToggleTheme{})

	case focusNav:
		if m.state.Page == PageLogin {
			return m.applyEvent(Navigate{Route: RouteRegister})
		}
		return m.applyEvent(Navigate{Route: RouteLogin})
	}

	return m, nil
}

// focusOrder lists the focusable controls of the active page, in tab
// order.
func (m AppModel) focusOrder() []focusTarget {
	if m.state.Page == PageRegister {
		return []focusTarget{focusTheme, focusNav}
	}
	return []focusTarget{focusEmail, focusPassword, focusSubmit, focusTheme, focusNav}
}

// currentTarget returns the focused control.
func (m AppModel) currentTarget() focusTarget {
	ord := m.focusOrder()
	if m.focusIdx < 0 || m.focusIdx >= len(ord) {
		return ord[0]
	}
	return ord[m.focusIdx]
}

// moveFocus cycles focus through the active page's controls.
func (m AppModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	ord := m.focusOrder()
	m.focusIdx = (m.focusIdx + delta + len(ord)) % len(ord)
	cmd := m.syncFocus()
	return m, cmd
}

// syncFocus focuses the input under the cursor and blurs the other.
func (m *AppModel) syncFocus() tea.Cmd {
	current := m.currentTarget()
	focusedInput := false

	for t := focusEmail; t <= focusPassword; t++ {
		if t == current {
			m.inputs[t].Focus()
			focusedInput = true
		} else {
			m.inputs[t].Blur()
		}
	}

	if focusedInput {
		return textinput.Blink
	}
	return nil
}

// restyleInputs recolors the typed text for the active scheme.
func (m *AppModel) restyleInputs() {
	style := m.renderer.NewStyle().Foreground(lipgloss.Color(textColor(m.state.Theme)))
	for i := range m.inputs {
		m.inputs[i].TextStyle = style
	}
}

// View renders the TUI.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	width, height := m.width, m.height
	if width <= 0 {
		width, height = 80, 24
	}
	compact := width < compactWidth || height < compactHeight

	var content string
	switch m.state.Page {
	case PageRegister:
		content = m.registerView(compact)
	default:
		content = m.loginView(compact)
	}

	rows := []string{content}
	if !compact {
		rows = append(rows, "")
	}
	rows = append(rows, m.footerView())
	body := lipgloss.JoinVertical(lipgloss.Center, rows...)

	frame := theme.MustLookup(theme.Container, m.state.Theme)
	framed := m.frameStyle(frame, compact).Render(body)
	if frame.Shadow {
		framed = dropShadow(m.renderer, framed)
	}

	stack := []string{framed}
	if !compact {
		stack = append(stack, "")
	}
	stack = append(stack, m.helpView(compact))
	stacked := lipgloss.JoinVertical(lipgloss.Center, stack...)

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		stacked,
	)
}

// frameStyle builds the page frame from its looked-up appearance.
func (m AppModel) frameStyle(a theme.Appearance, compact bool) lipgloss.Style {
	border := lipgloss.NormalBorder()
	if a.Rounded {
		border = lipgloss.RoundedBorder()
	}

	st := m.renderer.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(a.Border)).
		Padding(1, 4)
	if compact {
		st = st.Padding(0, 2)
	}
	if a.Background != "" {
		st = st.Background(lipgloss.Color(a.Background))
	}
	return st
}

// footerView renders the shared footer: the theme toggle plus the page
// switch, both flat chrome buttons.
func (m AppModel) footerView() string {
	toggle := m.button("Toggle Theme", theme.ButtonTheme, m.currentTarget() == focusTheme, 0)

	navLabel := "Page Two"
	if m.state.Page == PageRegister {
		navLabel = "Main Page - Login"
	}
	nav := m.button(navLabel, theme.ButtonTheme, m.currentTarget() == focusNav, 0)

	return lipgloss.JoinHorizontal(lipgloss.Center, toggle, "  ", nav)
}

// button renders one focusable button under the active scheme. A width
// of zero sizes the button to its label.
func (m AppModel) button(label string, v theme.Variant, focused bool, width int) string {
	a := theme.MustLookup(v, m.state.Theme)

	st := m.renderer.NewStyle().Padding(0, 3)
	if width > 0 {
		st = st.Width(width).AlignHorizontal(lipgloss.Center)
	}
	if a.Foreground != "" {
		st = st.Foreground(lipgloss.Color(a.Foreground))
	}
	if a.Background != "" {
		st = st.Background(lipgloss.Color(a.Background)).Bold(true)
	}
	if a.Border != "" {
		border := lipgloss.NormalBorder()
		if a.Rounded {
			border = lipgloss.RoundedBorder()
		}
		st = st.Border(border).BorderForeground(lipgloss.Color(a.Border))
	}

	if focused {
		if a.Border != "" {
			st = st.BorderForeground(lipgloss.Color(ColorAccentBright))
		} else {
			st = st.Reverse(true)
		}
	}

	out := st.Render(label)
	if a.Shadow {
		out = dropShadow(m.renderer, out)
	}
	return out
}

// helpView renders the key hints under the frame.
func (m AppModel) helpView(compact bool) string {
	help := "Tab/↓: Next | Shift+Tab/↑: Back | Enter: Select | Ctrl+T: Theme | Esc: Quit"
	if compact {
		help = "Tab: Next | Enter: Select | Ctrl+T: Theme | Esc: Quit"
	}
	return m.renderer.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render(help)
}
