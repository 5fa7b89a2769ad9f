package tui

import "github.com/jenkinpan/teaform/internal/theme"

// Route names accepted by Navigate events.
const (
	RouteLogin    = "login"
	RouteRegister = "register"
)

// Page identifies which of the two screens is shown.
type Page int

const (
	PageLogin Page = iota
	PageRegister
)

// String returns the page's route name.
func (p Page) String() string {
	if p == PageRegister {
		return RouteRegister
	}
	return RouteLogin
}

// ParseRoute maps a route name to its page. Unknown routes report
// ok=false and callers keep the current page.
func ParseRoute(route string) (Page, bool) {
	switch route {
	case RouteLogin:
		return PageLogin, true
	case RouteRegister:
		return PageRegister, true
	default:
		return PageLogin, false
	}
}

// FormFields holds the login form values. Both strings are always
// present, empty meaning nothing typed yet.
type FormFields struct {
	Email    string
	Password string
}

// State aggregates everything the application tracks: the active
// scheme, the active page, and the form buffers. It moves by value
// through Apply, so earlier states are never aliased.
type State struct {
	Theme  theme.Mode
	Page   Page
	Fields FormFields
}

// NewState returns the startup state: dark scheme, login page, empty
// form. The zero value is identical.
func NewState() State {
	return State{Theme: theme.Dark, Page: PageLogin}
}

// Event is one semantic input to the state machine. The implementations
// below are the full set. Events double as bubbletea messages, so hosts
// can inject them with Program.Send.
type Event interface {
	isEvent()
}

// ToggleTheme flips between the dark and light schemes.
type ToggleTheme struct{}

// LoginSubmit reports a press of the login button. Authentication is
// not implemented, so applying it changes nothing.
type LoginSubmit struct{}

// Navigate requests a page switch by route name.
type Navigate struct {
	Route string
}

// FieldsChanged replaces both form fields at once. Senders fill in the
// untouched sibling from current state, so partial updates cannot
// happen.
type FieldsChanged struct {
	Email    string
	Password string
}

func (ToggleTheme) isEvent()   {}
func (LoginSubmit) isEvent()   {}
func (Navigate) isEvent()      {}
func (FieldsChanged) isEvent() {}

// Apply computes the next state for one event. It is total: every
// (state, event) pair yields a defined next state and nothing can
// fail. Unrecognized navigation routes are ignored.
func Apply(s State, ev Event) State {
	switch ev := ev.(type) {
	case ToggleTheme:
		s.Theme = s.Theme.Toggled()
	case LoginSubmit:
		// placeholder until real authentication lands
	case Navigate:
		if page, ok := ParseRoute(ev.Route); ok {
			s.Page = page
		}
	case FieldsChanged:
		s.Fields = FormFields{Email: ev.Email, Password: ev.Password}
	}
	return s
}
