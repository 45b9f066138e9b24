package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"eduadmin/internal/api"
	"eduadmin/internal/session"
	"eduadmin/internal/ui/views"
)

const (
	fieldUsername = iota
	fieldPassword
)

// loginForm is the sign-in screen shown until a staff session exists
type loginForm struct {
	baseURL string
	inputs  [2]textinput.Model
	focus   int
	busy    bool
	err     string
}

func newLoginForm(baseURL, username, password string) *loginForm {
	user := textinput.New()
	user.Prompt = ""
	user.CharLimit = 150
	user.Placeholder = "username"
	user.SetValue(username)

	pass := textinput.New()
	pass.Prompt = ""
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.SetValue(password)

	f := &loginForm{baseURL: baseURL, inputs: [2]textinput.Model{user, pass}}
	if username != "" {
		f.focus = fieldPassword
	}
	return f
}

// ready reports whether both fields are filled
func (f *loginForm) ready() bool {
	return strings.TrimSpace(f.inputs[fieldUsername].Value()) != "" && f.inputs[fieldPassword].Value() != ""
}

func (f *loginForm) focusCmd() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f *loginForm) clearPassword() {
	f.inputs[fieldPassword].Reset()
	f.err = ""
}

func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *loginForm) view() views.LoginView {
	return views.LoginView{
		BaseURL:  f.baseURL,
		Username: f.inputs[fieldUsername].View(),
		Password: f.inputs[fieldPassword].View(),
		Focus:    f.focus,
		Busy:     f.busy,
		Err:      f.err,
	}
}

// updateLogin handles keys on the sign-in screen
func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.login
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down", "shift+tab", "up":
		if f.busy {
			return m, nil
		}
		f.focus = 1 - f.focus
		return m, f.focusCmd()
	case "enter":
		if f.busy {
			return m, nil
		}
		if f.focus == fieldUsername && f.inputs[fieldPassword].Value() == "" {
			f.focus = fieldPassword
			return m, f.focusCmd()
		}
		return m, m.submitLogin()
	}

	if f.busy {
		return m, nil
	}
	f.err = ""
	return m, f.update(msg)
}

func (m *Model) submitLogin() tea.Cmd {
	f := m.login
	username := strings.TrimSpace(f.inputs[fieldUsername].Value())
	password := f.inputs[fieldPassword].Value()
	if username == "" || password == "" {
		f.err = "Enter username and password"
		return nil
	}
	f.busy = true
	f.err = ""
	return m.loginCmd(username, password)
}

// loginErrorText turns a sign-in failure into a message for the form
func loginErrorText(err error) string {
	switch {
	case errors.Is(err, session.ErrNotStaff):
		return "Only staff accounts can use the admin console"
	case errors.Is(err, api.ErrEmailNotConfirmed):
		return "Email address is not confirmed"
	case errors.Is(err, api.ErrUnauthorized):
		return "Invalid username or password"
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
