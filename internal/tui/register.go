package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vmelnikv/noteshare/models"
)

// RegisterModel is the Bubble Tea model for the account creation screen:
// username, e-mail and password inputs. Registration authenticates the new
// account in the same step, so a successful submit produces a [LoginResult]
// and finishes the flow.
type RegisterModel struct {
	ctx  context.Context
	auth AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth AuthService) *RegisterModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 150
	usernameInput.Width = 40
	usernameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{usernameInput, emailInput, passwordInput},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeTransportError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab", "down":
			m.focusInput(m.focus + 1)
			return m, textinput.Blink
		case "shift+tab", "up":
			m.focusInput(m.focus - 1)
			return m, textinput.Blink
		case "enter":
			if m.submitting {
				return m, nil
			}

			user := models.User{
				Username: strings.TrimSpace(m.inputs[0].Value()),
				Email:    strings.TrimSpace(m.inputs[1].Value()),
				Password: m.inputs[2].Value(),
			}
			if user.Username == "" || user.Email == "" || user.Password == "" {
				m.errMsg = "username, email and password are required"
				return m, nil
			}

			m.submitting = true
			m.errMsg = ""
			return m, m.cmdRegister(user)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder

	b.WriteString("Username: ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Email:    ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")
	b.WriteString("Password: ")
	b.WriteString(m.inputs[2].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\ncreating account...")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "enter: submit │ tab: next field │ esc: back")
}

func (m *RegisterModel) focusInput(idx int) {
	if idx < 0 {
		idx = len(m.inputs) - 1
	}
	if idx >= len(m.inputs) {
		idx = 0
	}

	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) cmdRegister(user models.User) tea.Cmd {
	return func() tea.Msg {
		registered, err := m.auth.Register(m.ctx, user)
		return LoginResult{User: registered, Err: err}
	}
}
