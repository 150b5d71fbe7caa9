package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okramarenko/meteostation/models"
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders username, email and password inputs and dispatches an async
// registration command on submission. On success the router navigates back
// to the menu with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx     context.Context
	gateway Gateway

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, gateway Gateway) *RegisterModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "ім'я користувача"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &RegisterModel{
		ctx:     ctx,
		gateway: gateway,
		inputs:  []textinput.Model{usernameInput, emailInput, passwordInput},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}

		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: RegisterSuccessNotice{Username: result.Username}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			email := strings.TrimSpace(m.inputs[1].Value())
			pass := m.inputs[2].Value()
			if username == "" || email == "" || pass == "" {
				m.errMsg = "Усі поля обов'язкові"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(username, email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Поле     │ Значення\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Ім'я     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email    │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Пароль   │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Реєстрація...]\n")
	} else {
		b.WriteString("\n[Зареєструватися]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Помилка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕЄСТРАЦІЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: наст. поле │ enter: підтвердити")
}

func (m *RegisterModel) cmdRegister(username, email, pass string) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway

	return func() tea.Msg {
		_, err := gateway.Register(ctx, models.RegisterRequest{
			Username: username,
			Email:    email,
			Password: pass,
		})

		return RegisterResult{Username: username, Err: err}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
