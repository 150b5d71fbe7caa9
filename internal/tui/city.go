package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type cityModel struct {
	input      textinput.Model
	submitting bool
	errMsg     string
}

func newCityModel(current string) cityModel {
	input := textinput.New()
	input.Placeholder = "назва міста"
	input.CharLimit = 100
	input.Width = 40
	input.SetValue(current)
	input.Focus()

	return cityModel{input: input}
}

func (c cityModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m mainLoopModel) updateCity(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case citySavedMsg:
		m.city.submitting = false
		if msg.err != nil {
			m.city.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		// saved: show the home screen for the new city right away
		m.home = newHomeModel(msg.city)
		m.current = screenHome
		return m, m.cmdLoadWeather(msg.city)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.home.city == "" {
				// no city yet, nothing to go back to
				return m, nil
			}
			m.current = screenHome
			return m, nil
		case "enter":
			if m.city.submitting {
				return m, nil
			}

			city := strings.TrimSpace(m.city.input.Value())
			if city == "" {
				m.city.errMsg = "Вкажіть місто"
				return m, nil
			}

			m.city.errMsg = ""
			m.city.submitting = true
			return m, m.cmdSaveCity(city)
		}
	}

	var cmd tea.Cmd
	m.city.input, cmd = m.city.input.Update(msg)
	return m, cmd
}

func (c cityModel) view() string {
	var b strings.Builder
	b.WriteString("Місто │ [")
	b.WriteString(c.input.View())
	b.WriteString("]\n")

	if c.submitting {
		b.WriteString("\n[Збереження...]\n")
	} else {
		b.WriteString("\n[Зберегти]\n")
	}

	if c.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Помилка: " + c.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВИБІР МІСТА", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: зберегти")
}
