package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okramarenko/meteostation/models"
)

var (
	themeOptions    = []string{"default", "dark", "light"}
	languageOptions = []string{"ua", "en"}
)

type settingsModel struct {
	theme    string
	language string

	row    int // 0 = theme, 1 = language
	status string
	errMsg string
}

func newSettingsModel(settings *models.UserSettings) settingsModel {
	theme := models.DefaultTheme
	language := models.DefaultLanguage
	if settings != nil {
		if settings.Theme != "" {
			theme = settings.Theme
		}
		if settings.Language != "" {
			language = settings.Language
		}
	}

	return settingsModel{theme: theme, language: language}
}

func (m mainLoopModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.err != nil {
			m.settings.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		m.settings.theme = msg.theme
		m.settings.language = msg.language
		m.settings.errMsg = ""
		m.settings.status = "Налаштування збережено"
		m.lang = msg.language
		return m, cmdClearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.settings.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.settings.row = 0
		case "down", "j":
			m.settings.row = 1
		case "left", "h":
			m.settings.cycle(-1)
		case "right", "tab":
			m.settings.cycle(1)
		case "enter":
			return m, m.cmdSaveSettings(m.settings.theme, m.settings.language)
		}
		return m, nil
	}

	return m, nil
}

// cycle advances the active row's value by delta within its option list.
func (s *settingsModel) cycle(delta int) {
	if s.row == 0 {
		s.theme = cycleOption(themeOptions, s.theme, delta)
		return
	}
	s.language = cycleOption(languageOptions, s.language, delta)
}

func cycleOption(options []string, current string, delta int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func (s settingsModel) view() string {
	var b strings.Builder

	if s.status != "" {
		b.WriteString("OK: ")
		b.WriteString(s.status)
		b.WriteString("\n\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Тема", s.theme},
		{"Мова", s.language},
	}

	b.WriteString("  Параметр │ Значення\n")
	b.WriteString("───────────┼──────────\n")
	for i, row := range rows {
		cursor := " "
		if i == s.row {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-8s │ %s\n", cursor, row.label, row.value))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Помилка: " + s.errMsg))
		b.WriteString("\n")
	}

	return renderPage("НАЛАШТУВАННЯ", strings.TrimRight(b.String(), "\n"),
		"←/→: змінити │ ↑/↓: параметр │ enter: зберегти │ esc: назад")
}
