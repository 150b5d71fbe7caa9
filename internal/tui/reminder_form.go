package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okramarenko/meteostation/models"
)

type reminderFormModel struct {
	city textinput.Model
	text textinput.Model
	date textinput.Model

	focus      int
	submitting bool
	errMsg     string
}

func newReminderFormModel() reminderFormModel {
	city := textinput.New()
	city.Placeholder = "місто"
	city.CharLimit = 100
	city.Width = 40
	city.Focus()

	text := textinput.New()
	text.Placeholder = "текст нагадування"
	text.CharLimit = 200
	text.Width = 40

	date := textinput.New()
	date.Placeholder = models.SnapshotDateFormat
	date.CharLimit = 10
	date.Width = 40
	date.SetValue(models.SnapshotDate(time.Now().AddDate(0, 0, 1)))

	return reminderFormModel{city: city, text: text, date: date}
}

func (f reminderFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (f *reminderFormModel) inputs() []*textinput.Model {
	return []*textinput.Model{&f.city, &f.text, &f.date}
}

func (f *reminderFormModel) focusNext() {
	inputs := f.inputs()
	inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(inputs)
	inputs[f.focus].Focus()
}

func (f *reminderFormModel) focusPrev() {
	inputs := f.inputs()
	inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(inputs)) % len(inputs)
	inputs[f.focus].Focus()
}

func (m mainLoopModel) updateReminderForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.current = screenReminders
			m.reminders.loading = true
			return m, m.cmdLoadReminders(m.reminders.filter)
		case "tab":
			m.reminderForm.focusNext()
			return m, nil
		case "shift+tab":
			m.reminderForm.focusPrev()
			return m, nil
		case "enter":
			if m.reminderForm.submitting {
				return m, nil
			}

			city := strings.TrimSpace(m.reminderForm.city.Value())
			text := strings.TrimSpace(m.reminderForm.text.Value())
			date := strings.TrimSpace(m.reminderForm.date.Value())
			if city == "" || text == "" {
				m.reminderForm.errMsg = "Місто і текст обов'язкові"
				return m, nil
			}
			if date != "" {
				if _, err := time.Parse(models.SnapshotDateFormat, date); err != nil {
					m.reminderForm.errMsg = "Дата має бути у форматі РРРР-ММ-ДД"
					return m, nil
				}
			}

			m.reminderForm.errMsg = ""
			m.reminderForm.submitting = true
			return m, m.cmdAddReminder(models.AddReminderRequest{
				City: city,
				Text: text,
				Date: date,
			})
		}
	}

	inputs := m.reminderForm.inputs()
	var cmd tea.Cmd
	*inputs[m.reminderForm.focus], cmd = inputs[m.reminderForm.focus].Update(msg)
	return m, cmd
}

func (f reminderFormModel) view() string {
	var b strings.Builder
	b.WriteString("Поле   │ Значення\n")
	b.WriteString("───────┼────────────────────────────────────────────\n")
	b.WriteString("Місто  │ [")
	b.WriteString(f.city.View())
	b.WriteString("]\n")
	b.WriteString("Текст  │ [")
	b.WriteString(f.text.View())
	b.WriteString("]\n")
	b.WriteString("Дата   │ [")
	b.WriteString(f.date.View())
	b.WriteString("]\n")

	if f.submitting {
		b.WriteString("\n[Збереження...]\n")
	} else {
		b.WriteString("\n[Додати]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Помилка: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage("НОВЕ НАГАДУВАННЯ", strings.TrimRight(b.String(), "\n"),
		"esc: назад │ tab: наст. поле │ enter: додати")
}
