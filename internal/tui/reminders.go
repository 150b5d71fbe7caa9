package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okramarenko/meteostation/models"
)

type remindersModel struct {
	reminders []models.Reminder
	idx       int
	filter    string
	loading   bool
	errMsg    string
	status    string
}

func newRemindersModel() remindersModel {
	return remindersModel{loading: true}
}

func (m mainLoopModel) updateReminders(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case remindersLoadedMsg:
		m.reminders.loading = false
		if msg.err != nil {
			m.reminders.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		m.reminders.reminders = msg.reminders
		m.reminders.errMsg = ""
		if m.reminders.idx >= len(msg.reminders) {
			m.reminders.idx = 0
		}
		return m, nil

	case reminderDeletedMsg:
		if msg.err != nil {
			m.reminders.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		m.reminders.status = "Нагадування видалено"
		m.reminders.loading = true
		return m, tea.Batch(
			m.cmdLoadReminders(m.reminders.filter),
			cmdClearStatusAfter(2*time.Second),
		)

	case reminderAddedMsg:
		if msg.err != nil {
			m.reminderForm.submitting = false
			m.reminderForm.errMsg = humanizeServerUnavailableError(msg.err)
			m.current = screenReminderForm
			return m, nil
		}

		m.reminders.status = "Нагадування додано"
		m.reminders.loading = true
		m.current = screenReminders
		return m, tea.Batch(
			m.cmdLoadReminders(m.reminders.filter),
			cmdClearStatusAfter(2*time.Second),
		)

	case clearStatusMsg:
		m.reminders.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.reminders.idx > 0 {
				m.reminders.idx--
			}
		case "down", "j":
			if m.reminders.idx < len(m.reminders.reminders)-1 {
				m.reminders.idx++
			}
		case "a":
			m.reminderForm = newReminderFormModel()
			m.reminderForm.city.SetValue(m.home.city)
			m.current = screenReminderForm
			return m, m.reminderForm.Init()
		case "d":
			if len(m.reminders.reminders) == 0 {
				return m, nil
			}
			id := m.reminders.reminders[m.reminders.idx].ID
			return m, m.cmdDeleteReminder(id)
		case "t":
			// cycle the date filter: all -> today -> tomorrow -> all
			switch m.reminders.filter {
			case "":
				m.reminders.filter = "today"
			case "today":
				m.reminders.filter = "tomorrow"
			default:
				m.reminders.filter = ""
			}
			m.reminders.loading = true
			return m, m.cmdLoadReminders(m.reminders.filter)
		}
	}

	return m, nil
}

func (r remindersModel) view() string {
	var b strings.Builder

	filterLabel := "усі"
	switch r.filter {
	case "today":
		filterLabel = "сьогодні"
	case "tomorrow":
		filterLabel = "завтра"
	}
	b.WriteString("Фільтр: ")
	b.WriteString(filterLabel)
	b.WriteString("\n\n")

	if r.status != "" {
		b.WriteString("OK: ")
		b.WriteString(r.status)
		b.WriteString("\n\n")
	}

	switch {
	case r.loading:
		b.WriteString("Завантаження...")
	case r.errMsg != "":
		b.WriteString(errorStyle.Render("Помилка: " + r.errMsg))
	case len(r.reminders) == 0:
		b.WriteString("Нагадувань немає. Натисніть a, щоб додати.")
	default:
		b.WriteString("  Дата       │ Місто           │ Текст\n")
		b.WriteString("─────────────┼─────────────────┼──────────────────────────\n")
		for i, reminder := range r.reminders {
			cursor := " "
			if i == r.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s │ %-15s │ %s\n",
				cursor, reminder.Date, fitText(reminder.City, 15), fitText(reminder.Text, 26)))
		}
	}

	return renderPage("НАГАДУВАННЯ", strings.TrimRight(b.String(), "\n"),
		"a: додати │ d: видалити │ t: фільтр дати │ ↑/↓: навігація │ esc: назад")
}
