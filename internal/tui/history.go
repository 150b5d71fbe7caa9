package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okramarenko/meteostation/models"
)

// historyScreenLimit matches the history page depth of the desktop app.
const historyScreenLimit = 30

type historyModel struct {
	history   []models.WeatherSnapshot
	allCities bool
	loading   bool
	errMsg    string
}

func newHistoryModel() historyModel {
	return historyModel{loading: true}
}

func (m mainLoopModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.history.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		m.history.history = msg.history
		m.history.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "t" {
			// toggle between the tracked city and all saved cities
			m.history.allCities = !m.history.allCities
			m.history.loading = true

			city := m.home.city
			if m.history.allCities {
				city = ""
			}
			return m, m.cmdLoadHistory(city)
		}
	}

	return m, nil
}

func (h historyModel) view() string {
	var b strings.Builder

	scope := "поточне місто"
	if h.allCities {
		scope = "усі міста"
	}
	b.WriteString("Область: ")
	b.WriteString(scope)
	b.WriteString("\n\n")

	switch {
	case h.loading:
		b.WriteString("Завантаження...")
	case h.errMsg != "":
		b.WriteString(errorStyle.Render("Помилка: " + h.errMsg))
	case len(h.history) == 0:
		b.WriteString("Збережених записів ще немає.")
	default:
		b.WriteString("Дата       │ Місто           │ Темп.   │ Волог. │ Опис\n")
		b.WriteString("───────────┼─────────────────┼─────────┼────────┼──────────────────\n")
		for _, s := range h.history {
			b.WriteString(fmt.Sprintf("%s │ %-15s │ %6.1f° │ %5d%% │ %s\n",
				s.Date, fitText(s.City, 15), s.Temp, s.Humidity, fitText(s.Description, 18)))
		}
	}

	return renderPage("ІСТОРІЯ ПОГОДИ", strings.TrimRight(b.String(), "\n"),
		"t: область │ esc: назад")
}
