// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okramarenko/meteostation/models"
)

// forecastPreviewEntries caps how many 3-hour points the home screen shows.
const forecastPreviewEntries = 8

type homeModel struct {
	city     string
	current  models.CurrentWeather
	forecast models.Forecast
	loaded   bool
	loading  bool
	errMsg   string
	status   string
}

func newHomeModel(city string) homeModel {
	return homeModel{city: city, loading: city != ""}
}

func (m mainLoopModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weatherLoadedMsg:
		m.home.loading = false
		if msg.err != nil {
			m.home.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}

		m.home.city = msg.city
		m.home.current = msg.current
		m.home.forecast = msg.forecast
		m.home.loaded = true
		m.home.errMsg = ""
		return m, nil

	case copiedMsg:
		m.home.status = "Скопійовано в буфер обміну"
		return m, cmdClearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.home.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if m.home.city == "" {
				return m, nil
			}
			m.home.loading = true
			m.home.errMsg = ""
			return m, m.cmdLoadWeather(m.home.city)
		case "c":
			if !m.home.loaded {
				return m, nil
			}
			line := conditionsLine(m.home.current)
			return m, func() tea.Msg {
				if err := clipboard.WriteAll(line); err != nil {
					return clearStatusMsg{}
				}
				return copiedMsg{}
			}
		}
	}

	return m, nil
}

// conditionsLine is the one-line summary offered for clipboard copy.
func conditionsLine(c models.CurrentWeather) string {
	return fmt.Sprintf("%s: %.1f°C (відчувається як %.1f°C), %s, вологість %d%%, вітер %.1f м/с",
		c.City, c.Temp, c.FeelsLike, c.Description, c.Humidity, c.Wind)
}

func (h homeModel) view() string {
	var b strings.Builder

	if h.city == "" {
		b.WriteString("Місто ще не обрано.\n")
		b.WriteString("Натисніть m, щоб обрати місто.")
		return renderPage("ПОГОДА", b.String(), homeHotkeys)
	}

	if h.loading {
		b.WriteString("Завантаження погоди для ")
		b.WriteString(h.city)
		b.WriteString("...")
		return renderPage("ПОГОДА", b.String(), homeHotkeys)
	}

	if h.errMsg != "" {
		b.WriteString(errorStyle.Render("Помилка: " + h.errMsg))
		b.WriteString("\n\nНатисніть r, щоб спробувати ще раз.")
		return renderPage("ПОГОДА", b.String(), homeHotkeys)
	}

	if h.status != "" {
		b.WriteString("OK: ")
		b.WriteString(h.status)
		b.WriteString("\n\n")
	}

	c := h.current
	b.WriteString(titleStyle.Render(c.City))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Температура   │ %.1f°C\n", c.Temp))
	b.WriteString(fmt.Sprintf("Відчувається  │ %.1f°C\n", c.FeelsLike))
	b.WriteString(fmt.Sprintf("Опис          │ %s\n", c.Description))
	b.WriteString(fmt.Sprintf("Вологість     │ %d%%\n", c.Humidity))
	b.WriteString(fmt.Sprintf("Вітер         │ %.1f м/с\n", c.Wind))

	if len(h.forecast.Entries) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Прогноз"))
		b.WriteString("\n")
		b.WriteString("Час            │ Темп.   │ Опис\n")
		b.WriteString("───────────────┼─────────┼──────────────────────\n")

		entries := h.forecast.Entries
		if len(entries) > forecastPreviewEntries {
			entries = entries[:forecastPreviewEntries]
		}
		for _, e := range entries {
			b.WriteString(fmt.Sprintf("%s │ %6.1f° │ %s\n",
				e.Time.Format("02.01 15:04"), e.Temp, fitText(e.Description, 22)))
		}
	}

	return renderPage("ПОГОДА", strings.TrimRight(b.String(), "\n"), homeHotkeys)
}

const homeHotkeys = "r: оновити │ c: копіювати │ m: місто │ n: нагадування │ i: історія │ s: налаштування │ l: вийти з акаунта │ q: вихід"
