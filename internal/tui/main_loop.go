// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okramarenko/meteostation/models"
)

type screen int

const (
	screenHome screen = iota
	screenCity
	screenReminders
	screenReminderForm
	screenHistory
	screenSettings
)

// mainLoopModel routes the signed-in screens. Each screen keeps its own
// sub-model; async work runs in tea commands that resolve into the messages
// declared in messages.go.
type mainLoopModel struct {
	ctx     context.Context
	gateway Gateway
	weather WeatherProvider

	user     models.User
	lang     string
	current  screen

	home         homeModel
	city         cityModel
	reminders    remindersModel
	reminderForm reminderFormModel
	history      historyModel
	settings     settingsModel

	logout bool
}

func newMainLoopModel(ctx context.Context, gateway Gateway, weather WeatherProvider, user models.User) mainLoopModel {
	lang := models.DefaultLanguage
	if user.Settings != nil && user.Settings.Language != "" {
		lang = user.Settings.Language
	}

	current := screenHome
	if user.City == "" {
		// first sign-in: the user has to pick a city before anything else
		current = screenCity
	}

	return mainLoopModel{
		ctx:          ctx,
		gateway:      gateway,
		weather:      weather,
		user:         user,
		lang:         lang,
		current:      current,
		home:         newHomeModel(user.City),
		city:         newCityModel(user.City),
		reminders:    newRemindersModel(),
		reminderForm: newReminderFormModel(),
		history:      newHistoryModel(),
		settings:     newSettingsModel(user.Settings),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	if m.user.City == "" {
		return textinput.Blink
	}
	return m.cmdLoadWeather(m.user.City)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys first; input screens swallow printable keys themselves.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if !m.inputScreen() {
			switch {
			case key.Matches(keyMsg, keys.quit):
				return m, tea.Quit
			case key.Matches(keyMsg, keys.logout):
				m.logout = true
				return m, tea.Quit
			case key.Matches(keyMsg, keys.city):
				m.current = screenCity
				m.city = newCityModel(m.home.city)
				return m, m.city.Init()
			case key.Matches(keyMsg, keys.reminders):
				m.current = screenReminders
				m.reminders.loading = true
				return m, m.cmdLoadReminders(m.reminders.filter)
			case key.Matches(keyMsg, keys.history):
				m.current = screenHistory
				m.history = newHistoryModel()
				return m, m.cmdLoadHistory(m.home.city)
			case key.Matches(keyMsg, keys.settings):
				m.current = screenSettings
				return m, nil
			case key.Matches(keyMsg, keys.esc):
				if m.current != screenHome {
					m.current = screenHome
					return m, nil
				}
			}
		}
	}

	switch m.current {
	case screenHome:
		return m.updateHome(msg)
	case screenCity:
		return m.updateCity(msg)
	case screenReminders:
		return m.updateReminders(msg)
	case screenReminderForm:
		return m.updateReminderForm(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.current {
	case screenCity:
		return m.city.view()
	case screenReminders:
		return m.reminders.view()
	case screenReminderForm:
		return m.reminderForm.view()
	case screenHistory:
		return m.history.view()
	case screenSettings:
		return m.settings.view()
	default:
		return m.home.view()
	}
}

// inputScreen reports whether the active screen owns the keyboard (text
// entry), so single-letter hotkeys must not be intercepted.
func (m mainLoopModel) inputScreen() bool {
	return m.current == screenCity || m.current == screenReminderForm
}

// ── async commands ──────────────────────────────────────────────────────────

// cmdLoadWeather fetches current conditions plus the forecast and stores
// today's snapshot through the boundary, mirroring the home screen contract:
// every successful fetch leaves a history row for (user, city, today).
func (m mainLoopModel) cmdLoadWeather(city string) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway
	weather := m.weather
	lang := m.lang

	return func() tea.Msg {
		current, err := weather.CurrentWeather(ctx, city, lang)
		if err != nil {
			return weatherLoadedMsg{city: city, err: err}
		}

		forecast, err := weather.Forecast(ctx, city, lang)
		if err != nil {
			return weatherLoadedMsg{city: city, err: err}
		}

		// snapshot failures must not break rendering
		_ = gateway.SaveHistory(ctx, models.AddHistoryRequest{
			City:    city,
			Weather: current.Data(),
		})

		return weatherLoadedMsg{city: city, current: current, forecast: forecast}
	}
}

func (m mainLoopModel) cmdSaveCity(city string) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway

	return func() tea.Msg {
		return citySavedMsg{city: city, err: gateway.UpdateCity(ctx, city)}
	}
}

func (m mainLoopModel) cmdLoadReminders(date string) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway

	return func() tea.Msg {
		reminders, err := gateway.Reminders(ctx, date)
		return remindersLoadedMsg{reminders: reminders, err: err}
	}
}

func (m mainLoopModel) cmdAddReminder(req models.AddReminderRequest) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway

	return func() tea.Msg {
		_, err := gateway.AddReminder(ctx, req)
		return reminderAddedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteReminder(id int64) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway

	return func() tea.Msg {
		return reminderDeletedMsg{err: gateway.DeleteReminder(ctx, id)}
	}
}

func (m mainLoopModel) cmdLoadHistory(city string) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway

	return func() tea.Msg {
		history, err := gateway.History(ctx, city, historyScreenLimit)
		return historyLoadedMsg{history: history, err: err}
	}
}

func (m mainLoopModel) cmdSaveSettings(theme, language string) tea.Cmd {
	ctx := m.ctx
	gateway := m.gateway

	return func() tea.Msg {
		err := gateway.UpdateSettings(ctx, models.UpdateSettingsRequest{
			Theme:    theme,
			Language: language,
		})
		return settingsSavedMsg{theme: theme, language: language, err: err}
	}
}

func cmdClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
