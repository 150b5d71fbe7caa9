package http

import (
	"context"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/service"
	"github.com/okramarenko/meteostation/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	cityFn        func(ctx context.Context, userID int64) (string, error)
	updateCityFn  func(ctx context.Context, userID int64, city string) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token", UserID: user.ID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

func (m *mockAuthService) City(ctx context.Context, userID int64) (string, error) {
	if m.cityFn != nil {
		return m.cityFn(ctx, userID)
	}
	return "", nil
}

func (m *mockAuthService) UpdateCity(ctx context.Context, userID int64, city string) error {
	if m.updateCityFn != nil {
		return m.updateCityFn(ctx, userID, city)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.SettingsService
// ─────────────────────────────────────────────

type mockSettingsService struct {
	settingsFn       func(ctx context.Context, userID int64) (models.UserSettings, error)
	updateSettingsFn func(ctx context.Context, settings models.UserSettings) error
}

func (m *mockSettingsService) Settings(ctx context.Context, userID int64) (models.UserSettings, error) {
	if m.settingsFn != nil {
		return m.settingsFn(ctx, userID)
	}
	return models.DefaultSettings(userID), nil
}

func (m *mockSettingsService) UpdateSettings(ctx context.Context, settings models.UserSettings) error {
	if m.updateSettingsFn != nil {
		return m.updateSettingsFn(ctx, settings)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.ReminderService
// ─────────────────────────────────────────────

type mockReminderService struct {
	addFn    func(ctx context.Context, userID int64, req models.AddReminderRequest) (models.Reminder, error)
	listFn   func(ctx context.Context, userID int64, dateFilter string) ([]models.Reminder, error)
	deleteFn func(ctx context.Context, userID int64, reminderID int64) error
}

func (m *mockReminderService) AddReminder(ctx context.Context, userID int64, req models.AddReminderRequest) (models.Reminder, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, req)
	}
	return models.Reminder{}, nil
}

func (m *mockReminderService) Reminders(ctx context.Context, userID int64, dateFilter string) ([]models.Reminder, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, dateFilter)
	}
	return nil, nil
}

func (m *mockReminderService) DeleteReminder(ctx context.Context, userID int64, reminderID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, reminderID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.HistoryService
// ─────────────────────────────────────────────

type mockHistoryService struct {
	saveFn func(ctx context.Context, userID int64, req models.AddHistoryRequest) (models.WeatherSnapshot, error)
	listFn func(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error)
}

func (m *mockHistoryService) SaveSnapshot(ctx context.Context, userID int64, req models.AddHistoryRequest) (models.WeatherSnapshot, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, userID, req)
	}
	return models.WeatherSnapshot{}, nil
}

func (m *mockHistoryService) History(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, city, limit)
	}
	return nil, nil
}

// newTestHandler wires the mocks into a Handler with a silent logger.
func newTestHandler(auth *mockAuthService, settings *mockSettingsService, reminders *mockReminderService, history *mockHistoryService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if settings == nil {
		settings = &mockSettingsService{}
	}
	if reminders == nil {
		reminders = &mockReminderService{}
	}
	if history == nil {
		history = &mockHistoryService{}
	}

	return NewHandler(&service.Services{
		AuthService:     auth,
		SettingsService: settings,
		ReminderService: reminders,
		HistoryService:  history,
	}, logger.Nop())
}
