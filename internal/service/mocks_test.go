package service

import (
	"context"

	"github.com/okramarenko/meteostation/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn func(ctx context.Context, user models.User) (models.User, error)
	findByEmail  func(ctx context.Context, email string) (models.User, error)
	getCityFn    func(ctx context.Context, userID int64) (string, error)
	updateCityFn func(ctx context.Context, userID int64, city string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetCity(ctx context.Context, userID int64) (string, error) {
	if m.getCityFn != nil {
		return m.getCityFn(ctx, userID)
	}
	return "", nil
}

func (m *mockUserRepository) UpdateCity(ctx context.Context, userID int64, city string) error {
	if m.updateCityFn != nil {
		return m.updateCityFn(ctx, userID, city)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.SettingsRepository
// ─────────────────────────────────────────────

type mockSettingsRepository struct {
	getFn    func(ctx context.Context, userID int64) (models.UserSettings, error)
	upsertFn func(ctx context.Context, settings models.UserSettings) error
}

func (m *mockSettingsRepository) Get(ctx context.Context, userID int64) (models.UserSettings, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return models.DefaultSettings(userID), nil
}

func (m *mockSettingsRepository) Upsert(ctx context.Context, settings models.UserSettings) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, settings)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ReminderRepository
// ─────────────────────────────────────────────

type mockReminderRepository struct {
	addFn    func(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	listFn   func(ctx context.Context, userID int64, date string) ([]models.Reminder, error)
	deleteFn func(ctx context.Context, userID int64, reminderID int64) error
}

func (m *mockReminderRepository) Add(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	if m.addFn != nil {
		return m.addFn(ctx, reminder)
	}
	return reminder, nil
}

func (m *mockReminderRepository) List(ctx context.Context, userID int64, date string) ([]models.Reminder, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, date)
	}
	return nil, nil
}

func (m *mockReminderRepository) Delete(ctx context.Context, userID int64, reminderID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, reminderID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.HistoryRepository
// ─────────────────────────────────────────────

type mockHistoryRepository struct {
	upsertFn func(ctx context.Context, snapshot models.WeatherSnapshot) (models.WeatherSnapshot, error)
	listFn   func(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error)
}

func (m *mockHistoryRepository) Upsert(ctx context.Context, snapshot models.WeatherSnapshot) (models.WeatherSnapshot, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, snapshot)
	}
	return snapshot, nil
}

func (m *mockHistoryRepository) List(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, city, limit)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: crypto.PasswordHasher
// ─────────────────────────────────────────────

type mockPasswordHasher struct {
	hashFn   func(password string) (string, error)
	verifyFn func(hash, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.hashFn != nil {
		return m.hashFn(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hash, password string) error {
	if m.verifyFn != nil {
		return m.verifyFn(hash, password)
	}
	return nil
}
