package service

import (
	"context"
	"fmt"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/store"
	"github.com/okramarenko/meteostation/models"
)

// settingsService is the concrete implementation of SettingsService.
type settingsService struct {
	settingsRepository store.SettingsRepository
	logger             *logger.Logger
}

// NewSettingsService constructs a SettingsService wired to the given
// repository.
func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

// Settings returns the user's presentation settings, falling back to
// defaults when nothing was stored yet.
func (s *settingsService) Settings(ctx context.Context, userID int64) (models.UserSettings, error) {
	settings, err := s.settingsRepository.Get(ctx, userID)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("settings lookup failed: %w", err)
	}

	return settings, nil
}

// UpdateSettings stores the given settings for the user. Empty fields fall
// back to the defaults so a partial update can never leave a user with a
// blank theme or language.
func (s *settingsService) UpdateSettings(ctx context.Context, settings models.UserSettings) error {
	log := logger.FromContext(ctx)

	if settings.Theme == "" {
		settings.Theme = models.DefaultTheme
	}
	if settings.Language == "" {
		settings.Language = models.DefaultLanguage
	}

	if err := s.settingsRepository.Upsert(ctx, settings); err != nil {
		log.Err(err).Int64("id", settings.UserID).Msg("settings update failed")
		return fmt.Errorf("settings update failed: %w", err)
	}

	return nil
}
