package service

import (
	"github.com/okramarenko/meteostation/internal/config"
	"github.com/okramarenko/meteostation/internal/crypto"
	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/store"
)

// Services bundles every domain service exposed to the transport layer.
type Services struct {
	AuthService     AuthService
	SettingsService SettingsService
	ReminderService ReminderService
	HistoryService  HistoryService
}

// NewServices wires all services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.BcryptCost)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.SettingsRepository, hasher, cfg, logger),
		SettingsService: NewSettingsService(storages.SettingsRepository, logger),
		ReminderService: NewReminderService(storages.ReminderRepository, logger),
		HistoryService:  NewHistoryService(storages.HistoryRepository, logger),
	}
}
