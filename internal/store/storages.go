package store

import "github.com/okramarenko/meteostation/internal/logger"

// Storages bundles every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository     UserRepository
	SettingsRepository SettingsRepository
	ReminderRepository ReminderRepository
	HistoryRepository  HistoryRepository
}

// NewStorages wires all repositories to the given connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		SettingsRepository: NewSettingsRepository(db, log),
		ReminderRepository: NewReminderRepository(db, log),
		HistoryRepository:  NewHistoryRepository(db, log),
	}
}
