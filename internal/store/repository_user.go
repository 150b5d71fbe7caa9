package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account together with its default settings row in
// a single transaction, so no account can exist without settings. It returns
// the fully populated [models.User] with server-assigned fields (ID,
// CreatedAt) and the settings attached.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.City)

	// create user in db
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.City, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// every account starts with default settings
	settings := models.DefaultSettings(user.ID)
	if _, err := tx.ExecContext(ctx, createDefaultSettings, settings.UserID, settings.Theme, settings.Language); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting default settings")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	user.Settings = &settings
	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// one. Emails are unique, so at most one row can match.
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.City, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// GetCity returns the user's currently selected city, which may be empty if
// none was chosen yet.
func (r *userRepository) GetCity(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	var city string
	row := r.db.QueryRowContext(ctx, getUserCity, userID)

	if err := row.Scan(&city); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.GetCity").Msg("error: scanning error")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return city, nil
}

// UpdateCity stores city as the user's selected city.
//
// Error handling:
//   - no row updated → [ErrUserNotFound].
func (r *userRepository) UpdateCity(ctx context.Context, userID int64, city string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserCity, city, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCity").Msg("error: executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
