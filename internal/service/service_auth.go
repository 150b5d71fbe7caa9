package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okramarenko/meteostation/internal/config"
	"github.com/okramarenko/meteostation/internal/crypto"
	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/store"
	"github.com/okramarenko/meteostation/internal/utils"
	"github.com/okramarenko/meteostation/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, the JWT token
// lifecycle and the user's selected city, using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// settingsRepository supplies the settings row attached to the composite
	// user view returned on login.
	settingsRepository store.SettingsRepository

	// hasher turns plaintext passwords into salted hashes and verifies
	// login attempts.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	settingsRepository store.SettingsRepository,
	hasher crypto.PasswordHasher,
	cfg config.Auth,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:     userRepository,
		settingsRepository: settingsRepository,
		hasher:             hasher,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		logger:             logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that username, email and password are all non-empty, hashes
// the password with bcrypt, and delegates persistence to the UserRepository,
// which stores the account and its default settings atomically.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. the name or
//     email is already taken — see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that email and password are non-empty, looks up the account by
// email, and verifies the password against the stored bcrypt hash. On success
// the user's settings row is attached, so callers receive the composite view
// needed to initialise a session in one call.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidLoginPassword if the email is unknown or the password does
//     not match. Both failures collapse into this one value so the boundary
//     never reveals whether an account exists.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("email", req.Email).Msg("login with unknown email")
			return models.User{}, ErrInvalidLoginPassword
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := a.hasher.Verify(foundUser.PasswordHash, req.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Error().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
			return models.User{}, ErrInvalidLoginPassword
		}
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}

	settings, err := a.settingsRepository.Get(ctx, foundUser.ID)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("settings lookup failed")
		return models.User{}, fmt.Errorf("settings lookup failed: %w", err)
	}
	foundUser.Settings = &settings

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// City returns the user's currently selected city; empty when none was
// chosen yet.
func (a *authService) City(ctx context.Context, userID int64) (string, error) {
	city, err := a.userRepository.GetCity(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("city lookup failed: %w", err)
	}

	return city, nil
}

// UpdateCity stores city as the user's selected city.
//
// Returns ErrInvalidDataProvided when city is empty.
func (a *authService) UpdateCity(ctx context.Context, userID int64, city string) error {
	log := logger.FromContext(ctx)

	if city == "" {
		log.Error().Int64("id", userID).Msg("empty city provided")
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.UpdateCity(ctx, userID, city); err != nil {
		log.Err(err).Int64("id", userID).Str("city", city).Msg("city update failed")
		return fmt.Errorf("city update failed: %w", err)
	}

	return nil
}
