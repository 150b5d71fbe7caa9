package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidLoginPassword covers every credential failure on login:
	// unknown email and wrong password produce the same value, so callers
	// cannot tell whether an account exists.
	ErrInvalidLoginPassword = errors.New("invalid login/password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidDateProvided = errors.New("invalid date provided")
)
