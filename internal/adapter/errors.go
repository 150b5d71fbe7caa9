package adapter

import "errors"

var (
	ErrNoCityProvided       = errors.New("no city provided")
	ErrCityNotFound         = errors.New("city not found")
	ErrProviderUnauthorized = errors.New("weather provider rejected the API key")
	ErrProviderUnavailable  = errors.New("weather provider unavailable")
)
