package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates missing session token parameters on
	// the data service.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid datastore settings
	// (for example, an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGatewayConfigs indicates invalid client gateway settings
	// (for example, missing data service address).
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
	// ErrInvalidWeatherConfigs indicates invalid weather provider settings
	// required by the client (for example, missing API key).
	ErrInvalidWeatherConfigs = errors.New("invalid weather configuration")
)
