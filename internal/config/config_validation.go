// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// Fallbacks applied by applyDefaults when no source supplied a value.
const (
	defaultDriver         = "sqlite3"
	defaultDSN            = "meteostation.db"
	defaultHTTPAddress    = "127.0.0.1:8990"
	defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultWeatherUnits   = "metric"
	defaultTokenIssuer    = "meteostation"
)

// applyDefaults fills zero-valued fields of the merged config so that a bare
// `meteod` invocation works against a local sqlite file out of the box.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == defaultDriver {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = defaultWeatherBaseURL
	}
	if cfg.Weather.Units == "" {
		cfg.Weather.Units = defaultWeatherUnits
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Gateway.HTTPAddress == "" {
		cfg.Gateway.HTTPAddress = "http://" + cfg.Server.HTTPAddress
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Gateway.HTTPAddress == "" || !strings.HasPrefix(cfg.Gateway.HTTPAddress, "http") {
		return ErrInvalidGatewayConfigs
	}

	if cfg.Weather.APIKey == "" {
		return ErrInvalidWeatherConfigs
	}

	return nil
}
