package config

import (
	"fmt"
	"time"
)

// ClientGateway holds network settings used by the client transport layer.
type ClientGateway struct {
	// HTTPAddress is the base URL of the data service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound boundary requests.
	RequestTimeout time.Duration
}

// ClientWeather holds the weather provider settings the client fetches
// conditions with.
type ClientWeather struct {
	// APIKey authenticates requests to the weather API.
	APIKey string
	// BaseURL is the weather API root.
	BaseURL string
	// Units selects the measurement system ("metric" or "imperial").
	Units string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SnapshotInterval defines how often the snapshot worker runs.
	// Zero disables the worker.
	SnapshotInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Gateway contains client transport address and timeout.
	Gateway ClientGateway
	// Weather contains weather provider settings.
	Weather ClientWeather
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the presentation process, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Gateway: ClientGateway{
			HTTPAddress:    cfg.Gateway.HTTPAddress,
			RequestTimeout: cfg.Gateway.RequestTimeout,
		},
		Weather: ClientWeather{
			APIKey:  cfg.Weather.APIKey,
			BaseURL: cfg.Weather.BaseURL,
			Units:   cfg.Weather.Units,
		},
		Workers: ClientWorkers{SnapshotInterval: cfg.Workers.SnapshotInterval},
	}

	return clientCfg, clientCfg.validate()
}
