package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database/sql driver name (sqlite3, pgx)
//	-c/-config json file path with configs
//	-bcrypt-cost bcrypt work factor for password hashing
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token lifetime (e.g., "24h")
//	-request-timeout inbound request timeout (e.g., "30s")
//	-weather-api-key weather provider API key
//	-weather-base-url weather provider base URL
//	-weather-units weather provider units (metric, imperial)
//	-gateway-address data service base URL for the client
//	-gateway-timeout outbound boundary request timeout
//	-snapshot-interval client snapshot worker period (0 disables)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var bcryptCost int
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var weatherAPIKey string
	var weatherBaseURL string
	var weatherUnits string
	var gatewayAddress string
	var gatewayTimeout time.Duration
	var snapshotInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3, pgx)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor (0 = library default)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	flag.StringVar(&weatherAPIKey, "weather-api-key", "", "Weather provider API key")
	flag.StringVar(&weatherBaseURL, "weather-base-url", "", "Weather provider base URL")
	flag.StringVar(&weatherUnits, "weather-units", "", "Weather provider units")
	flag.StringVar(&gatewayAddress, "gateway-address", "", "Data service base URL")
	flag.DurationVar(&gatewayTimeout, "gateway-timeout", 0, "Boundary request timeout")
	flag.DurationVar(&snapshotInterval, "snapshot-interval", 0, "Snapshot worker period (0 disables)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			BcryptCost:    bcryptCost,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Weather: Weather{
			APIKey:  weatherAPIKey,
			BaseURL: weatherBaseURL,
			Units:   weatherUnits,
		},
		Gateway: Gateway{
			HTTPAddress:    gatewayAddress,
			RequestTimeout: gatewayTimeout,
		},
		Workers:      Workers{SnapshotInterval: snapshotInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
