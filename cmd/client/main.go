package main

import (
	"fmt"

	"github.com/okramarenko/meteostation/internal/adapter"
	"github.com/okramarenko/meteostation/internal/client"
	"github.com/okramarenko/meteostation/internal/config"
	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("meteo-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gateway, err := client.NewHTTPGateway(cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway")
	}

	weather, err := adapter.NewWeatherProvider(cfg.Weather, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create weather provider")
	}

	ui := tui.New(gateway, weather)

	app, err := client.NewApp(gateway, weather, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
