package main

import (
	"fmt"

	"github.com/MKhiriev/next-holiday/internal/adapter"
	"github.com/MKhiriev/next-holiday/internal/config"
	"github.com/MKhiriev/next-holiday/internal/handler"
	"github.com/MKhiriev/next-holiday/internal/logger"
	"github.com/MKhiriev/next-holiday/internal/server"
	"github.com/MKhiriev/next-holiday/internal/service"
	"github.com/MKhiriev/next-holiday/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("next-holiday-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	provider := adapter.NewHTTPHolidayProvider(cfg.Provider, log)
	services := service.NewServices(provider, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
