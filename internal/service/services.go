// Package service implements the business logic of the next-holiday server:
// validating country codes and finding the next holiday shared by two
// countries. All holiday data is obtained through an injected
// [adapter.HolidayProvider].
package service

import (
	"github.com/MKhiriev/next-holiday/internal/adapter"
	"github.com/MKhiriev/next-holiday/internal/config"
	"github.com/MKhiriev/next-holiday/internal/logger"
	"github.com/MKhiriev/next-holiday/models"
)

type Services struct {
	AppInfoService AppInfoService
	CountryService CountryService
	HolidayService HolidayService
}

func NewServices(provider adapter.HolidayProvider, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
		CountryService: NewCountryService(provider, logger),
		HolidayService: NewHolidayService(provider, logger),
	}
}
