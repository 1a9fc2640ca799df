package http

import (
	"github.com/MKhiriev/next-holiday/internal/config"
	"github.com/MKhiriev/next-holiday/internal/logger"
	"github.com/MKhiriev/next-holiday/internal/service"
	"github.com/MKhiriev/next-holiday/internal/utils"
	"github.com/MKhiriev/next-holiday/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	traceIDs  *utils.TraceIDGenerator

	cfg    config.Server
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewNextHolidayValidator(),
		traceIDs:  utils.NewTraceIDGenerator(),
		cfg:       cfg,
		logger:    logger,
	}
}
