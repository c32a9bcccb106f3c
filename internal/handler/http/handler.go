package http

import (
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/service"
	"github.com/MKhiriev/go-content-sync/internal/utils"
	"github.com/MKhiriev/go-content-sync/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	ids       *utils.TraceIDs

	// signKey verifies X-Signature of clear-cache signals; empty disables it.
	signKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, signKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewSyncValidator(),
		ids:       utils.NewTraceIDs(),
		signKey:   signKey,
		logger:    logger,
	}
}
