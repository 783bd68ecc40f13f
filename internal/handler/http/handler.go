package http

import (
	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/service"
)

type Handler struct {
	manager service.SyncManager

	logger *logger.Logger
}

func NewHandler(manager service.SyncManager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http trigger handler created")
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}
