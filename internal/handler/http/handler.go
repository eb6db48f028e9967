package http

import (
	"github.com/MKhiriev/be-api/internal/app"
	"github.com/MKhiriev/be-api/internal/logger"
	"github.com/MKhiriev/be-api/internal/service"
	"github.com/MKhiriev/be-api/internal/utils"
)

// Handler owns the HTTP surface of the API.
type Handler struct {
	services   *service.Services
	requestIDs *utils.RequestIDGenerator

	maxBodyBytes int64

	logger *logger.Logger
}

// NewHandler builds a Handler from the services and the app context. The
// JSON body limit is taken from the server configuration.
func NewHandler(services *service.Services, a *app.App) *Handler {
	a.Logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		requestIDs:   utils.NewRequestIDGenerator(),
		maxBodyBytes: a.Config.Server.MaxBodyBytes,
		logger:       a.Logger,
	}
}
