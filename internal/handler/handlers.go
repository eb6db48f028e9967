package handler

import (
	"github.com/MKhiriev/be-api/internal/app"
	"github.com/MKhiriev/be-api/internal/handler/http"
	"github.com/MKhiriev/be-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, a *app.App) (*Handlers, error) {
	a.Logger.Info().Msg("creating new handlers...")

	if services == nil || services.StatusService == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, a),
	}, nil
}
