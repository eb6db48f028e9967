package service

import (
	"time"

	"github.com/MKhiriev/be-api/internal/app"
)

// Services aggregates every service used by the transport layer.
type Services struct {
	StatusService StatusService
}

// NewServices wires the services with the wall clock.
func NewServices(a *app.App) *Services {
	a.Logger.Info().Msg("creating new services...")

	return &Services{
		StatusService: NewStatusService(systemClock{}, a.Logger),
	}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
