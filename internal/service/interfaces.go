package service

import (
	"context"
	"time"

	"github.com/MKhiriev/be-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// StatusService answers the liveness and informational endpoints.
// Every method fails only when ctx is already done.
type StatusService interface {
	// Health reports that the process is up.
	Health(ctx context.Context) (models.Health, error)
	// Ping reports that the process is up together with the handling time.
	Ping(ctx context.Context) (models.Pong, error)
	// Root describes the service and lists the probe paths.
	Root(ctx context.Context) (models.RootInfo, error)
}

// Clock is the time source used for response timestamps.
type Clock interface {
	Now() time.Time
}
