package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/be-api/internal/app"
	"github.com/MKhiriev/be-api/internal/logger"
	"github.com/MKhiriev/be-api/models"
)

type statusService struct {
	clock Clock

	logger *logger.Logger
}

func NewStatusService(clock Clock, logger *logger.Logger) StatusService {
	return &statusService{
		clock:  clock,
		logger: logger,
	}
}

func (s *statusService) Health(ctx context.Context) (models.Health, error) {
	if err := s.checkContext(ctx); err != nil {
		return models.Health{}, err
	}

	return models.Health{OK: true}, nil
}

func (s *statusService) Ping(ctx context.Context) (models.Pong, error) {
	if err := s.checkContext(ctx); err != nil {
		return models.Pong{}, err
	}

	return models.Pong{
		Pong: true,
		At:   s.clock.Now().UTC().Format(models.ISO8601Millis),
	}, nil
}

func (s *statusService) Root(ctx context.Context) (models.RootInfo, error) {
	if err := s.checkContext(ctx); err != nil {
		return models.RootInfo{}, err
	}

	return models.RootInfo{
		Message: app.MsgGreeting,
		Docs:    slices.Clone(app.Docs),
	}, nil
}

// checkContext fails once ctx is done. The line goes to the request-scoped
// logger when ctx carries one.
func (s *statusService) checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		logger.FromContextOr(ctx, s.logger).Debug().Err(err).Msg("request context done before building payload")
		return fmt.Errorf("%w: %w", ErrRequestCanceled, err)
	}
	return nil
}
