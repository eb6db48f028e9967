package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/be-api/internal/app"
	"github.com/MKhiriev/be-api/internal/config"
	"github.com/MKhiriev/be-api/internal/handler"
	"github.com/MKhiriev/be-api/internal/logger"
	"github.com/MKhiriev/be-api/internal/server"
	"github.com/MKhiriev/be-api/internal/service"
	"github.com/MKhiriev/be-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("be-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	srv, err := newServer(cfg, log, buildInfo)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

// newServer builds the app context and every layer on top of it.
func newServer(cfg *config.StructuredConfig, log *logger.Logger, buildInfo models.AppBuildInfo) (server.Server, error) {
	a, err := app.New(cfg, log, buildInfo)
	if err != nil {
		return nil, fmt.Errorf("error creating app context: %w", err)
	}
	a.LogBuildInfo()

	a.Logger.Debug().Any("config", cfg).Msg("received configs")

	services := service.NewServices(a)

	handlers, err := handler.NewHandlers(services, a)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	return server.NewServer(handlers, a)
}
