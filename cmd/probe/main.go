// Command probe checks that a be-api instance is alive. It calls GET /healthz
// and GET /ping and exits 0 when both succeed, 1 otherwise, which makes it
// usable as a container HEALTHCHECK in images without curl.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/be-api/internal/adapter"
	"github.com/MKhiriev/be-api/internal/config"
	"github.com/MKhiriev/be-api/internal/logger"
	"github.com/MKhiriev/be-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("be-api-probe")
	cfg, err := config.GetProbeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	statusAdapter, err := adapter.NewHTTPStatusAdapter(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating status adapter")
	}

	if err = probe(context.Background(), statusAdapter); err != nil {
		log.Fatal().Err(err).Str("url", cfg.URL).Msg("probe failed")
	}

	log.Info().
		Str("url", cfg.URL).
		Str("version", buildInfo.BuildVersion()).
		Msg("probe succeeded")
}

func probe(ctx context.Context, statusAdapter adapter.StatusAdapter) error {
	if _, err := statusAdapter.Healthz(ctx); err != nil {
		return fmt.Errorf("healthz: %w", err)
	}
	if _, err := statusAdapter.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
