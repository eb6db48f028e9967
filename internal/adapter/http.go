package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/be-api/internal/config"
	"github.com/MKhiriev/be-api/internal/logger"
	"github.com/MKhiriev/be-api/internal/utils"
	"github.com/MKhiriev/be-api/models"
)

type httpStatusAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPStatusAdapter constructs an HTTP implementation of [StatusAdapter].
// It normalises and validates the base URL from cfg.URL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPStatusAdapter(cfg *config.ProbeConfig, logger *logger.Logger) (StatusAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid probe url: %w", err)
	}

	return &httpStatusAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Healthz implements [StatusAdapter].
func (h *httpStatusAdapter) Healthz(ctx context.Context) (models.Health, error) {
	var health models.Health

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/healthz")
	if err != nil {
		return health, fmt.Errorf("healthz request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return health, err
	}
	if !health.OK {
		return health, fmt.Errorf("healthz: %w", ErrUnhealthy)
	}

	h.logger.Debug().Dur("rtt", resp.Time()).Msg("healthz ok")
	return health, nil
}

// Ping implements [StatusAdapter].
func (h *httpStatusAdapter) Ping(ctx context.Context) (models.Pong, error) {
	var pong models.Pong

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&pong).
		Get("/ping")
	if err != nil {
		return pong, fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return pong, err
	}
	if !pong.Pong {
		return pong, fmt.Errorf("ping: %w", ErrUnhealthy)
	}
	if _, err = time.Parse(time.RFC3339Nano, pong.At); err != nil {
		return pong, fmt.Errorf("ping: %w: bad timestamp %q", ErrUnhealthy, pong.At)
	}

	h.logger.Debug().Dur("rtt", resp.Time()).Str("at", pong.At).Msg("ping ok")
	return pong, nil
}

// Root implements [StatusAdapter].
func (h *httpStatusAdapter) Root(ctx context.Context) (models.RootInfo, error) {
	var info models.RootInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/")
	if err != nil {
		return info, fmt.Errorf("root request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return info, err
	}

	return info, nil
}
