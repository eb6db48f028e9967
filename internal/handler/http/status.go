package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/be-api/internal/app"
	"github.com/MKhiriev/be-api/models"
)

func (h *Handler) healthz(rc *RequestContext) (*Response, error) {
	health, err := h.services.StatusService.Health(rc.Request.Context())
	if err != nil {
		return nil, fmt.Errorf("healthz: %w", err)
	}

	return &Response{Status: http.StatusOK, Body: health}, nil
}

func (h *Handler) ping(rc *RequestContext) (*Response, error) {
	pong, err := h.services.StatusService.Ping(rc.Request.Context())
	if err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Response{Status: http.StatusOK, Body: pong}, nil
}

func (h *Handler) root(rc *RequestContext) (*Response, error) {
	info, err := h.services.StatusService.Root(rc.Request.Context())
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}

	return &Response{Status: http.StatusOK, Body: info}, nil
}

func (h *Handler) notFound(_ *RequestContext) (*Response, error) {
	return &Response{
		Status: http.StatusNotFound,
		Body:   models.ErrorResponse{Error: app.MsgNotFound},
	}, nil
}
