// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/be-api/internal/app"
	"github.com/MKhiriev/be-api/internal/logger"
	"github.com/MKhiriev/be-api/models"
)

// handleError is the terminal error handler. It logs err with the
// request-scoped logger (the process logger when none is attached) and
// answers with the generic 500 body. Nothing from err reaches the client.
func (h *Handler) handleError(rc *RequestContext, err error) *Response {
	ctx := context.Background()
	if rc != nil && rc.Request != nil {
		ctx = rc.Request.Context()
	}

	logger.FromContextOr(ctx, h.logger).Error().Err(err).Msg(app.EventUnhandledError)

	return &Response{
		Status: http.StatusInternalServerError,
		Body:   models.ErrorResponse{Error: app.MsgSomethingWentWrong},
	}
}
