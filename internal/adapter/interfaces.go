// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the be-api HTTP interface.
//
// The primary abstraction is [StatusAdapter], which the liveness probe uses
// to call the status endpoints of a running instance. The package ships an
// HTTP implementation built on resty ([NewHTTPStatusAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/be-api/models"
)

// StatusAdapter calls the status endpoints of a be-api instance.
type StatusAdapter interface {
	// Healthz calls GET /healthz. It fails unless the instance answers 200
	// with ok set to true.
	Healthz(ctx context.Context) (models.Health, error)

	// Ping calls GET /ping. It fails unless the instance answers 200 with
	// pong set to true and a parseable timestamp.
	Ping(ctx context.Context) (models.Pong, error)

	// Root calls GET / and returns the service description.
	Root(ctx context.Context) (models.RootInfo, error)
}
