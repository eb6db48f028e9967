// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the explicitly constructed application context and the
// message strings shared by handlers and the server.
//
// An [App] is built once in main and handed to every constructor that needs
// configuration or logging, so nothing in the application reaches for
// package-level state. Tests build isolated instances with [New].
package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/be-api/internal/config"
	"github.com/MKhiriev/be-api/internal/logger"
	"github.com/MKhiriev/be-api/models"
)

var (
	// ErrNoConfig is returned by New when cfg is nil.
	ErrNoConfig = errors.New("no config provided")
	// ErrNoLogger is returned by New when log is nil.
	ErrNoLogger = errors.New("no logger provided")
)

// App is the process-wide, read-only application context.
type App struct {
	// Config is the merged and validated configuration.
	Config *config.StructuredConfig

	// Logger is the process-wide logger. Request handling prefers the
	// request-scoped logger and falls back to this one.
	Logger *logger.Logger

	// BuildInfo is the linker-injected build metadata.
	BuildInfo models.AppBuildInfo
}

// New builds an App. The logger's minimum level is set from
// cfg.Log.Level; the passed logger itself is not modified.
func New(cfg *config.StructuredConfig, log *logger.Logger, buildInfo models.AppBuildInfo) (*App, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	if log == nil {
		return nil, ErrNoLogger
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("error applying log level: %w", err)
	}

	return &App{
		Config:    cfg,
		Logger:    log.WithLevel(level),
		BuildInfo: buildInfo,
	}, nil
}

// LogBuildInfo writes the build metadata as a single log line.
func (a *App) LogBuildInfo() {
	a.Logger.Info().
		Str("build_version", a.BuildInfo.BuildVersion()).
		Str("build_date", a.BuildInfo.BuildDate()).
		Str("build_commit", a.BuildInfo.BuildCommit()).
		Msg(EventBuildInfo)
}
