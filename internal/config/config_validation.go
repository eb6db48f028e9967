// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/be-api/internal/logger"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every violation is
// reported; the returned error matches the sentinel of each failed group.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: port %d is outside 1..65535", ErrInvalidServerConfigs, cfg.Server.Port))
	}

	if cfg.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("%w: max body bytes must be positive", ErrInvalidServerConfigs))
	}

	if cfg.Server.ReadHeaderTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs))
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
	}

	return errors.Join(errs...)
}

func (cfg *ProbeConfig) validate() error {
	u, err := url.Parse(cfg.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: bad url %q", ErrInvalidProbeConfigs, cfg.URL)
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidProbeConfigs)
	}

	return nil
}
