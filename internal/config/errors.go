package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a port outside 1..65535 or a non-positive body limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidProbeConfigs indicates invalid probe settings
	// (for example, a URL without scheme or host, or a zero timeout).
	ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
)
