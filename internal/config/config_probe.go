package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// ProbeConfig is the configuration view used by the liveness probe CLI.
type ProbeConfig struct {
	// URL is the base URL of the service under probe.
	URL string
	// Timeout bounds every probe request.
	Timeout time.Duration
}

// GetProbeConfig builds and validates a probe-specific config view.
//
// Only the .env file and the environment are consulted; the probe binary
// has no flags of its own that overlap with the server's.
func GetProbeConfig() (*ProbeConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	probeCfg := newProbeConfig(cfg)

	return probeCfg, probeCfg.validate()
}

func newProbeConfig(cfg *StructuredConfig) *ProbeConfig {
	probeCfg := &ProbeConfig{
		URL:     cfg.Probe.URL,
		Timeout: cfg.Probe.Timeout,
	}

	if probeCfg.URL == "" {
		probeCfg.URL = "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.Server.Port))
	}

	return probeCfg
}
