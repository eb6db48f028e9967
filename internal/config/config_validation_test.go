package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().validate())
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{"port zero", func(c *StructuredConfig) { c.Server.Port = 0 }, ErrInvalidServerConfigs},
		{"port negative", func(c *StructuredConfig) { c.Server.Port = -1 }, ErrInvalidServerConfigs},
		{"port too large", func(c *StructuredConfig) { c.Server.Port = 70000 }, ErrInvalidServerConfigs},
		{"zero body limit", func(c *StructuredConfig) { c.Server.MaxBodyBytes = 0 }, ErrInvalidServerConfigs},
		{"negative timeout", func(c *StructuredConfig) { c.Server.ShutdownTimeout = -time.Second }, ErrInvalidServerConfigs},
		{"unknown level", func(c *StructuredConfig) { c.Log.Level = "verbose" }, ErrInvalidLogConfigs},
		{"empty level", func(c *StructuredConfig) { c.Log.Level = "" }, ErrInvalidLogConfigs},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			assert.ErrorIs(t, cfg.validate(), tc.want)
		})
	}
}

func TestValidate_ReportsEveryGroup(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Log.Level = "loud"

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

func TestServer_Address(t *testing.T) {
	assert.Equal(t, ":8080", Server{Port: 8080}.Address())
	assert.Equal(t, "127.0.0.1:9000", Server{Host: "127.0.0.1", Port: 9000}.Address())
	assert.Equal(t, "[::1]:9000", Server{Host: "::1", Port: 9000}.Address())
}

func TestNewProbeConfig_DefaultURLFromPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 9300
	cfg.Probe.Timeout = time.Second

	probe := newProbeConfig(cfg)

	assert.Equal(t, "http://127.0.0.1:9300", probe.URL)
	assert.Equal(t, time.Second, probe.Timeout)
	assert.NoError(t, probe.validate())
}

func TestNewProbeConfig_ExplicitURL(t *testing.T) {
	cfg := validConfig()
	cfg.Probe.URL = "https://api.internal"
	cfg.Probe.Timeout = time.Second

	assert.Equal(t, "https://api.internal", newProbeConfig(cfg).URL)
}

func TestProbeConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProbeConfig
		ok   bool
	}{
		{"valid", ProbeConfig{URL: "http://127.0.0.1:8080", Timeout: time.Second}, true},
		{"no scheme", ProbeConfig{URL: "127.0.0.1:8080", Timeout: time.Second}, false},
		{"ftp", ProbeConfig{URL: "ftp://host", Timeout: time.Second}, false},
		{"no host", ProbeConfig{URL: "http://", Timeout: time.Second}, false},
		{"zero timeout", ProbeConfig{URL: "http://host", Timeout: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidProbeConfigs)
		})
	}
}

func TestGetProbeConfig_FromEnv(t *testing.T) {
	unsetEnv(t, allEnvKeys...)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9400")
	t.Setenv("PROBE_TIMEOUT", "1s")

	cfg, err := GetProbeConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9400", cfg.URL)
	assert.Equal(t, time.Second, cfg.Timeout)
}
