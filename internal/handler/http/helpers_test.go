package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/be-api/internal/app"
	"github.com/MKhiriev/be-api/internal/config"
	"github.com/MKhiriev/be-api/internal/logger"
	"github.com/MKhiriev/be-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// clockFunc adapts a function to service.Clock.
type clockFunc func() time.Time

func (f clockFunc) Now() time.Time { return f() }

// newTestApp builds an isolated app whose logger writes into buf.
func newTestApp(buf *bytes.Buffer) *app.App {
	return &app.App{
		Config: &config.StructuredConfig{
			Server: config.Server{Port: 8080, MaxBodyBytes: 1024},
			Log:    config.Log{Level: "info"},
		},
		Logger: logger.New(buf, "test", zerolog.InfoLevel),
	}
}

// newTestHandler wires a Handler with the real status service and the wall
// clock.
func newTestHandler(t *testing.T, buf *bytes.Buffer) *Handler {
	t.Helper()
	a := newTestApp(buf)
	services := &service.Services{
		StatusService: service.NewStatusService(clockFunc(time.Now), a.Logger),
	}
	return NewHandler(services, a)
}

func newTestRouter(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return newTestHandler(t, &buf).Init(), &buf
}

func doRequest(h http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// logEntries decodes every JSON line written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

// findEntry returns the first log entry with the given message.
func findEntry(entries []map[string]any, message string) map[string]any {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

const genericErrorBody = `{"error":"Something went wrong. We're on it."}`
