package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// GET /healthz
// ─────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/healthz", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

// ─────────────────────────────────────────────
// GET /ping
// ─────────────────────────────────────────────

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)

	before := time.Now().Truncate(time.Millisecond)
	rec := doRequest(router, http.MethodGet, "/ping", nil, nil)
	after := time.Now()

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Pong bool   `json:"pong"`
		At   string `json:"at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Pong)

	at, err := time.Parse(time.RFC3339Nano, body.At)
	require.NoError(t, err, "at must be ISO-8601: %s", body.At)
	assert.True(t, strings.HasSuffix(body.At, "Z"))
	assert.False(t, at.Before(before), "at %v before %v", at, before)
	assert.False(t, at.After(after), "at %v after %v", at, after)
}

// ─────────────────────────────────────────────
// GET /
// ─────────────────────────────────────────────

func TestRoot(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string   `json:"message"`
		Docs    []string `json:"docs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"/healthz", "/ping"}, body.Docs)
	assert.NotEmpty(t, body.Message)
}

// ─────────────────────────────────────────────
// Repeated requests
// ─────────────────────────────────────────────

func TestRepeatedRequestsAreByteIdentical(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		method  string
		path    string
		body    string
		headers map[string]string
	}{
		{http.MethodGet, "/healthz", "", nil},
		{http.MethodGet, "/", "", nil},
		{http.MethodGet, "/missing", "", nil},
		{http.MethodPost, "/", "{broken", map[string]string{"Content-Type": "application/json"}},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			first := doRequest(router, tc.method, tc.path, strings.NewReader(tc.body), tc.headers)
			for i := 0; i < 5; i++ {
				next := doRequest(router, tc.method, tc.path, strings.NewReader(tc.body), tc.headers)
				assert.Equal(t, first.Code, next.Code)
				assert.Equal(t, first.Body.String(), next.Body.String())
			}
		})
	}
}

func TestPing_RepeatedDifferOnlyInTimestamp(t *testing.T) {
	router, _ := newTestRouter(t)

	var bodies []map[string]any
	for i := 0; i < 3; i++ {
		rec := doRequest(router, http.MethodGet, "/ping", nil, nil)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		delete(body, "at")
		bodies = append(bodies, body)
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

// ─────────────────────────────────────────────
// Not found
// ─────────────────────────────────────────────

func TestUnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/nonexistent", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"error":"Not Found"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

// TestWrongMethodReturns404 verifies that a registered path with an
// unregistered method is indistinguishable from an unknown path.
func TestWrongMethodReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := doRequest(router, method, "/healthz", nil, nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, `{"error":"Not Found"}`, rec.Body.String())
		})
	}
}

func TestTrailingSlashIsIgnored(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/healthz/", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}

func TestHeadOnGetRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/ping", "/"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(router, http.MethodHead, path, nil, nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.NotEmpty(t, rec.Header().Get("Content-Length"))
		})
	}
}

// ─────────────────────────────────────────────
// Full pipeline
// ─────────────────────────────────────────────

func TestEveryResponseCarriesPipelineHeaders(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/ping", "/", "/missing"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(router, http.MethodGet, path, nil, nil)

			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
			assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
		})
	}
}

func TestJSONBodyOnKnownRouteIsAccepted(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/healthz", strings.NewReader(`{"probe":"k8s"}`),
		map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}

func TestMalformedJSONReturnsGeneric500(t *testing.T) {
	router, buf := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/", strings.NewReader(`{"unterminated": `),
		map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, genericErrorBody, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "goroutine")
	assert.NotContains(t, rec.Body.String(), "unexpected end")

	entry := findEntry(logEntries(t, buf), "unhandled_error")
	require.NotNil(t, entry, "expected an unhandled_error log line")
	assert.Equal(t, "error", entry["level"])
	assert.Contains(t, entry["error"], "malformed JSON body")
}

func TestOversizedJSONReturnsGeneric500(t *testing.T) {
	router, buf := newTestRouter(t)
	big := `{"data":"` + strings.Repeat("x", 2048) + `"}`

	rec := doRequest(router, http.MethodPost, "/", strings.NewReader(big),
		map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, genericErrorBody, rec.Body.String())

	entry := findEntry(logEntries(t, buf), "unhandled_error")
	require.NotNil(t, entry)
	assert.Contains(t, entry["error"], "request body too large")
}

func TestPreflightNeverReachesRouter(t *testing.T) {
	router, buf := newTestRouter(t)

	rec := doRequest(router, http.MethodOptions, "/does-not-exist", nil, map[string]string{
		"Origin":                        "https://app.example",
		"Access-Control-Request-Method": "DELETE",
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, corsAllowMethods, rec.Header().Get("Access-Control-Allow-Methods"))

	access := findEntry(logEntries(t, buf), "request completed")
	require.NotNil(t, access)
	assert.EqualValues(t, http.StatusNoContent, access["status"])
}
