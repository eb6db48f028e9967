package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/be-api/internal/logger"
)

// RequestContext is the per-request state shared by stages and endpoints.
// It is owned by a single in-flight request and discarded once the response
// is written.
type RequestContext struct {
	// Request is the inbound request. Stages may replace it (e.g. to attach
	// values to its context).
	Request *http.Request

	// Header is the response header set.
	Header http.Header

	// Body is the decoded JSON body, nil when the request carried none.
	Body any

	// Logger is the logger for this request. Until the request logger
	// stage runs it is the process-wide logger.
	Logger *logger.Logger

	// RequestID correlates every log line of this request.
	RequestID string

	writer  http.ResponseWriter
	started time.Time

	routed   bool
	response *Response
	err      error
}

// Response is what a stage or endpoint asks the dispatcher to send. A nil
// Body sends the status line and headers only.
type Response struct {
	Status int
	Body   any
}

// Stage is one step of the pipeline run before routing. It returns a
// non-nil response to short-circuit the pipeline, or an error to divert the
// request to the error handler. (nil, nil) continues with the next stage.
type Stage func(rc *RequestContext) (*Response, error)

// Endpoint produces the response of a matched route.
type Endpoint func(rc *RequestContext) (*Response, error)

// ErrorHandler converts any failure into the response sent to the client.
type ErrorHandler func(rc *RequestContext, err error) *Response

func newRequestContext(w http.ResponseWriter, r *http.Request, log *logger.Logger) *RequestContext {
	return &RequestContext{
		Request: r,
		Header:  w.Header(),
		Logger:  log,
		writer:  w,
		started: time.Now(),
	}
}

type requestContextKey struct{}

func withRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

func requestContextFrom(r *http.Request) (*RequestContext, bool) {
	rc, ok := r.Context().Value(requestContextKey{}).(*RequestContext)
	return rc, ok
}

// endpoint adapts fn to an http.HandlerFunc for the router. The result is
// stored on the RequestContext and written by the dispatcher, so the router
// only works behind a [Dispatcher].
func endpoint(fn Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc, ok := requestContextFrom(r)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		rc.Request = r
		rc.routed = true
		rc.response, rc.err = fn(rc)
	}
}
