package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/be-api/internal/app"
	"github.com/MKhiriev/be-api/internal/logger"
	"github.com/MKhiriev/be-api/internal/utils"
)

// Dispatcher is the front controller: it runs the stages in order, hands the
// request to the router and writes exactly one response.
type Dispatcher struct {
	stages  []Stage
	router  http.Handler
	onError ErrorHandler

	logger *logger.Logger
}

// NewDispatcher composes stages in the given order in front of router.
// Endpoints registered on router must be wrapped with endpoint. log is the
// process-wide logger used until a stage attaches a request-scoped one.
func NewDispatcher(router http.Handler, onError ErrorHandler, log *logger.Logger, stages ...Stage) *Dispatcher {
	return &Dispatcher{
		stages:  stages,
		router:  router,
		onError: onError,
		logger:  log,
	}
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rc := newRequestContext(w, r, d.logger)

	resp, err := d.dispatch(rc)
	if err != nil {
		resp = d.onError(rc, err)
	}

	status, err := d.write(rc, resp)
	if errors.Is(err, utils.ErrEncodingJSON) {
		status, err = d.write(rc, d.onError(rc, err))
	}
	if err != nil {
		rc.Logger.Debug().Err(err).Msg("error writing response")
	}

	d.logAccess(rc, status)
}

// dispatch runs the stages and the router. A panic anywhere below is
// recovered into an error; http.ErrAbortHandler is re-raised so net/http can
// abort the connection.
func (d *Dispatcher) dispatch(rc *RequestContext) (resp *Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			resp, err = nil, fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	for _, stage := range d.stages {
		stageResp, stageErr := stage(rc)
		if stageErr != nil {
			return nil, stageErr
		}
		if stageResp != nil {
			return stageResp, nil
		}
	}

	r := rc.Request
	d.router.ServeHTTP(rc.writer, r.WithContext(withRequestContext(r.Context(), rc)))

	if !rc.routed || (rc.response == nil && rc.err == nil) {
		return nil, ErrNoEndpointResult
	}

	return rc.response, rc.err
}

func (d *Dispatcher) write(rc *RequestContext, resp *Response) (int, error) {
	if resp.Body == nil {
		rc.writer.WriteHeader(resp.Status)
		return resp.Status, nil
	}

	_, err := utils.WriteJSON(rc.writer, rc.Request, resp.Body, resp.Status)
	return resp.Status, err
}

// logAccess writes the single access line of the request. Only method, path
// (without query), status and duration are recorded.
func (d *Dispatcher) logAccess(rc *RequestContext, status int) {
	event := rc.Logger.Info()
	if status >= http.StatusInternalServerError {
		event = rc.Logger.Error()
	}

	event.
		Str("method", rc.Request.Method).
		Str("path", rc.Request.URL.Path).
		Int("status", status).
		Dur("duration", time.Since(rc.started)).
		Msg(app.EventRequestCompleted)
}
