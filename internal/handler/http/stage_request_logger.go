package http

import "github.com/rs/zerolog"

const requestIDHeader = "X-Request-ID"

// attachRequestLogger gives the request its own id and a child logger
// carrying it. The logger is stored both on the RequestContext and in the
// request's context.Context, so code below can use logger.FromContextOr.
// The id is generated, never taken from the request.
func (h *Handler) attachRequestLogger(rc *RequestContext) (*Response, error) {
	requestID := h.requestIDs.Generate()

	l := rc.Logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})

	rc.Request = rc.Request.WithContext(l.WithContext(rc.Request.Context()))
	rc.Logger = l
	rc.RequestID = requestID

	rc.Header.Set(requestIDHeader, requestID)
	return nil, nil
}
