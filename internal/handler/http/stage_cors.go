package http

import "net/http"

const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET,POST,PUT,PATCH,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type,Authorization"
)

// applyCORS allows every origin on every response.
// TODO: replace the wildcard origin with an allow-list before exposing the
// API to browsers outside our own origins.
//
// Any OPTIONS request is treated as a preflight and answered here with 204,
// without reaching the router.
func applyCORS(rc *RequestContext) (*Response, error) {
	rc.Header.Set("Access-Control-Allow-Origin", corsAllowOrigin)
	rc.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	rc.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)

	if rc.Request.Method == http.MethodOptions {
		rc.Header.Set("Content-Length", "0")
		return &Response{Status: http.StatusNoContent}, nil
	}

	return nil, nil
}
