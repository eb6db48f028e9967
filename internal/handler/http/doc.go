// Package http implements the HTTP transport layer of the application.
//
// Requests enter a [Dispatcher], which runs an explicit, ordered list of
// stages (request logger, security headers, CORS, JSON body), then resolves
// the endpoint with a chi router. Stages and endpoints return
// (*Response, error): a response short-circuits, an error is handed to a
// single terminal error handler that answers with a generic 500. The
// dispatcher is the only component that writes to the client.
package http
