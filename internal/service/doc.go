// Package service contains the application logic behind the HTTP endpoints.
//
// There is no state and no persistence: [StatusService] builds the liveness
// and informational payloads, taking time from an injectable [Clock].
package service
