// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes request id generation, JSON response writing and HTTP client
// initialization.
package utils

import "github.com/google/uuid"

// RequestIDGenerator produces identifiers used to correlate log lines of a
// single request.
type RequestIDGenerator struct {
}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 if the v7
// generator fails.
func (g *RequestIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
