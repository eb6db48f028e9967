package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrEncodingJSON is returned by WriteJSON when data cannot be marshaled.
var ErrEncodingJSON = errors.New("error writing data to JSON")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and the
// "Content-Length" header, then writes the provided HTTP status code. For HEAD
// requests the body is omitted but the headers describe it as if it were sent.
//
// If marshaling fails, nothing is written to w and a wrapped error is
// returned, so the caller can still produce a different response.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	r          - the request being answered (its method decides whether a body is sent)
//	data       - any value to be serialized as JSON (struct, map, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling or the body write fails
//
// Example usage:
//
//	WriteJSON(w, r, models.Health{OK: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(jsonData)))
	w.WriteHeader(statusCode)

	if r != nil && r.Method == http.MethodHead {
		return 0, nil
	}

	return w.Write(jsonData)
}
