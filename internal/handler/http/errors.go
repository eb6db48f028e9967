// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while handling a request. All of them end up in
// the terminal error handler; callers can match against them with [errors.Is].
var (
	// ErrMalformedJSON is returned by the JSON body stage when a JSON body
	// cannot be decoded or its top-level value is neither an object nor an
	// array.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrBodyTooLarge is returned when a JSON body exceeds the configured
	// limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrUnsupportedCharset is returned when a JSON body declares a charset
	// other than UTF-8.
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// ErrPanic wraps a value recovered from a panicking stage or endpoint.
	ErrPanic = errors.New("panic while handling request")

	// ErrNoEndpointResult is returned when the router finished without
	// running any endpoint.
	ErrNoEndpointResult = errors.New("router produced no result")
)
