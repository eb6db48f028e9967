// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrBind is returned by RunServer when the listening socket cannot be
	// bound (address in use, permission denied, bad address).
	ErrBind = errors.New("error binding listener")

	// ErrServe is returned by RunServer when serving stops for any reason
	// other than a requested shutdown.
	ErrServe = errors.New("error serving HTTP")
)
