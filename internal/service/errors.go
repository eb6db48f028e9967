// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// ErrRequestCanceled is returned when the caller's context is already done
// before a payload is built.
var ErrRequestCanceled = errors.New("request canceled")
