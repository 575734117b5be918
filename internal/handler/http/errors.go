// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidRequest is returned when a request body or query string cannot
// be bound to the expected request type.
var ErrInvalidRequest = errors.New("invalid request")
