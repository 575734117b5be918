// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config names no listen address,
// so the course-auth process would have nothing to serve.
var errNoHandlersAreCreated = errors.New("course-auth: neither http nor grpc address is configured")
