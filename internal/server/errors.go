// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated: handlers carried neither a router nor a health
	// handler.
	errNoServersAreCreated = errors.New("course-auth: no http or grpc handler to serve")
	errNoServersToRun      = errors.New("course-auth: server has nothing to run")
	errServerFailed        = errors.New("course-auth: server stopped serving")
)
