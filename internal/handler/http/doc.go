// Package http implements the HTTP transport layer of the service.
//
// It exposes route wiring, request handlers, and middleware for the account
// API. Request tracing, access logging, metrics, panic recovery and request
// timeouts are handled in this package before requests are delegated to the
// service layer. Service errors are translated to status codes in one table
// (see errors_mapper.go).
package http
