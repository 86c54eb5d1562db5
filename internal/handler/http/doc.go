// Package http implements the HTTP transport layer of the users, routes and
// posts services.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, request tracing, access logging and response
// compression are handled in this package before requests are delegated to
// the service layer. Every error response is a JSON object with an "error"
// field.
package http
