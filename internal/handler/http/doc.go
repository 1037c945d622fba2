// Package http implements the HTTP transport layer of the volcano API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as optional bearer authentication, request
// tracing, access logging and response compression are handled in this
// package before requests are delegated to the service layer. Every failure
// leaves the package as the {"error": true, "message": ...} envelope.
package http
