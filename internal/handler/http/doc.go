// Package http implements the HTTP transport layer of the next-holiday
// server.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, panic recovery and request timeouts are handled in this
// package before requests are delegated to the service layer.
package http
