// Package app provides application initialization and lifecycle management.
//
// The App type wires the configuration into the HTTP handler and manages:
// - Listening on the configured address
// - HTTP server lifecycle
// - Graceful shutdown on SIGINT/SIGTERM or context cancellation
package app
