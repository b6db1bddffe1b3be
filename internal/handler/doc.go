// Package handler implements HTTP request handlers.
//
// This package provides HTTP endpoints for:
// - /: greeting message followed by the running version
// - /health: health check endpoint reporting the version as JSON
// - /secret: the configured API key
//
// Every response is derived from the configuration loaded at startup, so
// identical requests always get identical responses.
package handler
