// Package server holds the HTTP server configuration.
//
// While the command line handles the server startup, this package defines the
// configuration structure for it: listen port, API key and timeouts.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to configure Fiber.
package server
