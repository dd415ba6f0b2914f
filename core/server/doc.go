// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from it; this package only
// defines the settings (listen port, API key, timeouts) so that core/config can
// embed them.
package server
