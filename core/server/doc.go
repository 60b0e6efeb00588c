// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber app lifecycle; this package only defines the
// listen port and the timeouts and limits applied to it.
package server
