// Package server runs the HTTP transport of a service binary.
//
// It owns the listener lifecycle: startup, stop-signal handling and graceful
// shutdown with a bounded drain period.
package server
