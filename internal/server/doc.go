// Package server wires and runs the application's HTTP server together with
// its background workers.
//
// It owns startup, signal handling, and graceful shutdown.
package server
