// Package server runs the control API HTTP server and shuts it down
// gracefully when its context is cancelled.
package server
