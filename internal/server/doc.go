// Package server runs the HTTP API together with the background jobs and
// stops both on a termination signal.
package server
