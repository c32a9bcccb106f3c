// Package http implements the REST API of the sync engine: sync runs, module
// and target locks, the per-session sync lists and the clear-cache receiver.
//
// Requests pass through trace id, access log and gzip middleware; everything
// under /api except /api/version requires a bearer token.
package http
