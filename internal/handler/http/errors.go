// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request parsing layer. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidPathParam is returned when a numeric path segment such as
	// {module}, {area} or {page} does not parse.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidJSON is returned when a request body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoSession is returned when the request context carries no sync
	// session; the token had no jti.
	ErrNoSession = errors.New("no sync session in token")

	// ErrSignatureMismatch is returned when X-Signature does not match.
	ErrSignatureMismatch = errors.New("signature check failed")
)
