package adapter

import "errors"

var (
	// ErrUnsupportedNotify is returned for a notify kind no hook exists for.
	ErrUnsupportedNotify = errors.New("unsupported notify kind")

	// ErrMissingNotifyURL is returned when an http target has no notify url.
	ErrMissingNotifyURL = errors.New("target has no notify url")

	// ErrNotifyRejected wraps a 4xx answer of the target. It is not retried.
	ErrNotifyRejected = errors.New("target rejected notify")

	// ErrTargetUnavailable wraps 5xx, 408 and 429 answers.
	ErrTargetUnavailable = errors.New("target unavailable")
)
