// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound sync and sync list requests before they
// reach the service layer.
package validators

import "context"

// Validator validates a request value. fields optionally restrict the check
// to the named fields; each implementation defines its own default set.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
