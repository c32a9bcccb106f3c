// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var errEnv = errors.New("invalid environment")

// readEnv builds the env layer of the configuration. A non-nil environ
// replaces the process environment. Every malformed variable is reported,
// not only the first one.
func readEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err == nil {
		return &cfg, nil
	}

	var agg env.AggregateError
	if errors.As(err, &agg) {
		return nil, fmt.Errorf("%w: %w", errEnv, errors.Join(agg.Errors...))
	}
	return nil, fmt.Errorf("%w: %w", errEnv, err)
}
