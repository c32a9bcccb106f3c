// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the outbound notify hooks that tell a target
// environment a new sync artifact is waiting for import.
//
// Three hook kinds exist, selected per target by [models.Target.Notify]:
//   - http: a signed JSON POST to the target's notify url, retried with
//     exponential backoff and bounded per attempt.
//   - urlfile: a "<YmdHis>-once.txt" file listing the clear-cache urls is
//     written into the target's url directory for the import job to pick up.
//   - none: nothing is signalled.
//
// [NewNotifier] returns a dispatcher choosing the hook for each target.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-content-sync/internal/blob"
	"github.com/MKhiriev/go-content-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier tells a target that a new artifact arrived. urls are the
// clear-cache urls the target should call after the import.
type Notifier interface {
	Notify(ctx context.Context, target models.Target, urls []string) error
}

// Retractor takes back what Notify left on a target for urls. Hooks that
// leave nothing behind do not implement it.
type Retractor interface {
	Retract(ctx context.Context, target models.Target, urls []string) error
}

// URLFiles is the part of the blob store the url-file hook works on.
type URLFiles interface {
	AppendContents(name string, data []byte) error
	GetContents(name string) ([]byte, error)
	SetContents(name string, data []byte) error
	DeleteFile(name string) error
	ListFiles(dir string) ([]blob.FileInfo, error)
}
