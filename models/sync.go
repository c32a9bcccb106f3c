// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncKind selects which timestamp field of a sync state is stamped.
type SyncKind string

const (
	SyncFull SyncKind = "full"
	SyncIncr SyncKind = "incr"
)

// AllTablesSentinel is the table name of the sync state row that applies to every table.
const AllTablesSentinel = "*"

// SyncState is the persisted sync watermark of a table (RowUID 0) or of a single row.
type SyncState struct {
	Table    string
	RowUID   int64
	Full     int64
	Incr     int64
	CRUserID int64
}

// LastTime returns the later of the full and incremental stamps.
func (s SyncState) LastTime() int64 {
	return max(s.Full, s.Incr)
}

// LastKind reports which of the two stamps is the latest one.
func (s SyncState) LastKind() SyncKind {
	if s.Full > s.Incr {
		return SyncFull
	}
	return SyncIncr
}

// TableStats is the merged sync state of a table shown to editors.
type TableStats struct {
	Table    string    `json:"table"`
	Full     int64     `json:"full"`
	Incr     int64     `json:"incr"`
	LastTime time.Time `json:"last_time,omitzero"`
	LastType SyncKind  `json:"last_type,omitempty"`
	LastUser int64     `json:"last_user"`
}
