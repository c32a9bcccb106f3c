// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TargetAll selects every configured target.
const TargetAll = "all"

// SyncRequest carries everything one sync run needs to know about the caller.
// It is built once per request and threaded through every sync component.
type SyncRequest struct {
	// ModuleID selects the sync module kind.
	ModuleID int `json:"module_id"`

	// Target is a target name or [TargetAll].
	Target string `json:"target"`

	// ForceFull ignores sync watermarks and dumps every row.
	ForceFull bool `json:"force_full"`

	// DeleteObsolete appends the obsolete-row cleanup block.
	DeleteObsolete bool `json:"delete_obsolete"`

	// UserID is the acting backend user, 0 for system runs.
	UserID int64 `json:"-"`

	// AccessLevel is the acting user's access level (100 = admin).
	AccessLevel int `json:"-"`

	// SessionID keys the user's sync list.
	SessionID string `json:"-"`

	// PageIDs overrides the session sync list for page-list modules.
	PageIDs []int64 `json:"page_ids,omitempty"`
}

// IsFull reports whether the run is a full sync.
func (r SyncRequest) IsFull() bool {
	return r.ForceFull
}

// SyncListRequest adds a page to or removes a page from a session's sync list.
type SyncListRequest struct {
	SessionID string `json:"-"`
	ModuleID  int    `json:"-"`

	// AreaID is only read on removal; additions resolve the area from the page.
	AreaID   int64             `json:"area_id"`
	PageID   int64             `json:"page_id"`
	Type     SyncListEntryType `json:"type"`
	LevelMax int               `json:"levelmax"`

	UserID      int64 `json:"-"`
	AccessLevel int   `json:"-"`
}
