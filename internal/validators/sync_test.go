// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-sync/models"
)

// ---------------------------------------------------------------------------
// SyncRequest
// ---------------------------------------------------------------------------

func TestSyncValidator_SyncRequest(t *testing.T) {
	v := NewSyncValidator()

	tests := []struct {
		name    string
		req     models.SyncRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.SyncRequest{ModuleID: 1, Target: "production", PageIDs: []int64{3, 4}}},
		{name: "empty target falls back to default", req: models.SyncRequest{ModuleID: 1}},
		{name: "target all", req: models.SyncRequest{ModuleID: 1, Target: models.TargetAll}},
		{name: "zero module", req: models.SyncRequest{Target: "production"}, wantErr: ErrInvalidModuleID},
		{name: "path traversal target", req: models.SyncRequest{ModuleID: 1, Target: "../etc"}, wantErr: ErrInvalidTarget},
		{name: "target with slash", req: models.SyncRequest{ModuleID: 1, Target: "a/b"}, wantErr: ErrInvalidTarget},
		{name: "negative page id", req: models.SyncRequest{ModuleID: 1, PageIDs: []int64{5, -1}}, wantErr: ErrInvalidPageID},
		{name: "scoped to module only", req: models.SyncRequest{ModuleID: 2, Target: "a/b"}, fields: []string{FieldModuleID}},
		{name: "unknown field", req: models.SyncRequest{ModuleID: 1}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSyncValidator_AcceptsPointers(t *testing.T) {
	v := NewSyncValidator()

	require.NoError(t, v.Validate(context.Background(), &models.SyncRequest{ModuleID: 1}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.SyncListRequest{}), ErrEmptySessionID)
}

func TestSyncValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewSyncValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// SyncListRequest
// ---------------------------------------------------------------------------

func TestSyncValidator_SyncListRequest(t *testing.T) {
	v := NewSyncValidator()
	valid := models.SyncListRequest{SessionID: "s1", ModuleID: 1, PageID: 10, Type: models.EntryTree, LevelMax: 2}

	tests := []struct {
		name    string
		mutate  func(r *models.SyncListRequest)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.SyncListRequest) {}},
		{name: "page entry", mutate: func(r *models.SyncListRequest) { r.Type = models.EntryPage }},
		{name: "no session", mutate: func(r *models.SyncListRequest) { r.SessionID = "" }, wantErr: ErrEmptySessionID},
		{name: "zero page", mutate: func(r *models.SyncListRequest) { r.PageID = 0 }, wantErr: ErrInvalidPageID},
		{name: "bad type", mutate: func(r *models.SyncListRequest) { r.Type = "branch" }, wantErr: ErrInvalidEntryType},
		{name: "negative levelmax", mutate: func(r *models.SyncListRequest) { r.LevelMax = -1 }, wantErr: ErrInvalidLevelMax},
		{
			name:    "removal checks area",
			mutate:  func(r *models.SyncListRequest) { r.AreaID = -3 },
			fields:  []string{FieldSessionID, FieldModuleID, FieldAreaID, FieldPageID},
			wantErr: ErrInvalidAreaID,
		},
		{
			name:   "removal ignores type",
			mutate: func(r *models.SyncListRequest) { r.Type = "" },
			fields: []string{FieldSessionID, FieldModuleID, FieldAreaID, FieldPageID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(context.Background(), req, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
