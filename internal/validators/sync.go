package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-content-sync/models"
)

// Field name constants restrict validation to a subset of fields.
const (
	FieldModuleID  = "module_id"
	FieldTarget    = "target"
	FieldPageIDs   = "page_ids"
	FieldSessionID = "session_id"
	FieldPageID    = "page_id"
	FieldAreaID    = "area_id"
	FieldType      = "type"
	FieldLevelMax  = "levelmax"
)

// targetName matches target names; they become directory names below the
// sync directory, so separators and dots are rejected.
var targetName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// SyncValidator validates the inbound sync and sync list requests.
type SyncValidator struct{}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

// Validate accepts models.SyncRequest and models.SyncListRequest, by value or
// by pointer. With no fields given a default set per type is checked.
func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	case models.SyncListRequest:
		return v.validateSyncListRequest(ctx, value, fields...)
	case *models.SyncListRequest:
		return v.validateSyncListRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSyncRequest checks module id, target and explicit page ids. An
// empty target is allowed; the service falls back to the default target.
func (v *SyncValidator) validateSyncRequest(_ context.Context, req models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldModuleID, FieldTarget, FieldPageIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldModuleID:
			if req.ModuleID <= 0 {
				return ErrInvalidModuleID
			}
		case FieldTarget:
			if req.Target != "" && !targetName.MatchString(req.Target) {
				return fmt.Errorf("%w: %q", ErrInvalidTarget, req.Target)
			}
		case FieldPageIDs:
			for i, id := range req.PageIDs {
				if id <= 0 {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidPageID)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateSyncListRequest(_ context.Context, req models.SyncListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionID, FieldModuleID, FieldPageID, FieldType, FieldLevelMax}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionID:
			if req.SessionID == "" {
				return ErrEmptySessionID
			}
		case FieldModuleID:
			if req.ModuleID <= 0 {
				return ErrInvalidModuleID
			}
		case FieldPageID:
			if req.PageID <= 0 {
				return ErrInvalidPageID
			}
		case FieldAreaID:
			if req.AreaID < 0 {
				return ErrInvalidAreaID
			}
		case FieldType:
			if req.Type != models.EntryPage && req.Type != models.EntryTree {
				return fmt.Errorf("%w: %q", ErrInvalidEntryType, req.Type)
			}
		case FieldLevelMax:
			if req.LevelMax < 0 {
				return ErrInvalidLevelMax
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
