package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidModuleID  = errors.New("invalid module id")
	ErrInvalidTarget    = errors.New("invalid target name")
	ErrInvalidPageID    = errors.New("invalid page id")
	ErrInvalidAreaID    = errors.New("invalid area id")
	ErrInvalidEntryType = errors.New("invalid sync list entry type")
	ErrInvalidLevelMax  = errors.New("invalid levelmax")
	ErrEmptySessionID   = errors.New("session id is required")
)
