package service

import "errors"

// Sync run errors. Callers match them with [errors.Is]; the HTTP layer maps
// them to status codes and the orchestrator to user-visible messages.
var (
	// ErrUnknownTable is returned when a table is absent from the catalog.
	ErrUnknownTable = errors.New("unknown table")

	// ErrInvalidTable is returned when a join table is dumped directly.
	ErrInvalidTable = errors.New("join tables can only be dumped through a relation")

	// ErrDumpInProgress is returned when an artifact with the same name is
	// still present in scratch or a target directory, or another process
	// holds its lock.
	ErrDumpInProgress = errors.New("last sync not finished")

	// ErrEmptyDump signals that nothing changed; it is informational.
	ErrEmptyDump = errors.New("no data dumped")

	// ErrDelivery is returned when copying an artifact to a target failed.
	ErrDelivery = errors.New("artifact delivery failed")

	// ErrNotify is returned when a target notify hook failed; the artifact
	// has been retracted from every target directory.
	ErrNotify = errors.New("target notification failed")

	// ErrLocked is returned when the module or the requested target is locked.
	ErrLocked = errors.New("sync is locked")

	// ErrAreaSync wraps the errors of the areas of a page list run that
	// failed; each one is already reported in the result messages.
	ErrAreaSync = errors.New("area sync failed")
)

// Request level errors.
var (
	ErrNoPagesMarked  = errors.New("no pages marked for sync")
	ErrDuplicatePage  = errors.New("page is already in the sync list")
	ErrUnknownModule  = errors.New("unknown sync module")
	ErrUnknownTarget  = errors.New("unknown target")
	ErrUnknownArea    = errors.New("unknown area")
	ErrAccessDenied   = errors.New("access denied")
	ErrPageNotInList  = errors.New("page is not removable from the sync list")
	ErrNoSyncListArea = errors.New("module does not use a sync list")
)

// Clear-cache receiver errors. Their texts are returned to the caller as is.
var (
	ErrUnknownTask   = errors.New("Task unknown")
	ErrDataAbsent    = errors.New("data parameter absent")
	ErrInvalidSignal = errors.New("invalid clear-cache signal")
)

// Application errors.
var (
	ErrVersionIsNotSpecified   = errors.New("application version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidDataProvided     = errors.New("invalid data provided")
)
