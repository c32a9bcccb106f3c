package store

import "errors"

var (
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrInvalidIdentifier is returned for catalog table or column names
	// that cannot be embedded unquoted into a statement.
	ErrInvalidIdentifier = errors.New("invalid sql identifier")

	// ErrTableNotFound means the live schema has no columns for the table.
	ErrTableNotFound = errors.New("table not found in database")

	ErrPageNotFound = errors.New("page not found")
)

// Statement level failures. Repositories wrap the driver error with one of
// these so callers can match them with errors.Is.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRows         = errors.New("failed to scan rows")
)
