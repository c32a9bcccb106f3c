package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-content-sync/internal/service"
	"github.com/MKhiriev/go-content-sync/internal/store"
	"github.com/MKhiriev/go-content-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidPathParam:  http.StatusBadRequest,
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrNoSession:         http.StatusUnauthorized,
	ErrSignatureMismatch: http.StatusForbidden,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	service.ErrUnknownTable:   http.StatusBadRequest,
	service.ErrInvalidTable:   http.StatusBadRequest,
	service.ErrUnknownTarget:  http.StatusBadRequest,
	service.ErrUnknownArea:    http.StatusBadRequest,
	service.ErrNoPagesMarked:  http.StatusBadRequest,
	service.ErrNoSyncListArea: http.StatusBadRequest,
	service.ErrDuplicatePage:  http.StatusConflict,
	service.ErrAccessDenied:   http.StatusForbidden,
	service.ErrUnknownModule:  http.StatusNotFound,
	service.ErrPageNotInList:  http.StatusNotFound,
	service.ErrLocked:         http.StatusLocked,
	service.ErrDumpInProgress: http.StatusConflict,
	service.ErrDelivery:       http.StatusBadGateway,
	service.ErrNotify:         http.StatusBadGateway,

	service.ErrUnknownTask:   http.StatusBadRequest,
	service.ErrDataAbsent:    http.StatusBadRequest,
	service.ErrInvalidSignal: http.StatusBadRequest,

	validators.ErrInvalidModuleID:  http.StatusBadRequest,
	validators.ErrInvalidTarget:    http.StatusBadRequest,
	validators.ErrInvalidPageID:    http.StatusBadRequest,
	validators.ErrInvalidAreaID:    http.StatusBadRequest,
	validators.ErrInvalidEntryType: http.StatusBadRequest,
	validators.ErrInvalidLevelMax:  http.StatusBadRequest,
	validators.ErrEmptySessionID:   http.StatusUnauthorized,

	store.ErrPageNotFound:      http.StatusNotFound,
	store.ErrTableNotFound:     http.StatusBadRequest,
	store.ErrInvalidIdentifier: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
