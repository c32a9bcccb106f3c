package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/utils"
	"github.com/MKhiriev/go-content-sync/models"
)

func (h *Handler) getModules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accessLevel, _ := utils.GetAccessLevelFromContext(ctx)

	utils.WriteJSON(w, h.services.SyncService.Modules(ctx, accessLevel), http.StatusOK)
}

// runSync starts a sync run of the module named in the path. The body is
// optional; an empty body runs an incremental sync to the default target.
// The result messages are returned with the error status as well.
func (h *Handler) runSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	moduleID, err := intParam(r, "module")
	if err != nil {
		log.Err(err).Str("func", "*Handler.runSync").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.runSync").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	req.ModuleID = moduleID
	req.UserID, _ = utils.GetUserIDFromContext(ctx)
	req.AccessLevel, _ = utils.GetAccessLevelFromContext(ctx)
	req.SessionID, _ = utils.GetSessionIDFromContext(ctx)

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.runSync").Msg("invalid sync request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result, err := h.services.SyncService.Run(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.runSync").Int("module", moduleID).Msg("sync run failed")
		utils.WriteJSON(w, result, statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getSyncState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	moduleID, err := intParam(r, "module")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	target := r.URL.Query().Get("target")
	if err := h.validator.Validate(ctx, models.SyncRequest{ModuleID: moduleID, Target: target}); err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	stats, err := h.services.SyncService.State(ctx, moduleID, target)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSyncState").Int("module", moduleID).Msg("error reading sync state")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func intParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, errors.Join(ErrInvalidPathParam, err)
	}
	return v, nil
}

func int64Param(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidPathParam, err)
	}
	return v, nil
}
