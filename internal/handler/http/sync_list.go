package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/utils"
	"github.com/MKhiriev/go-content-sync/internal/validators"
	"github.com/MKhiriev/go-content-sync/models"
)

// syncListRequest builds a request for the session in ctx and the module in
// the path. It writes the error response itself and returns false on failure.
func (h *Handler) syncListRequest(w http.ResponseWriter, r *http.Request) (models.SyncListRequest, bool) {
	ctx := r.Context()

	moduleID, err := intParam(r, "module")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return models.SyncListRequest{}, false
	}

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		http.Error(w, ErrNoSession.Error(), http.StatusUnauthorized)
		return models.SyncListRequest{}, false
	}

	req := models.SyncListRequest{SessionID: sessionID, ModuleID: moduleID}
	req.UserID, _ = utils.GetUserIDFromContext(ctx)
	req.AccessLevel, _ = utils.GetAccessLevelFromContext(ctx)
	return req, true
}

func (h *Handler) getSyncList(w http.ResponseWriter, r *http.Request) {
	req, ok := h.syncListRequest(w, r)
	if !ok {
		return
	}

	data, err := h.services.SyncListService.List(r.Context(), req.SessionID, req.ModuleID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSyncList").Int("module", req.ModuleID).Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, data, http.StatusOK)
}

func (h *Handler) addToSyncList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, ok := h.syncListRequest(w, r)
	if !ok {
		return
	}

	var body models.SyncListRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.addToSyncList").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	req.PageID, req.Type, req.LevelMax = body.PageID, body.Type, body.LevelMax
	if req.Type == "" {
		req.Type = models.EntryPage
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	entry, err := h.services.SyncListService.Add(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addToSyncList").Int64("page", req.PageID).Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) removeFromSyncList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.syncListRequest(w, r)
	if !ok {
		return
	}

	var err error
	if req.AreaID, err = int64Param(r, "area"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.PageID, err = int64Param(r, "page"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.validator.Validate(ctx, req,
		validators.FieldSessionID, validators.FieldModuleID, validators.FieldAreaID, validators.FieldPageID)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err := h.services.SyncListService.Remove(ctx, req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.removeFromSyncList").
			Int64("area", req.AreaID).Int64("page", req.PageID).Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
