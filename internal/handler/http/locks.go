package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/utils"
)

type moduleLockRequest struct {
	Message string `json:"message"`
}

func (h *Handler) getTargets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	waiting, err := h.services.LockService.Targets(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTargets").Msg("error listing waiting files")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, waiting, http.StatusOK)
}

func (h *Handler) lockTarget(w http.ResponseWriter, r *http.Request) {
	h.setTargetLock(w, r, true)
}

func (h *Handler) unlockTarget(w http.ResponseWriter, r *http.Request) {
	h.setTargetLock(w, r, false)
}

func (h *Handler) setTargetLock(w http.ResponseWriter, r *http.Request, locked bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	target := chi.URLParam(r, "target")
	accessLevel, _ := utils.GetAccessLevelFromContext(ctx)

	if err := h.services.LockService.SetTargetLock(ctx, accessLevel, target, locked); err != nil {
		log.Err(err).Str("func", "*Handler.setTargetLock").Str("target", target).Bool("locked", locked).Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getModuleLock(w http.ResponseWriter, r *http.Request) {
	lock, err := h.services.LockService.ModuleLock(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getModuleLock").Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, lock, http.StatusOK)
}

func (h *Handler) lockModule(w http.ResponseWriter, r *http.Request) {
	var req moduleLockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	h.setModuleLock(w, r, true, req.Message)
}

func (h *Handler) unlockModule(w http.ResponseWriter, r *http.Request) {
	h.setModuleLock(w, r, false, "")
}

func (h *Handler) setModuleLock(w http.ResponseWriter, r *http.Request, locked bool, message string) {
	ctx := r.Context()
	accessLevel, _ := utils.GetAccessLevelFromContext(ctx)

	if err := h.services.LockService.SetModuleLock(ctx, accessLevel, locked, message); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.setModuleLock").Bool("locked", locked).Send()
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
