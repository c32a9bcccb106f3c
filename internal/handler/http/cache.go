package http

import (
	"net/http"

	"github.com/MKhiriev/go-content-sync/internal/logger"
)

// clearCache is the receiving side of a clear-cache signal:
// GET /eid/nr_sync?task=clearCache&data=pages:1,pages:2.
// Errors are answered with 400 and the error text, success with "Done".
func (h *Handler) clearCache(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if err := h.services.CacheService.ClearCache(r.Context(), query.Get("task"), query.Get("data")); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.clearCache").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("Done"))
}
