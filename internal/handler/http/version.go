package http

import (
	"net/http"

	"github.com/MKhiriev/go-content-sync/internal/utils"
)

type versionResponse struct {
	Version      string `json:"version"`
	BuildVersion string `json:"build_version,omitempty"`
	BuildDate    string `json:"build_date,omitempty"`
	BuildCommit  string `json:"build_commit,omitempty"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := h.services.AppInfoService.BuildInfo(ctx)

	utils.WriteJSON(w, versionResponse{
		Version:      h.services.AppInfoService.GetAppVersion(ctx),
		BuildVersion: info.BuildVersion(),
		BuildDate:    info.BuildDate(),
		BuildCommit:  info.BuildCommit(),
	}, http.StatusOK)
}
