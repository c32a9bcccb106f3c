package http

import (
	"crypto/hmac"
	"net/http"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/utils"
)

const signatureHeader = "X-Signature"

// verifySignature checks X-Signature against the HMAC of the raw query
// string. It is a no-op when the handler has no sign key.
func (h *Handler) verifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.signKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		got := r.Header.Get(signatureHeader)
		want := utils.HashString(r.URL.RawQuery, h.signKey)
		if !hmac.Equal([]byte(got), []byte(want)) {
			log.Error().Str("func", "*Handler.verifySignature").
				Str("signature", got).
				Msg("signatures are not equal")
			http.Error(w, ErrSignatureMismatch.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
