package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/utils"
)

// auth enforces bearer token authentication.
//
// A valid token stores the editor's user id, access level and sync session
// id (the token's jti) in the request context under [utils.UserIDCtxKey],
// [utils.AccessLevelCtxKey] and [utils.SessionIDCtxKey]. Requests without a
// header, with a malformed header or with a rejected token get 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.AccessLevelCtxKey, token.AccessLevel)
		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, token.Claims.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
