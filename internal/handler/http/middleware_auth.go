package http

import (
	"net/http"

	"github.com/MKhiriev/go-cloud-editor/internal/app"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/utils"
)

// auth enforces a bearer API key issued by keygen. Verified claims are put
// into the request context with [utils.WithClaims].
//
// Requests without the header get 401 with [app.MsgMissingAPIKey]; malformed,
// expired or wrongly signed keys get 401 with [app.MsgInvalidAPIKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, app.MsgMissingAPIKey, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, app.MsgInvalidAPIKey, http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAPIKey(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing api key")
			utils.WriteError(w, app.MsgInvalidAPIKey, http.StatusUnauthorized)
			return
		}

		ctx := utils.WithClaims(r.Context(), token.Claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getTokenFromAuthHeader(authHeader string) (string, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return tokenString, nil
}
