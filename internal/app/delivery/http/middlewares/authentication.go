package middlewares

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate validates the Cobalt access token and puts the caller's account
// on the context. The raw token is kept so it can be forwarded upstream.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		token, err := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if err != nil {
			m.Log.Info("Middlewares.Authenticate missing bearer token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		claims, err := utils.ParseAccessToken(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate invalid access token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := models.ContextWithAccount(r.Context(), &models.Account{
			AccountID:   claims.AccountID,
			RoleID:      claims.RoleID,
			AccessToken: token,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
