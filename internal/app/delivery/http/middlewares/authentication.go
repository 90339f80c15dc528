package middlewares

import (
	"context"
	"net/http"
	"strings"

	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/exceptions"
	"wardlab-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token to a live redis session and puts
// the session plus the acting user id on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate token rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.RedisRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, session.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
