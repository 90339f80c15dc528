package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wardlab-service/internal/app/config"
	"wardlab-service/internal/app/models"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRedisRepository struct {
	sessions map[string]*models.Session
}

func (r *stubRedisRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (r *stubRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (r *stubRedisRepository) Delete(ctx context.Context, key string) error {
	return nil
}

func (r *stubRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return true, nil
}

func (r *stubRedisRepository) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	r.sessions[session.SessionID] = session
	return nil
}

func (r *stubRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return r.sessions[sessionID], nil
}

func (r *stubRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

func newTestMiddlewares(redisRepo *stubRedisRepository) *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	return &Middlewares{
		RedisRepository: redisRepo,
		InternalConfig:  internalConfig,
		Log:             zap.NewNop(),
	}
}

func TestAuthenticateMissingToken(t *testing.T) {
	m := newTestMiddlewares(&stubRedisRepository{sessions: map[string]*models.Session{}})

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/addon-requests", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthenticateMalformedToken(t *testing.T) {
	m := newTestMiddlewares(&stubRedisRepository{sessions: map[string]*models.Session{}})

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a bad token")
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/addon-requests", nil)
	request.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	redisRepo := &stubRedisRepository{sessions: map[string]*models.Session{}}
	m := newTestMiddlewares(redisRepo)

	// Token is valid but redis no longer holds the session.
	token, err := utils.GenerateSessionJWT("gone-session", m.InternalConfig.JWT.Secret, 1)
	require.NoError(t, err)

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a dead session")
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/addon-requests", nil)
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthenticatePutsSessionOnContext(t *testing.T) {
	redisRepo := &stubRedisRepository{sessions: map[string]*models.Session{
		"live-session": {
			SessionID: "live-session",
			UserID:    "nurse-1",
			Username:  "nurse1",
			Role:      constvars.RoleChargeNurse,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	m := newTestMiddlewares(redisRepo)

	token, err := utils.GenerateSessionJWT("live-session", m.InternalConfig.JWT.Secret, 1)
	require.NoError(t, err)

	var seenUserID string
	var seenSession *models.Session
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
		seenSession, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/api/v1/addon-requests", nil)
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "nurse-1", seenUserID)
	require.NotNil(t, seenSession)
	assert.Equal(t, constvars.RoleChargeNurse, seenSession.Role)
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(&stubRedisRepository{sessions: map[string]*models.Session{}})

	var seenRequestID string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("generates one when absent", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.NotEmpty(t, seenRequestID)
		assert.Equal(t, seenRequestID, recorder.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("keeps the client's id", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderXRequestID, "client-chosen")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "client-chosen", seenRequestID)
		assert.Equal(t, "client-chosen", recorder.Header().Get(constvars.HeaderXRequestID))
	})
}
