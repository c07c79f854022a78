package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func (s *fakeSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (s *fakeSessionService) ResolveToken(ctx context.Context, token string) (*models.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return session, nil
}

func (s *fakeSessionService) DestroySession(ctx context.Context, sessionID string) error {
	return nil
}

func newTestMiddlewares(sessions map[string]*models.Session) *Middlewares {
	return NewMiddlewares(&fakeSessionService{sessions: sessions}, &config.InternalConfig{}, zap.NewNop())
}

func TestAuthenticate(t *testing.T) {
	patientSession := &models.Session{SessionID: "sess-1", UserID: "patient-1", Role: constvars.RolePatient}
	mw := newTestMiddlewares(map[string]*models.Session{"good-token": patientSession})

	t.Run("Missing Header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/users/profile", nil)

		called := false
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, called, "handler must not run without a token")
	})

	t.Run("Invalid Token", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer bad-token")

		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run with a bad token")
		}))
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Valid Token Reaches Handler With Session", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")

		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := utils.SessionFromContext(r.Context())
			require.NoError(t, err)
			assert.Equal(t, "patient-1", session.UserID)
			w.WriteHeader(http.StatusOK)
		}))
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestRequireRole(t *testing.T) {
	runWithSession := func(session *models.Session, roles ...string) *httptest.ResponseRecorder {
		mw := newTestMiddlewares(nil)
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/medicines", nil)
		if session != nil {
			ctx := context.WithValue(request.Context(), constvars.CONTEXT_SESSION_KEY, session)
			request = request.WithContext(ctx)
		}

		handler := mw.RequireRole(roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("Matching Role Passes", func(t *testing.T) {
		session := &models.Session{SessionID: "sess-1", UserID: "admin-1", Role: constvars.RoleAdmin}
		recorder := runWithSession(session, constvars.RoleAdmin)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Any Of Multiple Roles Passes", func(t *testing.T) {
		session := &models.Session{SessionID: "sess-1", UserID: "doctor-1", Role: constvars.RoleDoctor}
		recorder := runWithSession(session, constvars.RoleDoctor, constvars.RoleAdmin)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Wrong Role Forbidden", func(t *testing.T) {
		session := &models.Session{SessionID: "sess-1", UserID: "patient-1", Role: constvars.RolePatient}
		recorder := runWithSession(session, constvars.RoleAdmin)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("No Session Rejected", func(t *testing.T) {
		recorder := runWithSession(nil, constvars.RoleAdmin)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
