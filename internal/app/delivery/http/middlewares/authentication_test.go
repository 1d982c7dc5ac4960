package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/config"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{sessions: make(map[string]*models.Session)}
}

func (s *fakeSessionService) Create(_ context.Context, user *models.User) (string, error) {
	return "", nil
}

func (s *fakeSessionService) GetSessionData(_ context.Context, sessionID string) (string, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return "", nil
	}
	data, err := json.Marshal(session)
	return string(data), err
}

func (s *fakeSessionService) ParseSessionData(_ context.Context, sessionData string) (*models.Session, error) {
	session := &models.Session{}
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *fakeSessionService) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func testMiddlewares(sessionService *fakeSessionService) *Middlewares {
	return NewMiddlewares(zap.NewNop(), sessionService, &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	})
}

func TestAuthenticate(t *testing.T) {
	passthrough := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := SessionFromContext(r.Context())
		assert.NoError(t, err)
		assert.Equal(t, "dic-2", session.LocationID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Missing Header", func(t *testing.T) {
		m := testMiddlewares(newFakeSessionService())
		recorder := httptest.NewRecorder()

		m.Authenticate(passthrough).ServeHTTP(recorder, httptest.NewRequest("GET", "/visits", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		m := testMiddlewares(newFakeSessionService())
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/visits", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		m.Authenticate(passthrough).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Valid Token Resolves Session", func(t *testing.T) {
		sessionService := newFakeSessionService()
		sessionService.sessions["session-1"] = &models.Session{
			UserID:     "user-1",
			Role:       constvars.RoleStaff,
			LocationID: "dic-2",
		}
		m := testMiddlewares(sessionService)

		token, err := utils.GenerateSessionJWT("session-1", "test-secret", 1)
		assert.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/visits", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		m.Authenticate(passthrough).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	allowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	withSession := func(r *http.Request, session *models.Session) *http.Request {
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		return r.WithContext(ctx)
	}

	t.Run("Role Allowed", func(t *testing.T) {
		m := testMiddlewares(newFakeSessionService())
		recorder := httptest.NewRecorder()
		request := withSession(httptest.NewRequest("GET", "/admin/stats", nil), &models.Session{Role: constvars.RoleSuperadmin})

		m.RequireRoles(constvars.RoleSuperadmin, constvars.RoleManager)(allowed).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Role Denied", func(t *testing.T) {
		m := testMiddlewares(newFakeSessionService())
		recorder := httptest.NewRecorder()
		request := withSession(httptest.NewRequest("GET", "/admin/stats", nil), &models.Session{Role: constvars.RoleStaff})

		m.RequireRoles(constvars.RoleSuperadmin)(allowed).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("No Session", func(t *testing.T) {
		m := testMiddlewares(newFakeSessionService())
		recorder := httptest.NewRecorder()

		m.RequireRoles(constvars.RoleSuperadmin)(allowed).ServeHTTP(recorder, httptest.NewRequest("GET", "/admin/stats", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
