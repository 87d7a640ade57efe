package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leavetrack/leave-backend-go/internal/config"
	"github.com/leavetrack/leave-backend-go/internal/pkg/jwt"
)

// stubHandler satisfies every handler interface with a bare 200 so routing
// can be exercised without services behind it.
type stubHandler struct{}

func (stubHandler) ok(w http.ResponseWriter) { w.WriteHeader(http.StatusOK) }

func (s stubHandler) Register(w http.ResponseWriter, r *http.Request)            { s.ok(w) }
func (s stubHandler) Login(w http.ResponseWriter, r *http.Request)               { s.ok(w) }
func (s stubHandler) LoginWithGoogle(w http.ResponseWriter, r *http.Request)     { s.ok(w) }
func (s stubHandler) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) { s.ok(w) }
func (s stubHandler) RefreshToken(w http.ResponseWriter, r *http.Request)        { s.ok(w) }
func (s stubHandler) Logout(w http.ResponseWriter, r *http.Request)              { s.ok(w) }
func (s stubHandler) Me(w http.ResponseWriter, r *http.Request)                  { s.ok(w) }
func (s stubHandler) UpdateMe(w http.ResponseWriter, r *http.Request)            { s.ok(w) }
func (s stubHandler) Update(w http.ResponseWriter, r *http.Request)              { s.ok(w) }
func (s stubHandler) List(w http.ResponseWriter, r *http.Request)                { s.ok(w) }
func (s stubHandler) Create(w http.ResponseWriter, r *http.Request)              { s.ok(w) }
func (s stubHandler) ListMine(w http.ResponseWriter, r *http.Request)            { s.ok(w) }
func (s stubHandler) GetByID(w http.ResponseWriter, r *http.Request)             { s.ok(w) }
func (s stubHandler) Approve(w http.ResponseWriter, r *http.Request)             { s.ok(w) }
func (s stubHandler) Reject(w http.ResponseWriter, r *http.Request)              { s.ok(w) }
func (s stubHandler) Cancel(w http.ResponseWriter, r *http.Request)              { s.ok(w) }
func (s stubHandler) UnreadCount(w http.ResponseWriter, r *http.Request)         { s.ok(w) }
func (s stubHandler) MarkAsRead(w http.ResponseWriter, r *http.Request)          { s.ok(w) }
func (s stubHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request)       { s.ok(w) }
func (s stubHandler) Delete(w http.ResponseWriter, r *http.Request)              { s.ok(w) }
func (s stubHandler) GetSSEToken(w http.ResponseWriter, r *http.Request)         { s.ok(w) }
func (s stubHandler) Stream(w http.ResponseWriter, r *http.Request)              { s.ok(w) }
func (s stubHandler) GetSnapshot(w http.ResponseWriter, r *http.Request)         { s.ok(w) }
func (s stubHandler) Download(w http.ResponseWriter, r *http.Request)            { s.ok(w) }

func newTestRouter(cfg *config.Config) http.Handler {
	h := stubHandler{}
	jwtSvc := jwt.NewJWTService("test-secret-key", "15m", "168h")
	return NewRouter(cfg, jwtSvc, h, h, h, h, h, h)
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:         "test",
			FrontendURL: "http://localhost:3000",
		},
	}
}

func TestRouter_GoogleOAuthRoutes_DisabledWhenUnconfigured(t *testing.T) {
	t.Parallel()
	router := newTestRouter(testConfig())

	for _, path := range []string{"/api/v1/auth/oauth/google", "/api/v1/auth/oauth/callback/google"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestRouter_GoogleOAuthRoutes_EnabledWhenConfigured(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.OAuth2Google = config.OAuth2GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/oauth/callback/google",
	}
	router := newTestRouter(cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/oauth/google", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PasswordAuthRoutesAlwaysRegistered(t *testing.T) {
	t.Parallel()
	router := newTestRouter(testConfig())

	for _, path := range []string{"/api/v1/auth/register", "/api/v1/auth/login", "/api/v1/auth/refresh", "/api/v1/auth/logout"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
